/*  D3pixelpaint - Minimal pixel art editor with SVG export
    Copyright (C) 2019  David Vogel

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.  */

package main

import (
	"fmt"
	"image"
)

type pixelSize image.Point // Size of a single cell on some surface. Either in pixels or in terminal columns and rows

type cellCoordinate image.Point // Column (X) and row (Y) of a cell

// Converts a position relative to the top left corner of a rendered grid into the coordinate of the cell containing it
func (ps pixelSize) getCellCoord(pos image.Point) cellCoordinate {
	return cellCoordinate{
		X: divideFloor(pos.X, ps.X),
		Y: divideFloor(pos.Y, ps.Y),
	}
}

// Returns the rectangle that the given cell covers on a rendered grid
func (ps pixelSize) getCellRect(coord cellCoordinate) image.Rectangle {
	min := image.Point{coord.X * ps.X, coord.Y * ps.Y}
	return image.Rectangle{
		Min: min,
		Max: min.Add(image.Point(ps)),
	}
}

func (g *grid) getCoord(index int) cellCoordinate {
	return cellCoordinate{
		X: index % g.Size,
		Y: index / g.Size,
	}
}

// Returns the linear index of the cell at the given coordinate.
// Coordinates outside of the grid result in ErrInvalidCellIndex, they would otherwise wrap into the next row.
func (g *grid) getIndex(coord cellCoordinate) (int, error) {
	if coord.X < 0 || coord.Y < 0 || coord.X >= g.Size || coord.Y >= g.Size {
		return 0, fmt.Errorf("Coordinate %v is outside of the %vx%v grid: %w", image.Point(coord), g.Size, g.Size, ErrInvalidCellIndex)
	}

	return coord.Y*g.Size + coord.X, nil
}
