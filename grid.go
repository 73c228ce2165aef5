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

import "fmt"

// Sizes a grid can be created with, in cells per row
type gridSizes []int

var defaultGridSizes = gridSizes{8, 16, 32}

func (gs gridSizes) contains(size int) bool {
	for _, s := range gs {
		if s == size {
			return true
		}
	}
	return false
}

// Returns the size following the given one, wraps around at the end.
func (gs gridSizes) next(size int) int {
	for i, s := range gs {
		if s == size {
			return gs[(i+1)%len(gs)]
		}
	}
	if len(gs) > 0 {
		return gs[0]
	}
	return size
}

// Square grid of cells.
// The cells are stored row by row, so the cell in row r and column c has the index r*Size + c.
type grid struct {
	Size  int    // Cells per row and column
	Cells []cell // Always Size*Size entries

	ValidSizes gridSizes
}

func newGrid(validSizes gridSizes, size int) (*grid, error) {
	g := &grid{
		ValidSizes: validSizes,
	}

	if err := g.resize(size); err != nil {
		return nil, err
	}

	return g, nil
}

// Discards all cells and creates size*size unset cells.
// The grid stays unchanged if the size is not one of the valid sizes.
func (g *grid) resize(size int) error {
	if !g.ValidSizes.contains(size) {
		return fmt.Errorf("Size %v is not one of %v: %w", size, g.ValidSizes, ErrInvalidDimension)
	}

	g.Size = size
	g.Cells = make([]cell, size*size)

	return nil
}

func (g *grid) checkIndex(index int) error {
	if index < 0 || index >= len(g.Cells) {
		return fmt.Errorf("Index %v is outside of [0, %v): %w", index, len(g.Cells), ErrInvalidCellIndex)
	}
	return nil
}

func (g *grid) setCell(index int, c cell) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}

	g.Cells[index] = c

	return nil
}

func (g *grid) getCell(index int) (cell, error) {
	if err := g.checkIndex(index); err != nil {
		return cell{}, err
	}

	return g.Cells[index], nil
}

// Sets every cell to the white background.
// This is not the same as erasing, which makes cells transparent.
func (g *grid) clear() {
	for i := range g.Cells {
		g.Cells[i] = clearedCell
	}
}

func (g *grid) getCellsCopy() []cell {
	cells := make([]cell, len(g.Cells))
	copy(cells, g.Cells)
	return cells
}
