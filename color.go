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
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// A color that can be painted into a cell. It's always fully opaque.
type paintColor struct {
	R, G, B uint8
}

// Parses a free form color input like "#ff0000", "#f00" or "ff0000".
func parseColor(s string) (paintColor, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(str, "#") {
		str = "#" + str
	}

	// colorful.Hex stops scanning at the first non hex digit, so check the input first
	if len(str) != 4 && len(str) != 7 {
		return paintColor{}, fmt.Errorf("Can't parse color %q: %w", s, ErrInvalidColorValue)
	}
	if strings.Trim(str[1:], "0123456789abcdef") != "" {
		return paintColor{}, fmt.Errorf("Can't parse color %q: %w", s, ErrInvalidColorValue)
	}

	col, err := colorful.Hex(str)
	if err != nil {
		return paintColor{}, fmt.Errorf("Can't parse color %q: %v: %w", s, err, ErrInvalidColorValue)
	}

	r, g, b := col.RGB255()
	return paintColor{r, g, b}, nil
}

// Returns the color in the form "#rrggbb"
func (pc paintColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", pc.R, pc.G, pc.B)
}

func (pc paintColor) RGBA() (r, g, b, a uint32) {
	return color.RGBA{pc.R, pc.G, pc.B, 255}.RGBA()
}

type cellState uint8

const (
	cellUnset   cellState = iota // Untouched since the grid was created
	cellErased                   // Erased with the eraser, transparent
	cellCleared                  // Cleared to the white background
	cellPainted                  // Painted with the brush
)

func (cs cellState) String() string {
	switch cs {
	case cellUnset:
		return "Unset"
	case cellErased:
		return "Erased"
	case cellCleared:
		return "Cleared"
	case cellPainted:
		return "Painted"
	}
	return fmt.Sprintf("cellState(%d)", uint8(cs))
}

// The content of a single grid cell. Color is only meaningful if State is cellPainted.
//
// The zero value is an unset cell.
type cell struct {
	State cellState
	Color paintColor
}

var (
	erasedCell  = cell{State: cellErased}
	clearedCell = cell{State: cellCleared}
)

func paintedCell(col paintColor) cell {
	return cell{State: cellPainted, Color: col}
}

// Returns true for all states without a fill of their own.
// Painted white is not background.
func (c cell) isBackground() bool {
	return c.State != cellPainted
}

// Color as CSS value, used by the browser shell
func (c cell) cssColor() string {
	switch c.State {
	case cellPainted:
		return c.Color.String()
	case cellCleared:
		return "white"
	}
	return "transparent"
}

// Color for raster output. All background states are transparent
func (c cell) rasterColor() color.Color {
	if c.isBackground() {
		return color.Transparent
	}
	return c.Color
}

func (c cell) String() string {
	if c.State == cellPainted {
		return c.Color.String()
	}
	return c.State.String()
}
