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

const maxRecentColors = 13 // Number of recent colors to show

// Ordered list of recently painted colors, most recent first.
// It never contains duplicates and never grows beyond Max entries.
type recentColors struct {
	Colors []paintColor
	Max    int
}

func newRecentColors(max int) *recentColors {
	return &recentColors{
		Colors: make([]paintColor, 0, max+1),
		Max:    max,
	}
}

// Moves or inserts the color to the front of the list, and drops the oldest entry if the list got too long.
//
// The resulting list is returned as copy.
func (rc *recentColors) recordUse(col paintColor) []paintColor {
	filtered := rc.Colors[:0]
	for _, c := range rc.Colors {
		if c != col {
			filtered = append(filtered, c)
		}
	}

	rc.Colors = append(filtered, paintColor{})
	copy(rc.Colors[1:], rc.Colors)
	rc.Colors[0] = col

	if len(rc.Colors) > rc.Max {
		rc.Colors = rc.Colors[:rc.Max]
	}

	return rc.getColors()
}

func (rc *recentColors) getColors() []paintColor {
	colors := make([]paintColor, len(rc.Colors))
	copy(colors, rc.Colors)
	return colors
}

func (rc *recentColors) getColor(i int) (paintColor, error) {
	if i < 0 || i >= len(rc.Colors) {
		return paintColor{}, fmt.Errorf("Swatch %v doesn't exist, there are %v recent colors: %w", i, len(rc.Colors), ErrInvalidSwatch)
	}
	return rc.Colors[i], nil
}
