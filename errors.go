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

import "errors"

// Errors returned by the editor. They are wrapped with more context, use errors.Is to check for them.
var (
	ErrInvalidCellIndex    = errors.New("Invalid cell index")
	ErrInvalidDimension    = errors.New("Invalid grid dimension")
	ErrInvalidColorValue   = errors.New("Invalid color value")
	ErrInvalidSwatch       = errors.New("Invalid recent color swatch")
	ErrInvalidExportFormat = errors.New("Invalid export format")
)
