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

// Something that shows an editor to the user, and forwards the user input to it
type shell interface {
	getShortName() string // Return short and filesystem friendly name, also used as internal identifier
	getName() string      // Return full name for display purposes

	run() error // Blocks until the user quits or Close is called
	Close()
}

type shellType struct {
	Name string

	FunctionNew func(conf *config, ed *editor) (shell, error)
}

var shellTypes = map[string]shellType{
	"web": {
		Name:        "Browser",
		FunctionNew: newWebShell,
	},
	"terminal": {
		Name:        "Terminal",
		FunctionNew: newTerminalShell,
	},
}
