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

type tool int

const (
	toolBrush tool = iota
	toolEraser
)

func (t tool) String() string {
	switch t {
	case toolBrush:
		return "Brush"
	case toolEraser:
		return "Eraser"
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Gets notified about every change of the editor state.
// Handlers are called synchronously, in the order the changes happen.
type editorListener interface {
	handleGridReset(size int, cells []cell) error // All cells got replaced. cells is a row-major copy, shared between listeners
	handleCellChange(index int, c cell) error
	handleRecentsChange(colors []paintColor) error
	handleToolChange(t tool, col paintColor) error
}

// All mutable state of an editing session
type editorState struct {
	Grid    *grid
	Tool    tool
	Color   paintColor // Brush color. It's kept while the eraser is active
	Recents *recentColors
	Drawing bool // True between pointer down and pointer up
}

// Translates pointer and selection events into grid mutations.
//
// An editor is not safe for concurrent use. Shells have to call it from a single goroutine.
type editor struct {
	State editorState

	Listeners []editorListener
}

func newEditor(validSizes gridSizes, size int, initialColor paintColor) (*editor, error) {
	g, err := newGrid(validSizes, size)
	if err != nil {
		return nil, fmt.Errorf("Can't create grid: %w", err)
	}

	ed := &editor{
		State: editorState{
			Grid:    g,
			Tool:    toolBrush,
			Color:   initialColor,
			Recents: newRecentColors(maxRecentColors),
		},
	}

	return ed, nil
}

func (ed *editor) subscribeListener(l editorListener) {
	for _, listener := range ed.Listeners {
		if listener == l {
			return
		}
	}
	ed.Listeners = append(ed.Listeners, l)
}

func (ed *editor) unsubscribeListener(l editorListener) {
	for i, listener := range ed.Listeners {
		if listener == l {
			ed.Listeners = append(ed.Listeners[:i], ed.Listeners[i+1:]...)
			return
		}
	}
}

// Sends the whole state to a single listener, so it can catch up with the editor.
func (ed *editor) replayState(l editorListener) error {
	if err := l.handleGridReset(ed.State.Grid.Size, ed.State.Grid.getCellsCopy()); err != nil {
		return err
	}
	if err := l.handleRecentsChange(ed.State.Recents.getColors()); err != nil {
		return err
	}
	return l.handleToolChange(ed.State.Tool, ed.State.Color)
}

func (ed *editor) broadcast(f func(l editorListener) error) {
	for _, l := range ed.Listeners {
		if err := f(l); err != nil {
			log.Warnf("Listener %T failed to handle editor event: %v", l, err)
		}
	}
}

func (ed *editor) setTool(t tool) {
	ed.State.Tool = t
	col := ed.State.Color
	ed.broadcast(func(l editorListener) error { return l.handleToolChange(t, col) })
}

// Switches to the brush with the given color.
// Malformed colors are rejected, the previous color and tool stay active.
func (ed *editor) selectColor(s string) error {
	col, err := parseColor(s)
	if err != nil {
		return err
	}

	ed.State.Color = col
	ed.setTool(toolBrush)

	return nil
}

// Switches to the brush with the color that was selected before.
func (ed *editor) selectBrush() {
	ed.setTool(toolBrush)
}

func (ed *editor) selectEraser() {
	ed.setTool(toolEraser)
}

// Switches to the brush with the color of the given recent color swatch.
// This doesn't reorder the recent colors.
func (ed *editor) selectRecent(i int) error {
	col, err := ed.State.Recents.getColor(i)
	if err != nil {
		return err
	}

	ed.State.Color = col
	ed.setTool(toolBrush)

	return nil
}

// Applies the current tool to the cell at the given index.
func (ed *editor) apply(index int) error {
	var c cell
	switch ed.State.Tool {
	case toolEraser:
		c = erasedCell
	default:
		c = paintedCell(ed.State.Color)
	}

	if err := ed.State.Grid.setCell(index, c); err != nil {
		return err
	}
	ed.broadcast(func(l editorListener) error { return l.handleCellChange(index, c) })

	if c.State == cellPainted {
		colors := ed.State.Recents.recordUse(c.Color)
		ed.broadcast(func(l editorListener) error { return l.handleRecentsChange(colors) })
	}

	return nil
}

// Starts a drag session and applies the current tool to the cell.
// An invalid index doesn't start a session.
func (ed *editor) pointerDown(index int) error {
	if err := ed.State.Grid.checkIndex(index); err != nil {
		return err
	}

	ed.State.Drawing = true

	return ed.apply(index)
}

// Applies the current tool to the cell, if there is an active drag session.
func (ed *editor) pointerEnter(index int) error {
	if !ed.State.Drawing {
		return nil
	}

	return ed.apply(index)
}

// Ends the drag session, if there is any.
func (ed *editor) pointerUp() {
	ed.State.Drawing = false
}

// Recreates the grid with the given size. All cells are discarded.
// Tool, color and recent colors are kept.
func (ed *editor) resize(size int) error {
	if err := ed.State.Grid.resize(size); err != nil {
		return err
	}
	ed.State.Drawing = false

	log.Debugf("Grid resized to %vx%v", size, size)

	cells := ed.State.Grid.getCellsCopy()
	ed.broadcast(func(l editorListener) error { return l.handleGridReset(size, cells) })

	return nil
}

// Sets all cells to the white background.
func (ed *editor) clear() {
	ed.State.Grid.clear()

	size, cells := ed.State.Grid.Size, ed.State.Grid.getCellsCopy()
	ed.broadcast(func(l editorListener) error { return l.handleGridReset(size, cells) })
}

// Serializes the grid with the given export format.
func (ed *editor) export(formatName string, cellPixelSize int) (*exportDocument, error) {
	format, ok := exportFormats[formatName]
	if !ok {
		return nil, fmt.Errorf("Format %q not found: %w", formatName, ErrInvalidExportFormat)
	}

	return format.export(ed.State.Grid, cellPixelSize)
}
