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
	"errors"
	"fmt"
	"testing"
)

// Records all editor events as strings
type recordingListener struct {
	Events []string
}

func (rl *recordingListener) handleGridReset(size int, cells []cell) error {
	rl.Events = append(rl.Events, fmt.Sprintf("GridReset %v %v", size, cells))
	return nil
}

func (rl *recordingListener) handleCellChange(index int, c cell) error {
	rl.Events = append(rl.Events, fmt.Sprintf("Cell %v %v", index, c))
	return nil
}

func (rl *recordingListener) handleRecentsChange(colors []paintColor) error {
	rl.Events = append(rl.Events, fmt.Sprintf("Recents %v", colors))
	return nil
}

func (rl *recordingListener) handleToolChange(t tool, col paintColor) error {
	rl.Events = append(rl.Events, fmt.Sprintf("Tool %v %v", t, col))
	return nil
}

func (rl *recordingListener) count(prefix string) int {
	n := 0
	for _, e := range rl.Events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func newTestEditor(t *testing.T, size int) (*editor, *recordingListener) {
	t.Helper()

	ed, err := newEditor(gridSizes{4, 8}, size, paintColor{})
	if err != nil {
		t.Fatalf("Can't create editor: %v", err)
	}

	rl := &recordingListener{}
	ed.subscribeListener(rl)

	return ed, rl
}

func Test_editor_paint(t *testing.T) {
	ed, rl := newTestEditor(t, 4)

	if err := ed.selectColor("#ff0000"); err != nil {
		t.Fatal(err)
	}
	if err := ed.pointerDown(5); err != nil {
		t.Fatal(err)
	}
	ed.pointerUp()

	want := []string{
		"Tool Brush #ff0000",
		"Cell 5 #ff0000",
		"Recents [#ff0000]",
	}
	if fmt.Sprint(rl.Events) != fmt.Sprint(want) {
		t.Errorf("Events = %v, want %v", rl.Events, want)
	}

	if c, _ := ed.State.Grid.getCell(5); c != paintedCell(paintColor{255, 0, 0}) {
		t.Errorf("Cell 5 is %v, want #ff0000", c)
	}
}

func Test_editor_eraseDoesntRecord(t *testing.T) {
	ed, rl := newTestEditor(t, 4)

	ed.selectEraser()
	if err := ed.pointerDown(0); err != nil {
		t.Fatal(err)
	}
	ed.pointerEnter(1)
	ed.pointerUp()

	if n := rl.count("Recents"); n != 0 {
		t.Errorf("Erasing changed the recent colors %v times", n)
	}
	if got := ed.State.Recents.getColors(); len(got) != 0 {
		t.Errorf("Recent colors = %v, want none", got)
	}
	for _, i := range []int{0, 1} {
		if c, _ := ed.State.Grid.getCell(i); c != erasedCell {
			t.Errorf("Cell %v is %v, want %v", i, c, erasedCell)
		}
	}
}

func Test_editor_paintAlwaysRecords(t *testing.T) {
	ed, rl := newTestEditor(t, 4)

	ed.selectColor("#00ff00")
	ed.pointerDown(0)
	ed.pointerEnter(1)
	ed.pointerEnter(2)
	ed.pointerUp()

	if n := rl.count("Recents"); n != 3 {
		t.Errorf("Painting 3 cells changed the recent colors %v times, want 3", n)
	}
}

func Test_editor_dragSession(t *testing.T) {
	ed, _ := newTestEditor(t, 4)
	ed.selectColor("#0000ff")

	// Entering without a session does nothing
	ed.pointerEnter(3)
	if c, _ := ed.State.Grid.getCell(3); c.State != cellUnset {
		t.Errorf("Cell 3 got painted without drag session")
	}

	ed.pointerDown(0)
	ed.pointerEnter(1)
	ed.pointerEnter(2)
	ed.pointerUp()
	ed.pointerEnter(3)

	for i, want := range []cellState{cellPainted, cellPainted, cellPainted, cellUnset} {
		if c, _ := ed.State.Grid.getCell(i); c.State != want {
			t.Errorf("Cell %v is %v, want %v", i, c.State, want)
		}
	}

	// Invalid index doesn't start a session
	if err := ed.pointerDown(16); !errors.Is(err, ErrInvalidCellIndex) {
		t.Errorf("pointerDown(16) error = %v, want %v", err, ErrInvalidCellIndex)
	}
	if ed.State.Drawing {
		t.Errorf("pointerDown(16) started a drag session")
	}
}

func Test_editor_eraserKeepsBrushColor(t *testing.T) {
	ed, _ := newTestEditor(t, 4)

	ed.selectColor("#00ff00")
	ed.selectEraser()
	ed.pointerDown(0)
	ed.pointerUp()
	ed.selectBrush()
	ed.pointerDown(1)
	ed.pointerUp()

	if c, _ := ed.State.Grid.getCell(1); c != paintedCell(paintColor{0, 255, 0}) {
		t.Errorf("Cell 1 is %v, want #00ff00", c)
	}
}

func Test_editor_selectColorInvalid(t *testing.T) {
	ed, rl := newTestEditor(t, 4)
	ed.selectColor("#123456")
	ed.selectEraser()
	rl.Events = nil

	for _, s := range []string{"not a color", "#12345g", "#12 345", "# 12345", "12345g"} {
		if err := ed.selectColor(s); !errors.Is(err, ErrInvalidColorValue) {
			t.Errorf("selectColor(%q) error = %v, want %v", s, err, ErrInvalidColorValue)
		}
		if ed.State.Color != (paintColor{0x12, 0x34, 0x56}) || ed.State.Tool != toolEraser {
			t.Errorf("selectColor(%q) changed the state to %v %v", s, ed.State.Tool, ed.State.Color)
		}
	}
	if len(rl.Events) != 0 {
		t.Errorf("Invalid color caused events %v", rl.Events)
	}
}

func Test_editor_selectRecent(t *testing.T) {
	ed, _ := newTestEditor(t, 4)

	for i, s := range []string{"#ff0000", "#00ff00", "#0000ff"} {
		ed.selectColor(s)
		ed.pointerDown(i)
		ed.pointerUp()
	}
	before := ed.State.Recents.getColors()

	ed.selectEraser()
	if err := ed.selectRecent(2); err != nil {
		t.Fatal(err)
	}
	if ed.State.Tool != toolBrush || ed.State.Color != (paintColor{255, 0, 0}) {
		t.Errorf("selectRecent(2) resulted in %v %v, want Brush #ff0000", ed.State.Tool, ed.State.Color)
	}
	if after := ed.State.Recents.getColors(); !equalColors(before, after) {
		t.Errorf("selectRecent reordered the recent colors from %v to %v", before, after)
	}

	if err := ed.selectRecent(3); !errors.Is(err, ErrInvalidSwatch) {
		t.Errorf("selectRecent(3) error = %v, want %v", err, ErrInvalidSwatch)
	}
}

func Test_editor_resize(t *testing.T) {
	ed, rl := newTestEditor(t, 4)
	ed.selectColor("#ff0000")
	ed.pointerDown(0)

	if err := ed.resize(8); err != nil {
		t.Fatal(err)
	}
	if ed.State.Drawing {
		t.Errorf("Drag session survived resize")
	}
	if len(ed.State.Grid.Cells) != 64 {
		t.Errorf("Grid has %v cells, want 64", len(ed.State.Grid.Cells))
	}
	if ed.State.Color != (paintColor{255, 0, 0}) || len(ed.State.Recents.getColors()) != 1 {
		t.Errorf("Resize didn't keep color and recent colors")
	}
	if want := fmt.Sprintf("GridReset 8 %v", make([]cell, 64)); rl.Events[len(rl.Events)-1] != want {
		t.Errorf("Last event is %q, want %q", rl.Events[len(rl.Events)-1], want)
	}

	rl.Events = nil
	if err := ed.resize(5); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("resize(5) error = %v, want %v", err, ErrInvalidDimension)
	}
	if ed.State.Grid.Size != 8 || len(rl.Events) != 0 {
		t.Errorf("Invalid resize changed the grid")
	}
}

func Test_editor_clear(t *testing.T) {
	ed, rl := newTestEditor(t, 4)
	ed.selectColor("#ff0000")
	ed.pointerDown(0)
	ed.pointerUp()
	rl.Events = nil

	ed.clear()

	cleared := make([]cell, 16)
	for i := range cleared {
		cleared[i] = clearedCell
	}
	want := []string{fmt.Sprintf("GridReset 4 %v", cleared)}
	if fmt.Sprint(rl.Events) != fmt.Sprint(want) {
		t.Errorf("Events = %v, want %v", rl.Events, want)
	}
	if n := rl.count("Recents"); n != 0 {
		t.Errorf("Clear changed the recent colors")
	}
}

func Test_editor_replayState(t *testing.T) {
	ed, _ := newTestEditor(t, 4)
	ed.selectColor("#ff0000")
	ed.pointerDown(2)
	ed.pointerUp()

	rl := &recordingListener{}
	if err := ed.replayState(rl); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"GridReset 4 [Unset Unset #ff0000 Unset Unset Unset Unset Unset Unset Unset Unset Unset Unset Unset Unset Unset]",
		"Recents [#ff0000]",
		"Tool Brush #ff0000",
	}
	if fmt.Sprint(rl.Events) != fmt.Sprint(want) {
		t.Errorf("Events = %v, want %v", rl.Events, want)
	}
}

func Test_editor_unsubscribeListener(t *testing.T) {
	ed, rl := newTestEditor(t, 4)
	ed.subscribeListener(rl)
	if len(ed.Listeners) != 1 {
		t.Errorf("Listener got subscribed %v times", len(ed.Listeners))
	}

	ed.unsubscribeListener(rl)
	ed.selectEraser()

	if len(rl.Events) != 0 {
		t.Errorf("Unsubscribed listener received %v", rl.Events)
	}
}
