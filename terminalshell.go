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
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var terminalCellSize = pixelSize{2, 1} // Every cell is two columns wide, so it looks roughly square

var terminalGridOrigin = image.Point{0, 2} // Title and tool line are above the grid

var (
	terminalTitleStyle   = lipgloss.NewStyle().Bold(true)
	terminalStatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	terminalErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	terminalHelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	terminalEmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	terminalClearedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#ffffff"))
)

// Shows the editor in the terminal, painting works with the mouse
type terminalShell struct {
	Config  *config
	Program *tea.Program
}

func newTerminalShell(conf *config, ed *editor) (shell, error) {
	model := newTerminalModel(conf, ed, newExportWriter(conf.ExportDirectory))

	return &terminalShell{
		Config:  conf,
		Program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()),
	}, nil
}

func (ts *terminalShell) getShortName() string {
	return "terminal"
}

func (ts *terminalShell) getName() string {
	return "Terminal"
}

func (ts *terminalShell) run() error {
	if _, err := ts.Program.Run(); err != nil {
		return fmt.Errorf("Terminal UI failed: %v", err)
	}
	return nil
}

func (ts *terminalShell) Close() {
	ts.Program.Quit()
}

// The bubbletea model. The update loop is the only place that touches the editor.
type terminalModel struct {
	config *config
	editor *editor
	writer *exportWriter

	lastIndex int // Cell that received the last pointer event, -1 if none

	inputActive bool // Color input line is open
	input       string

	status    string
	statusErr bool
}

func newTerminalModel(conf *config, ed *editor, writer *exportWriter) *terminalModel {
	return &terminalModel{
		config:    conf,
		editor:    ed,
		writer:    writer,
		lastIndex: -1,
	}
}

func (m *terminalModel) Init() tea.Cmd {
	return nil
}

func (m *terminalModel) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *terminalModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	log.Debugf("Terminal shell: %v", err)
}

// Returns the index of the cell under the mouse, or false if the mouse is outside of the grid
func (m *terminalModel) cellIndexAt(x, y int) (int, bool) {
	coord := terminalCellSize.getCellCoord(image.Point{x, y}.Sub(terminalGridOrigin))
	index, err := m.editor.State.Grid.getIndex(coord)
	if err != nil {
		return 0, false
	}
	return index, true
}

func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.inputActive {
			m.handleInputKey(msg)
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *terminalModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		index, ok := m.cellIndexAt(msg.X, msg.Y)
		if !ok {
			return
		}
		m.lastIndex = index
		if err := m.editor.pointerDown(index); err != nil {
			m.setError(err)
		}
	case tea.MouseActionMotion:
		index, ok := m.cellIndexAt(msg.X, msg.Y)
		if !ok {
			m.lastIndex = -1
			return
		}
		// Motion events are reported per terminal cell, a grid cell is only entered once
		if index == m.lastIndex {
			return
		}
		m.lastIndex = index
		if err := m.editor.pointerEnter(index); err != nil {
			m.setError(err)
		}
	case tea.MouseActionRelease:
		m.lastIndex = -1
		m.editor.pointerUp()
	}
}

func (m *terminalModel) handleInputKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.inputActive = false
		if err := m.editor.selectColor(m.input); err != nil {
			m.setError(err)
			return
		}
		m.setStatus("Brush color %v", m.editor.State.Color)
	case tea.KeyEsc:
		m.inputActive = false
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
}

func (m *terminalModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	ed := m.editor

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return tea.Quit
	case "e":
		ed.selectEraser()
	case "b":
		ed.selectBrush()
	case "c":
		ed.clear()
	case ":":
		m.inputActive = true
		m.input = ""
	case "s":
		size := m.config.GridSizes.next(ed.State.Grid.Size)
		if err := ed.resize(size); err != nil {
			m.setError(err)
			return nil
		}
		m.lastIndex = -1
		m.setStatus("Grid size %vx%v", size, size)
	case "x":
		m.export("svg")
	case "z":
		m.export("png")
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		i := int(key[0]-'0') - 1
		if i < 0 {
			i = 9
		}
		if err := ed.selectRecent(i); err != nil {
			m.setError(err)
		}
	}

	return nil
}

func (m *terminalModel) export(format string) {
	doc, err := m.editor.export(format, m.config.CellPixelSize)
	if err != nil {
		m.setError(err)
		return
	}

	path, err := m.writer.write(doc)
	if err != nil {
		m.setError(err)
		return
	}

	log.Infof("Exported %v to %v", doc.FileName, path)
	m.setStatus("Saved %v", path)
}

func renderTerminalCell(c cell) string {
	switch c.State {
	case cellPainted:
		return lipgloss.NewStyle().Background(lipgloss.Color(c.Color.String())).Render("  ")
	case cellCleared:
		return terminalClearedStyle.Render("  ")
	}
	return terminalEmptyStyle.Render("··")
}

func (m *terminalModel) View() string {
	ed := m.editor
	sb := &strings.Builder{}

	// The grid has to start at terminalGridOrigin
	sb.WriteString(terminalTitleStyle.Render("D3pixelpaint") + "\n")
	tool := ed.State.Tool.String()
	if ed.State.Tool == toolBrush {
		tool += " " + lipgloss.NewStyle().Background(lipgloss.Color(ed.State.Color.String())).Render("  ") + " " + ed.State.Color.String()
	}
	sb.WriteString(fmt.Sprintf("%v  %vx%v\n", tool, ed.State.Grid.Size, ed.State.Grid.Size))

	size := ed.State.Grid.Size
	for row := 0; row < size; row++ {
		for _, c := range ed.State.Grid.Cells[row*size : (row+1)*size] {
			sb.WriteString(renderTerminalCell(c))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Recent:")
	for i, col := range ed.State.Recents.getColors() {
		label := ""
		if i < 10 {
			label = fmt.Sprintf("%d", (i+1)%10)
		}
		sb.WriteString(" " + label + lipgloss.NewStyle().Background(lipgloss.Color(col.String())).Render("  "))
	}
	sb.WriteString("\n")

	switch {
	case m.inputActive:
		sb.WriteString("Color: " + m.input + "█\n")
	case m.statusErr:
		sb.WriteString(terminalErrorStyle.Render(m.status) + "\n")
	default:
		sb.WriteString(terminalStatusStyle.Render(m.status) + "\n")
	}

	sb.WriteString(terminalHelpStyle.Render("b brush · e eraser · : color · 1-0 recent · c clear · s size · x svg · z png · q quit"))

	return sb.String()
}
