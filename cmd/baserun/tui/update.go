package tui

import (
	"baserun/internal/descriptor"
	"baserun/internal/history"
	"baserun/internal/launch"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Border and padding eat four columns.
		if w := msg.Width - 6; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg processes all keyboard input. Every event is handled
// synchronously to completion; there is no background work.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		// Cancel: no launch, no history commit.
		return m, tea.Quit

	case tea.KeyCtrlD:
		m.designer = !m.designer
		return m, nil

	case tea.KeyUp:
		m.selected = moveSelection(m.selected, -1, len(m.history))
		return m, nil

	case tea.KeyDown:
		m.selected = moveSelection(m.selected, +1, len(m.history))
		return m, nil

	case tea.KeyEnter:
		return m.confirm()
	}

	// Any other key edits the buffer, which first drops the history
	// highlight.
	m.selected = noSelection
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveSelection moves the history highlight by delta, clamped at both
// ends with no wraparound. From no selection any movement lands on the
// first entry.
func moveSelection(cur, delta, n int) int {
	if n == 0 {
		return noSelection
	}
	if cur == noSelection {
		return 0
	}
	next := cur + delta
	if next < 0 {
		return 0
	}
	if next >= n {
		return n - 1
	}
	return next
}

// confirm handles Enter. A highlighted history entry is recalled into
// the edit buffer for review, never launched directly; otherwise a
// non-empty buffer is classified and dispatched. Only a successful
// dispatch commits history and ends the session.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	if m.selected != noSelection {
		m.input.SetValue(m.history[m.selected])
		m.input.CursorEnd()
		m.selected = noSelection
		return m, nil
	}

	raw := m.input.Value()
	if raw == "" {
		return m, nil
	}

	desc, err := descriptor.Classify(raw)
	if err != nil {
		m.errText = "Parsing error: " + err.Error()
		return m, nil
	}

	if err := launch.Dispatch(desc, m.designer, m.starter); err != nil {
		m.errText = "Launcher error: " + err.Error()
		return m, nil
	}

	m.history = history.RecordUse(m.history, raw)
	m.persistErr = history.Save(m.historyPath, m.history)
	m.launched = true
	return m, tea.Quit
}
