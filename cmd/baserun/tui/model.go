// Package tui implements the interactive session: an input box for a
// connection descriptor, a persisted selection history, and an error
// line. The session is split across files in the usual bubbletea way:
//   - model.go: types, construction, Init
//   - update.go: event handling and the launch path
//   - view.go: rendering
package tui

import (
	"fmt"
	"os"

	"baserun/cmd/baserun/ui"
	"baserun/internal/history"
	"baserun/internal/launch"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Config holds what the session needs from the outside: the starter to
// dispatch to, the history file to load and commit, and the initial
// designer toggle from the command line.
type Config struct {
	Designer    bool
	Starter     launch.Starter
	HistoryPath string
}

// noSelection means no history entry is highlighted.
const noSelection = -1

// Model is the interactive session state. History selection is mutually
// exclusive with plain editing: selected is either noSelection or a
// valid index into history.
type Model struct {
	input  textinput.Model
	styles ui.Styles

	history  []string
	selected int

	designer bool
	errText  string

	width  int
	height int

	starter     launch.Starter
	historyPath string

	// launched is set when a successful dispatch ended the session.
	launched   bool
	persistErr error
}

// New builds the session model, loading persisted history in file
// order.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Width = 60

	return Model{
		input:       ti,
		styles:      ui.NewStyles(),
		history:     history.Load(cfg.HistoryPath),
		selected:    noSelection,
		designer:    cfg.Designer,
		starter:     cfg.Starter,
		historyPath: cfg.HistoryPath,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run drives the session to completion. A history persistence failure
// after a successful launch is reported on stderr but does not fail the
// run; the launch already happened.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.persistErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", m.persistErr)
	}
	return nil
}
