package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderInput(),
		m.renderStatus(),
		m.renderHistory(),
	)
}

func (m Model) renderInput() string {
	box := m.styles.InputBox
	if m.width > 2 {
		box = box.Width(m.width - 2)
	}
	return m.styles.InputTitle.Render("Base path:") + "\n" +
		box.Render(m.input.View())
}

func (m Model) renderStatus() string {
	var lines []string

	if m.errText != "" {
		lines = append(lines, m.styles.Error.Render(m.errText))
	}

	if m.designer {
		lines = append(lines, m.styles.DesignerOn.Render("Ctrl+D: Designer (on)"))
	} else {
		lines = append(lines, m.styles.DesignerOff.Render("Ctrl+D: Designer (off)"))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHistory() string {
	var sb strings.Builder
	for i, entry := range m.history {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i == m.selected {
			sb.WriteString(m.styles.HistorySelected.Render(entry))
		} else {
			sb.WriteString(m.styles.HistoryItem.Render(entry))
		}
	}

	box := m.styles.HistoryBox
	if m.width > 2 {
		box = box.Width(m.width - 2)
	}
	return m.styles.HistoryTitle.Render("History") + "\n" +
		box.Render(sb.String())
}
