package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpWidth = 60

// helpMarkdown builds the help text from the key map so the two never drift.
func (m Model) helpMarkdown() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{
			title: "Scrolling",
			rows: [][2]string{
				{m.keys.Up.Help().Key, m.keys.Up.Help().Desc},
				{m.keys.Down.Help().Key, m.keys.Down.Help().Desc},
				{m.keys.Top.Help().Key, m.keys.Top.Help().Desc},
				{m.keys.Bottom.Help().Key, m.keys.Bottom.Help().Desc},
			},
		},
		{
			title: "Console",
			rows: [][2]string{
				{m.keys.Clear.Help().Key, m.keys.Clear.Help().Desc},
				{m.keys.Lock.Help().Key, m.keys.Lock.Help().Desc},
				{m.keys.Timestamps.Help().Key, m.keys.Timestamps.Help().Desc},
				{"+/-", "More/fewer lines"},
				{m.keys.Input.Help().Key, "Log text, or `name=value` to watch"},
			},
		},
		{
			title: "General",
			rows: [][2]string{
				{m.keys.CycleTheme.Help().Key, m.keys.CycleTheme.Help().Desc},
				{m.keys.Help.Help().Key, m.keys.Help.Help().Desc},
				{m.keys.Quit.Help().Key + "/ctrl+c", m.keys.Quit.Help().Desc},
			},
		},
	}

	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n\n")
	b.WriteString("Newest lines are at the top. Repeated lines show a `[n]` counter.\n\n")
	for _, section := range sections {
		b.WriteString("## " + section.title + "\n\n")
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, row := range section.rows {
			b.WriteString("| `" + row[0] + "` | " + row[1] + " |\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	md := m.helpMarkdown()

	content := md
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.theme.HelpStyle),
		glamour.WithWordWrap(helpWidth-6),
	)
	if err == nil {
		if out, err := renderer.Render(md); err == nil {
			content = strings.Trim(out, "\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1).
		Width(helpWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
