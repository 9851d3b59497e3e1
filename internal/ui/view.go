package ui

import (
	"fmt"
	"strings"
)

// renderMain renders the header, console box, progress bar and footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	snap := m.store.Snapshot()

	var b strings.Builder

	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")

	body := strings.TrimSuffix(snap.Text, "\n")
	if body == "" {
		body = styles.FaintText.Render("(empty)")
	}
	box := styles.BoxFor(m.theme, m.console.Locked(), m.editing).
		Width(max(m.width-2, 10))
	b.WriteString(box.Render(body))
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(m.bar.ViewAs(snap.Progress))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(" ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if snap.LastError != nil {
		b.WriteString(styles.Footer.Render(styles.DangerText.Render("feed: " + snap.LastError.Error())))
		b.WriteString("\n")
	}

	b.WriteString(styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}

// renderHeader shows the console state on one line.
func (m Model) renderHeader(styles Styles) string {
	parts := []string{
		styles.AccentText.Render("backscroll"),
		styles.MutedText.Render(fmt.Sprintf("%d entries", m.console.Len())),
		styles.MutedText.Render(fmt.Sprintf("%d lines", m.console.MaxLines())),
	}
	if n := m.console.Watching(); n > 0 {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d watching", n)))
	}
	if off := m.console.ScrollOffset(); off != 0 {
		parts = append(parts, styles.Text.Render(fmt.Sprintf("offset %d", off)))
	}
	if m.console.Timestamps() {
		parts = append(parts, styles.Text.Render("timestamps"))
	}
	if m.console.Locked() {
		parts = append(parts, styles.WarningText.Render("LOCKED"))
	}
	sep := styles.FaintText.Render(" · ")
	return styles.Header.Render(strings.Join(parts, sep))
}
