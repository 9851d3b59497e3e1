package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/backscroll/internal/live"
)

// handleInputKey processes keys while the input line is open.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.submit(m.input.Value())
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

// submit logs text, or for "name=value" sets the watch called name,
// creating it on first use.
func (m *Model) submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	name, value, ok := parseAssignment(text)
	if !ok {
		m.console.Log(text)
		return
	}
	if v, exists := m.inputWatches[name]; exists {
		v.Set(value)
		return
	}
	v := live.NewValue(value)
	m.inputWatches[name] = v
	m.console.Watch(name, v)
}

// parseAssignment splits "name=value". The name must be a single word.
func parseAssignment(text string) (name, value string, ok bool) {
	name, value, found := strings.Cut(text, "=")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", "", false
	}
	return name, strings.TrimSpace(value), true
}
