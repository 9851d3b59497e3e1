package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Scrolling
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Console controls
	Clear      key.Binding
	Lock       key.Binding
	Timestamps key.Binding
	MoreLines  key.Binding
	FewerLines key.Binding

	// Input line
	Input   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Scrolling
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Scroll to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Scroll to bottom"),
		),

		// Console controls
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear console"),
		),
		Lock: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle lock"),
		),
		Timestamps: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle timestamps"),
		),
		MoreLines: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More lines"),
		),
		FewerLines: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Fewer lines"),
		),

		// Input line
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Log or watch"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Lock, k.Input, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Clear, k.Lock, k.Timestamps, k.MoreLines, k.FewerLines},
		{k.Input, k.Confirm, k.Cancel},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
