package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
//
// Buttons use control chords so plain letters still flow into the focused
// numeric field (typing free text into a field is allowed, it just doesn't
// commit).
type keyMap struct {
	next   key.Binding
	full   key.Binding
	nextVs key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		full:   key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "full song")),
		nextVs: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next verse")),
		quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.full, k.nextVs, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.full},
		{k.nextVs, k.quit},
	}
}
