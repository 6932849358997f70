package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Reset      key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Cycle      key.Binding
	CloseModal key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Easy:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Medium:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Hard:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Cycle:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "difficulty")),
		CloseModal: key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "close")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Cycle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Reset, k.CloseModal},
		{k.Easy, k.Medium, k.Hard, k.Cycle},
		{k.Quit},
	}
}

// syncEnabled enables only the bindings that apply in the current state.
func (k *keyMap) syncEnabled(m *Model) {
	k.Start.SetEnabled(m.showStart)
	k.Reset.SetEnabled(m.showReset)
	k.Easy.SetEnabled(m.difficultyEnabled)
	k.Medium.SetEnabled(m.difficultyEnabled)
	k.Hard.SetEnabled(m.difficultyEnabled)
	k.Cycle.SetEnabled(m.difficultyEnabled)
	k.CloseModal.SetEnabled(m.results != nil && m.modalOpen)
}
