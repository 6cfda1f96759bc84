package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	add       key.Binding
	remove    key.Binding
	pick      key.Binding
	pickAny   key.Binding
	up        key.Binding
	down      key.Binding
	focus     key.Binding
	editInput key.Binding
	quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.add, k.remove, k.pick, k.focus, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.add, k.remove, k.pick, k.pickAny},
		{k.up, k.down, k.focus, k.editInput, k.quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		remove:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		pick:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pick")),
		pickAny:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pick")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "list/input")),
		editInput: key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "edit input")),
		quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}
