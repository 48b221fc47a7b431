package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Increment key.Binding
	Decrement key.Binding
	Today     key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Sync      key.Binding
	Theme     key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev tab")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrement")),
		Today:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "today's routine")),
		Duplicate: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "duplicate day")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete task")),
		Sync:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync codeforces")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Toggle, k.Sync, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Toggle, k.Increment, k.Decrement, k.Delete},
		{k.Today, k.Duplicate, k.Sync, k.Theme},
		{k.Reload, k.Help, k.Quit},
	}
}
