package carousel

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Prev key.Binding
	Next key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
		Next: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	}
}
