package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	yes  key.Binding
	no   key.Binding
	esc  key.Binding
	quit key.Binding
}

var keys = keyMap{
	yes:  key.NewBinding(key.WithKeys("y")),
	no:   key.NewBinding(key.WithKeys("n", "enter")),
	esc:  key.NewBinding(key.WithKeys("esc")),
	quit: key.NewBinding(key.WithKeys("ctrl+c")),
}
