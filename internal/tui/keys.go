package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Section   key.Binding
	Back      key.Binding

	Select    key.Binding
	Plan      key.Binding
	Satellite key.Binding
	Quote     key.Binding

	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Close   key.Binding

	NextField key.Binding
	PrevField key.Binding
	PrevLot   key.Binding
	NextLot   key.Binding
	Submit    key.Binding
	WhatsApp  key.Binding
	Another   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Help:      key.NewBinding(key.WithKeys("h", "?")),
		Section:   key.NewBinding(key.WithKeys("tab")),
		Back:      key.NewBinding(key.WithKeys("esc")),

		Select:    key.NewBinding(key.WithKeys("enter")),
		Plan:      key.NewBinding(key.WithKeys("v", "p")),
		Satellite: key.NewBinding(key.WithKeys("s")),
		Quote:     key.NewBinding(key.WithKeys("r", "c")),

		ZoomIn:  key.NewBinding(key.WithKeys("+", "=")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Reset:   key.NewBinding(key.WithKeys("0")),
		Close:   key.NewBinding(key.WithKeys("esc", "x", "backspace")),

		NextField: key.NewBinding(key.WithKeys("tab")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab")),
		PrevLot:   key.NewBinding(key.WithKeys("left")),
		NextLot:   key.NewBinding(key.WithKeys("right")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s")),
		WhatsApp:  key.NewBinding(key.WithKeys("ctrl+w")),
		Another:   key.NewBinding(key.WithKeys("enter")),
	}
}
