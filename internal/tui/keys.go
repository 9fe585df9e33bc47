package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	Calculator   key.Binding
	NewRecord    key.Binding
	Applications key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Calculate key.Binding
	Cancel    key.Binding
	Left      key.Binding
	Right     key.Binding
	SaveRates key.Binding

	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Reset   key.Binding
	Export  key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Deny    key.Binding
	Back    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Calculator:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "pay calculator")),
		NewRecord:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "new application")),
		Applications: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "applications")),
		NextTab:      key.NewBinding(key.WithKeys("ctrl+n", "ctrl+right"), key.WithHelp("ctrl+n", "next tab")),
		PrevTab:      key.NewBinding(key.WithKeys("ctrl+p", "ctrl+left"), key.WithHelp("ctrl+p", "prev tab")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Calculate: key.NewBinding(key.WithKeys("enter", "ctrl+r"), key.WithHelp("enter", "calculate")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "change option")),
		Right:     key.NewBinding(key.WithKeys("right")),
		SaveRates: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save rates")),

		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete all")),
		Export:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Deny:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) tabBindings() []key.Binding {
	return []key.Binding{k.Calculator, k.NewRecord, k.Applications, k.Quit}
}
