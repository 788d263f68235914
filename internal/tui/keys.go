package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the prompt-level key bindings. Field editing and
// navigation keys belong to the individual components.
type KeyMap struct {
	Skip      key.Binding
	Interrupt key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "finish"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// InputHelpText returns help text for text questions.
func (k KeyMap) InputHelpText() string {
	return "enter confirm • esc finish • ctrl+c abort"
}

// ChoiceHelpText returns help text for choice questions.
func (k KeyMap) ChoiceHelpText() string {
	return "↑/↓ navigate • enter select • esc finish • ctrl+c abort"
}
