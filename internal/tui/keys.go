package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the app-level key bindings. Screen-specific navigation
// lives in the components package.
type KeyMap struct {
	Quit            key.Binding
	ForceQuit       key.Binding
	Help            key.Binding
	Enter           key.Binding
	Back            key.Binding
	Filter          key.Binding
	ResetOnboarding key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter", "l", "right"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "h", "left"),
			key.WithHelp("esc", "back"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ResetOnboarding: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "reset onboarding"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
