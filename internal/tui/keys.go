package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/advgame/internal/engine"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Number  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "w", "W"),
		key.WithHelp("↑/w", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "s", "S"),
		key.WithHelp("↓/s", "down"),
	),
	Number: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", "y", "Y"),
		key.WithHelp("y/enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("backspace", "n", "N"),
		key.WithHelp("n", "decline"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Number, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Cancel}}
}

// actionFor decodes a key press into an engine action.
func actionFor(msg tea.KeyMsg) engine.Action {
	switch {
	case key.Matches(msg, keys.Quit):
		return engine.Quit
	case key.Matches(msg, keys.Confirm):
		return engine.Confirm
	case key.Matches(msg, keys.Number):
		return engine.Number(int(msg.Runes[0] - '0'))
	case key.Matches(msg, keys.Up):
		return engine.Up
	case key.Matches(msg, keys.Down):
		return engine.Down
	case key.Matches(msg, keys.Cancel):
		return engine.Cancel
	}
	return engine.Unimplemented
}
