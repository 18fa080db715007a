package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
)

// PlayKeyMap defines the key bindings for the play screen.
type PlayKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reload, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys PlayKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultPlayKeyMap()}
}

// Keys returns the underlying key map, for help rendering.
func (km *KeyMapper) Keys() PlayKeyMap {
	return km.keys
}

// MapKey translates a key message to a game command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.CmdMoveUp
	case key.Matches(msg, km.keys.Down):
		return core.CmdMoveDown
	case key.Matches(msg, km.keys.Left):
		return core.CmdMoveLeft
	case key.Matches(msg, km.keys.Right):
		return core.CmdMoveRight
	case key.Matches(msg, km.keys.Reload):
		return core.CmdReload
	case key.Matches(msg, km.keys.Quit):
		return core.CmdQuit
	}
	return core.CmdNone
}
