package game

import "github.com/fdfdjfk3/box-pushing-game/internal/core"

// DefaultPlayerGlyph is used when no glyph is configured.
const DefaultPlayerGlyph = 'X'

// Player is the single player token. Exactly one exists per session.
// Movement goes through Level.ResolveMove; nothing else repositions the
// player except a level (re)load, which resets it to the spawn.
type Player struct {
	Pos   core.Position
	Glyph rune
}
