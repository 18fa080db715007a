package tui

import (
	"github.com/fdfdjfk3/box-pushing-game/internal/core"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
)

// playerColor is the color the player glyph is drawn with.
const playerColor = core.ColorBrightYellow

// tileColor maps a tile type to a screen color. Doors change color with
// their open state so the player can read the level at a glance.
func tileColor(tt game.TileType) core.Color {
	switch tt.Kind {
	case game.TileWall:
		return core.ColorGray
	case game.TilePushBox:
		return core.ColorYellow
	case game.TileButton:
		return core.ColorCyan
	case game.TileDoor:
		if tt.Open {
			return core.ColorGreen
		}
		return core.ColorRed
	case game.TileGoal:
		return core.ColorBrightWhite
	default:
		return core.ColorDefault
	}
}
