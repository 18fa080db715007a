// Package levels provides level templates: the built-in campaign and a
// loader for custom level directories. This package depends on game but
// game does not depend on levels.
package levels

import (
	"github.com/fdfdjfk3/box-pushing-game/internal/core"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
)

// WallRun builds a straight run of wall tiles starting at origin and
// extending length cells in the given direction.
func WallRun(origin core.Position, d core.Direction, length int) []game.Tile {
	tiles := make([]game.Tile, 0, length)
	pos := origin
	for i := 0; i < length; i++ {
		tiles = append(tiles, game.Tile{Pos: pos, Type: game.Wall()})
		pos = pos.Step(d)
	}
	return tiles
}

func tile(x, y int, tt game.TileType) []game.Tile {
	return []game.Tile{{Pos: core.P(x, y), Type: tt}}
}

func concat(groups ...[]game.Tile) []game.Tile {
	var out []game.Tile
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Builtin returns the built-in campaign in play order.
func Builtin() []game.Level {
	return []game.Level{
		game.NewLevel("01-first-steps", "First Steps",
			concat(
				WallRun(core.P(0, 0), core.DirRight, 30),
				WallRun(core.P(0, 0), core.DirDown, 7),
				WallRun(core.P(0, 6), core.DirRight, 23),
				WallRun(core.P(23, 6), core.DirDown, 10),
				WallRun(core.P(23, 16), core.DirRight, 7),
				WallRun(core.P(29, 16), core.DirUp, 17),
				tile(26, 13, game.Goal()),
			),
			core.P(3, 3),
			"Welcome",
		),
		game.NewLevel("02-two-buttons", "Two Buttons",
			concat(
				WallRun(core.P(5, 15), core.DirRight, 30),
				WallRun(core.P(34, 14), core.DirUp, 15),
				WallRun(core.P(34, 0), core.DirLeft, 35),
				WallRun(core.P(0, 0), core.DirDown, 10),
				WallRun(core.P(0, 9), core.DirRight, 31),
				WallRun(core.P(32, 9), core.DirRight, 2),
				WallRun(core.P(5, 14), core.DirUp, 5),
				WallRun(core.P(17, 14), core.DirUp, 2),
				tile(17, 12, game.Door(0, false)),
				WallRun(core.P(17, 11), core.DirUp, 2),
				tile(11, 10, game.Button(0)),
				tile(2, 7, game.Goal()),
				tile(31, 9, game.Door(1, false)),
				tile(33, 14, game.Button(1)),
			),
			core.P(6, 14),
			"Buttons? What do they do?",
		),
		game.NewLevel("03-both-at-once", "Both At Once",
			concat(
				WallRun(core.P(0, 0), core.DirRight, 40),
				WallRun(core.P(0, 0), core.DirDown, 6),
				WallRun(core.P(0, 6), core.DirRight, 40),
				WallRun(core.P(39, 0), core.DirDown, 6),
				WallRun(core.P(28, 0), core.DirDown, 3),
				WallRun(core.P(28, 6), core.DirUp, 3),
				tile(28, 3, game.Door(0, false)),
				tile(24, 2, game.Button(0)),
				tile(24, 4, game.Button(0)),
				tile(10, 3, game.PushBox()),
				tile(14, 3, game.PushBox()),
				tile(35, 3, game.Goal()),
			),
			core.P(3, 3),
			"You must activate both buttons at once.",
		),
	}
}
