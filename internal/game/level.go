package game

import (
	"github.com/fdfdjfk3/box-pushing-game/internal/core"
)

// Level owns the full tile set for one level plus the player spawn and
// metadata. Templates are immutable records; a running session clones a
// template into a mutable working copy before play (see Session).
type Level struct {
	// ID is a short stable identifier, used for completion records.
	ID string
	// Name is the display name shown in level lists.
	Name string
	// Tiles is the ordered tile collection. Order matters: move
	// resolution scans tiles at a cell in this order.
	Tiles []Tile
	// PlayerSpawn is where the player is placed on (re)load.
	PlayerSpawn core.Position
	// Flavor is an optional one-line text shown in the HUD; empty means
	// none.
	Flavor string

	// Linkage relation, built by Clone for working copies: button
	// positions and door tile indices per link id. Buttons and doors
	// never change position, only boxes move, so this index stays valid
	// for the lifetime of the clone.
	buttonsByLink map[LinkID][]core.Position
	doorsByLink   map[LinkID][]int
}

// NewLevel constructs a level template.
func NewLevel(id, name string, tiles []Tile, spawn core.Position, flavor string) Level {
	return Level{
		ID:          id,
		Name:        name,
		Tiles:       tiles,
		PlayerSpawn: spawn,
		Flavor:      flavor,
	}
}

// Clone returns a deep, mutable working copy of the level with the
// button/door linkage relation built.
func (l *Level) Clone() *Level {
	tiles := make([]Tile, len(l.Tiles))
	copy(tiles, l.Tiles)

	c := &Level{
		ID:          l.ID,
		Name:        l.Name,
		Tiles:       tiles,
		PlayerSpawn: l.PlayerSpawn,
		Flavor:      l.Flavor,
	}
	c.buildLinkage()
	return c
}

// buildLinkage indexes button positions and door tile indices by link id.
func (l *Level) buildLinkage() {
	l.buttonsByLink = make(map[LinkID][]core.Position)
	l.doorsByLink = make(map[LinkID][]int)

	for i, t := range l.Tiles {
		switch t.Type.Kind {
		case TileButton:
			l.buttonsByLink[t.Type.Link] = append(l.buttonsByLink[t.Type.Link], t.Pos)
		case TileDoor:
			if t.Type.Linked {
				l.doorsByLink[t.Type.Link] = append(l.doorsByLink[t.Type.Link], i)
			}
		}
	}
}

// TilesAt returns pointers to every tile occupying pos: zero, one or many.
func (l *Level) TilesAt(pos core.Position) []*Tile {
	var out []*Tile
	for i := range l.Tiles {
		if l.Tiles[i].Pos.Equal(pos) {
			out = append(out, &l.Tiles[i])
		}
	}
	return out
}

// At returns copies of every tile occupying pos. Read-only counterpart of
// TilesAt for callers that must not mutate level state.
func (l *Level) At(pos core.Position) []Tile {
	var out []Tile
	for _, t := range l.Tiles {
		if t.Pos.Equal(pos) {
			out = append(out, t)
		}
	}
	return out
}

// CountSolidOrPushableAt counts tiles at pos that are solid or pushable.
// Used to decide whether a push has room to proceed.
func (l *Level) CountSolidOrPushableAt(pos core.Position) int {
	n := 0
	for _, t := range l.Tiles {
		if t.Pos.Equal(pos) && (t.Type.IsSolid() || t.Type.IsPushable()) {
			n++
		}
	}
	return n
}

// boxAt reports whether any box tile currently occupies pos.
func (l *Level) boxAt(pos core.Position) bool {
	for _, t := range l.Tiles {
		if t.Type.Kind == TilePushBox && t.Pos.Equal(pos) {
			return true
		}
	}
	return false
}

// MoveResult describes the outcome of one resolved move. Blocked moves are
// normal outcomes, not errors; they leave the player unchanged.
type MoveResult struct {
	PlayerMoved bool
	BoxesPushed int
}

// ResolveMove resolves one directional move for the player.
//
// The push rule is single-box: only the one cell beyond the target is
// checked for room, so pushing a box into another box (or any solid tile)
// is always blocked. Chains of two or more boxes never move.
//
// When a push is blocked the scan over the target cell's remaining tiles
// continues rather than returning, matching the historical resolution
// order: a box at the cell can end up pushed while the player move is
// still rejected by another tile at the same cell. Kept deliberately;
// see the resolution-order test before changing this.
func (l *Level) ResolveMove(p *Player, d core.Direction) MoveResult {
	target := p.Pos.Step(d)
	beyond := target.Step(d)

	obstructions := l.CountSolidOrPushableAt(beyond)

	var res MoveResult
	canMove := true
	for _, t := range l.TilesAt(target) {
		if t.Type.IsSolid() {
			// The whole move aborts: the player stays put and no
			// further tile is considered.
			return res
		}
		if t.Type.IsPushable() {
			if obstructions == 0 {
				t.move(d)
				res.BoxesPushed++
			} else {
				canMove = false
			}
		}
	}

	if canMove {
		p.Pos = target
		res.PlayerMoved = true
	}
	return res
}

// RecomputeLinkage re-evaluates button satisfaction and door open flags
// from scratch. Runs every turn after movement.
//
// A link id is satisfied iff every one of its button positions currently
// holds the player or a box. Door flags are recomputed, not latched: a
// door re-closes as soon as its id becomes unsatisfied. An id referenced
// by a door but owning no buttons is unsatisfied, so the door stays
// closed. Unlinked doors are never touched.
func (l *Level) RecomputeLinkage(playerPos core.Position) {
	if l.buttonsByLink == nil {
		l.buildLinkage()
	}

	satisfied := make(map[LinkID]bool, len(l.buttonsByLink))
	for id, positions := range l.buttonsByLink {
		satisfied[id] = true
		for _, pos := range positions {
			if !playerPos.Equal(pos) && !l.boxAt(pos) {
				satisfied[id] = false
				break
			}
		}
	}

	for id, indices := range l.doorsByLink {
		open := satisfied[id] // missing id defaults to false
		for _, i := range indices {
			l.Tiles[i].Type.Open = open
		}
	}
}
