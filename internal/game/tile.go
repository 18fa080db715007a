// Package game implements the level simulation core: the tile model, the
// movement-resolution algorithm, the button/door linkage rule and the
// session state machine. This package is UI-agnostic and deterministic;
// it never imports the platform layer.
package game

import (
	"fmt"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
)

// LinkID groups button tiles with the door tiles they control.
type LinkID int

// TileKind enumerates the closed set of tile variants.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TilePushBox
	TileButton
	TileDoor
	TileGoal
)

// String returns the string representation of a tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TilePushBox:
		return "box"
	case TileButton:
		return "button"
	case TileDoor:
		return "door"
	case TileGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// TileType is the semantic type of a grid cell.
//
// Link is the button/door group id; it is meaningful for buttons always and
// for doors only when Linked is true. A door with Linked false never toggles
// via the linkage recompute. Open is meaningful for doors only.
type TileType struct {
	Kind   TileKind
	Link   LinkID
	Linked bool
	Open   bool
}

// Constructors for the tile variants.

func Empty() TileType { return TileType{Kind: TileEmpty} }

func Wall() TileType { return TileType{Kind: TileWall} }

func PushBox() TileType { return TileType{Kind: TilePushBox} }

func Goal() TileType { return TileType{Kind: TileGoal} }

func Button(id LinkID) TileType { return TileType{Kind: TileButton, Link: id, Linked: true} }

func Door(id LinkID, open bool) TileType {
	return TileType{Kind: TileDoor, Link: id, Linked: true, Open: open}
}

// UnlinkedDoor returns a door with no button group. Its open flag is fixed:
// the linkage recompute leaves it untouched.
func UnlinkedDoor(open bool) TileType {
	return TileType{Kind: TileDoor, Open: open}
}

// IsSolid reports whether the tile blocks entry: walls always, doors only
// while closed.
func (t TileType) IsSolid() bool {
	switch t.Kind {
	case TileWall:
		return true
	case TileDoor:
		return !t.Open
	default:
		return false
	}
}

// IsPushable reports whether the tile moves when pushed. Only boxes do.
func (t TileType) IsPushable() bool {
	return t.Kind == TilePushBox
}

// StoodOnEvent returns the event emitted when the player stands on this
// tile. Every tile at the player's position emits independently; the
// session aggregates them once per turn.
func (t TileType) StoodOnEvent() Event {
	switch t.Kind {
	case TileGoal:
		return EventWin
	case TileButton:
		return EventPressButton
	default:
		return EventNothing
	}
}

// Glyph returns the display rune for this tile.
func (t TileType) Glyph() rune {
	switch t.Kind {
	case TileWall:
		return 'B'
	case TilePushBox:
		return '@'
	case TileButton:
		return '^'
	case TileDoor:
		return 'D'
	case TileGoal:
		return '#'
	default:
		return ' '
	}
}

// String returns a compact description, e.g. "button(0)" or "door(1,open)".
func (t TileType) String() string {
	switch t.Kind {
	case TileButton:
		return fmt.Sprintf("button(%d)", t.Link)
	case TileDoor:
		state := "closed"
		if t.Open {
			state = "open"
		}
		if !t.Linked {
			return fmt.Sprintf("door(unlinked,%s)", state)
		}
		return fmt.Sprintf("door(%d,%s)", t.Link, state)
	default:
		return t.Kind.String()
	}
}

// Event is something a tile signals when the player stands on it.
type Event uint8

const (
	EventNothing Event = iota
	EventPressButton
	EventWin
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNothing:
		return "Nothing"
	case EventPressButton:
		return "PressButton"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Tile is a grid cell with a position and a semantic type. Multiple tiles
// may legally occupy the same position (a button under a box, for
// example); spatial queries return all of them.
//
// Positions are fixed at level construction except for boxes (moved by
// pushes) and the Open flag of linked doors (recomputed every turn).
type Tile struct {
	Pos  core.Position
	Type TileType
}

// move shifts the tile one step in the given direction. Only applied to
// boxes during push resolution.
func (t *Tile) move(d core.Direction) {
	t.Pos = t.Pos.Step(d)
}
