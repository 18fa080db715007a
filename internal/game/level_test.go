package game

import (
	"testing"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
)

// testLevel builds a working copy around the given tiles with the player
// spawning at (1,1).
func testLevel(t *testing.T, tiles ...Tile) *Level {
	t.Helper()
	tpl := NewLevel("test", "Test", tiles, core.P(1, 1), "")
	return tpl.Clone()
}

func tileAt(x, y int, tt TileType) Tile {
	return Tile{Pos: core.P(x, y), Type: tt}
}

func TestTilesAtReturnsAllOccupants(t *testing.T) {
	l := testLevel(t,
		tileAt(4, 2, Button(0)),
		tileAt(4, 2, PushBox()),
		tileAt(5, 2, Wall()),
	)

	got := l.TilesAt(core.P(4, 2))
	if len(got) != 2 {
		t.Fatalf("TilesAt returned %d tiles, expected 2 (button under box)", len(got))
	}
	if got[0].Type.Kind != TileButton || got[1].Type.Kind != TilePushBox {
		t.Errorf("TilesAt must preserve tile order, got %v then %v", got[0].Type, got[1].Type)
	}

	if n := len(l.At(core.P(9, 9))); n != 0 {
		t.Errorf("At on empty cell returned %d tiles", n)
	}
}

func TestCountSolidOrPushableAt(t *testing.T) {
	l := testLevel(t,
		tileAt(3, 3, Wall()),
		tileAt(3, 3, PushBox()),
		tileAt(3, 3, Button(0)),
		tileAt(4, 3, Door(0, true)),
	)

	if n := l.CountSolidOrPushableAt(core.P(3, 3)); n != 2 {
		t.Errorf("expected 2 solid/pushable tiles, got %d", n)
	}
	// Open door counts as neither
	if n := l.CountSolidOrPushableAt(core.P(4, 3)); n != 0 {
		t.Errorf("open door should not obstruct, got %d", n)
	}
}

func TestMoveIntoWallIsBlocked(t *testing.T) {
	l := testLevel(t, tileAt(2, 1, Wall()))
	p := Player{Pos: core.P(1, 1), Glyph: 'X'}

	res := l.ResolveMove(&p, core.DirRight)
	if res.PlayerMoved {
		t.Error("moving into a wall must not move the player")
	}
	if !p.Pos.Equal(core.P(1, 1)) {
		t.Errorf("player position changed to %v", p.Pos)
	}

	// Blocked moves are idempotent
	l.ResolveMove(&p, core.DirRight)
	if !p.Pos.Equal(core.P(1, 1)) {
		t.Errorf("repeated blocked move changed position to %v", p.Pos)
	}
}

func TestMoveIntoClosedDoorIsBlocked(t *testing.T) {
	l := testLevel(t, tileAt(1, 0, Door(0, false)))
	p := Player{Pos: core.P(1, 1)}

	if res := l.ResolveMove(&p, core.DirUp); res.PlayerMoved {
		t.Error("closed door must block entry")
	}

	// Open it and the same move succeeds
	l.TilesAt(core.P(1, 0))[0].Type.Open = true
	if res := l.ResolveMove(&p, core.DirUp); !res.PlayerMoved {
		t.Error("open door must be passable")
	}
}

func TestPushBoxIntoEmptySpace(t *testing.T) {
	// Scenario from the reference data: spawn (3,3), box at (3,10) in
	// row/col terms. Here: player (3,3), box at (10,3), empty beyond.
	l := testLevel(t, tileAt(10, 3, PushBox()))
	p := Player{Pos: core.P(9, 3)}

	res := l.ResolveMove(&p, core.DirRight)
	if !res.PlayerMoved || res.BoxesPushed != 1 {
		t.Fatalf("push failed: %+v", res)
	}
	if !p.Pos.Equal(core.P(10, 3)) {
		t.Errorf("player at %v, expected (10,3)", p.Pos)
	}
	if !l.boxAt(core.P(11, 3)) {
		t.Error("box should have advanced to (11,3)")
	}

	// Repeating the push continues one box-length at a time
	res = l.ResolveMove(&p, core.DirRight)
	if !res.PlayerMoved || !l.boxAt(core.P(12, 3)) {
		t.Errorf("second push failed: %+v, box at (12,3)=%v", res, l.boxAt(core.P(12, 3)))
	}
}

func TestPushBoxIntoObstruction(t *testing.T) {
	tests := []struct {
		name   string
		beyond TileType
	}{
		{name: "wall beyond", beyond: Wall()},
		{name: "box beyond (no chain pushes)", beyond: PushBox()},
		{name: "closed door beyond", beyond: Door(0, false)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := testLevel(t,
				tileAt(2, 1, PushBox()),
				tileAt(3, 1, tc.beyond),
			)
			p := Player{Pos: core.P(1, 1)}

			res := l.ResolveMove(&p, core.DirRight)
			if res.PlayerMoved || res.BoxesPushed != 0 {
				t.Errorf("blocked push must move nothing, got %+v", res)
			}
			if !l.boxAt(core.P(2, 1)) {
				t.Error("box moved despite obstruction")
			}
		})
	}
}

func TestPushBoxThroughOpenDoor(t *testing.T) {
	l := testLevel(t,
		tileAt(2, 1, PushBox()),
		tileAt(3, 1, Door(0, true)),
	)
	p := Player{Pos: core.P(1, 1)}

	res := l.ResolveMove(&p, core.DirRight)
	if !res.PlayerMoved || res.BoxesPushed != 1 {
		t.Errorf("box should push through an open door, got %+v", res)
	}
	if !l.boxAt(core.P(3, 1)) {
		t.Error("box should sit on the open door cell")
	}
}

// The resolution order quirk, preserved on purpose: tiles at the target
// cell are scanned in collection order, so a box early in the order can be
// pushed before a later solid tile at the same cell aborts the player
// move. The box stays moved.
func TestResolutionOrderBoxMovesWhileMoveAborts(t *testing.T) {
	l := testLevel(t,
		tileAt(2, 1, PushBox()),
		tileAt(2, 1, Wall()),
	)
	p := Player{Pos: core.P(1, 1)}

	res := l.ResolveMove(&p, core.DirRight)
	if res.PlayerMoved {
		t.Error("player must not enter a cell containing a wall")
	}
	if res.BoxesPushed != 1 || !l.boxAt(core.P(3, 1)) {
		t.Error("box scanned before the wall should still have been pushed")
	}

	// Opposite order: the wall aborts before the box is considered.
	l2 := testLevel(t,
		tileAt(2, 1, Wall()),
		tileAt(2, 1, PushBox()),
	)
	p2 := Player{Pos: core.P(1, 1)}
	res2 := l2.ResolveMove(&p2, core.DirRight)
	if res2.PlayerMoved || res2.BoxesPushed != 0 {
		t.Errorf("wall first must abort before any push, got %+v", res2)
	}
	if !l2.boxAt(core.P(2, 1)) {
		t.Error("box must not have moved")
	}
}

func TestButtonSatisfactionByPlayerAndBox(t *testing.T) {
	l := testLevel(t,
		tileAt(4, 2, Button(0)),
		tileAt(8, 2, Door(0, false)),
	)

	// Nobody on the button: door stays closed
	l.RecomputeLinkage(core.P(0, 0))
	if l.At(core.P(8, 2))[0].Type.Open {
		t.Fatal("door opened with nothing on the button")
	}

	// Player on the button: door opens
	l.RecomputeLinkage(core.P(4, 2))
	if !l.At(core.P(8, 2))[0].Type.Open {
		t.Fatal("door should open while the player stands on the button")
	}

	// Player steps off: door re-closes (flag recomputed, not latched)
	l.RecomputeLinkage(core.P(5, 2))
	if l.At(core.P(8, 2))[0].Type.Open {
		t.Fatal("door should re-close once the button is released")
	}

	// A box on the button satisfies it just like the player
	l.Tiles = append(l.Tiles, tileAt(4, 2, PushBox()))
	l.RecomputeLinkage(core.P(0, 0))
	if !l.At(core.P(8, 2))[0].Type.Open {
		t.Fatal("door should open while a box covers the button")
	}
}

func TestSharedIDNeedsEveryButtonCovered(t *testing.T) {
	// Reference scenario: Button(0) at (24,2) and (24,4), Door(0) at
	// (28,3). The door opens only when both positions are covered at
	// once, which needs two boxes (the player can cover only one).
	l := testLevel(t,
		tileAt(24, 2, Button(0)),
		tileAt(24, 4, Button(0)),
		tileAt(28, 3, Door(0, false)),
	)
	door := func() Tile { return l.At(core.P(28, 3))[0] }

	// One button covered by the player: still closed
	l.RecomputeLinkage(core.P(24, 2))
	if door().Type.Open {
		t.Fatal("door opened with only one of two co-id buttons covered")
	}

	// One box + player on the other: open
	l.Tiles = append(l.Tiles, tileAt(24, 4, PushBox()))
	l.RecomputeLinkage(core.P(24, 2))
	if !door().Type.Open {
		t.Fatal("door should open with both buttons covered")
	}

	// Two boxes, player elsewhere: still open
	l.Tiles = append(l.Tiles, tileAt(24, 2, PushBox()))
	l.RecomputeLinkage(core.P(0, 0))
	if !door().Type.Open {
		t.Fatal("door should stay open with boxes on both buttons")
	}
}

func TestDoorWithNoButtonsStaysClosed(t *testing.T) {
	l := testLevel(t, tileAt(5, 5, Door(42, false)))

	l.RecomputeLinkage(core.P(5, 4))
	if l.At(core.P(5, 5))[0].Type.Open {
		t.Error("door referencing an id with zero buttons must stay closed")
	}
}

func TestUnlinkedDoorNeverToggles(t *testing.T) {
	l := testLevel(t,
		tileAt(5, 5, UnlinkedDoor(true)),
		tileAt(6, 5, UnlinkedDoor(false)),
		tileAt(2, 2, Button(0)),
	)

	l.RecomputeLinkage(core.P(2, 2)) // id 0 satisfied
	if !l.At(core.P(5, 5))[0].Type.Open {
		t.Error("open unlinked door must stay open")
	}
	if l.At(core.P(6, 5))[0].Type.Open {
		t.Error("closed unlinked door must stay closed")
	}
}

func TestCloneIsDeep(t *testing.T) {
	tpl := NewLevel("t", "T", []Tile{tileAt(2, 2, PushBox())}, core.P(1, 1), "hi")

	c := tpl.Clone()
	c.Tiles[0].Pos = core.P(9, 9)

	if !tpl.Tiles[0].Pos.Equal(core.P(2, 2)) {
		t.Error("mutating a clone must not touch the template")
	}
	if c.Flavor != "hi" || c.ID != "t" {
		t.Error("clone should carry metadata")
	}
}
