package levels

import (
	"testing"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
)

func TestBuiltinCampaignValid(t *testing.T) {
	campaign := Builtin()
	if len(campaign) != 3 {
		t.Fatalf("expected 3 built-in levels, got %d", len(campaign))
	}

	seen := make(map[string]bool)
	for i, lvl := range campaign {
		if lvl.ID == "" {
			t.Errorf("level %d has empty ID", i)
		}
		if seen[lvl.ID] {
			t.Errorf("duplicate level ID %q", lvl.ID)
		}
		seen[lvl.ID] = true

		if lvl.Name == "" {
			t.Errorf("level %q has empty name", lvl.ID)
		}
		if len(lvl.Tiles) == 0 {
			t.Errorf("level %q has no tiles", lvl.ID)
		}

		// The spawn must not be inside a solid tile
		w := lvl.Clone()
		for _, tile := range w.At(lvl.PlayerSpawn) {
			if tile.Type.IsSolid() {
				t.Errorf("level %q spawns the player inside %v", lvl.ID, tile.Type)
			}
		}

		// At least one goal, or the level cannot be won
		goals := 0
		buttons := make(map[game.LinkID]int)
		for _, tile := range lvl.Tiles {
			switch tile.Type.Kind {
			case game.TileGoal:
				goals++
			case game.TileButton:
				buttons[tile.Type.Link]++
			}
		}
		if goals == 0 {
			t.Errorf("level %q has no goal pad", lvl.ID)
		}

		// Every linked door must have at least one button, or it can
		// never open
		for _, tile := range lvl.Tiles {
			if tile.Type.Kind == game.TileDoor && tile.Type.Linked && buttons[tile.Type.Link] == 0 {
				t.Errorf("level %q: door %v has no buttons", lvl.ID, tile.Type)
			}
		}
	}
}

// step runs one full turn: movement then update.
func step(t *testing.T, s *game.Session, d core.Direction) game.TurnResult {
	t.Helper()
	if _, err := s.PlayerMovement(d); err != nil {
		t.Fatalf("PlayerMovement(%v): %v", d, err)
	}
	res, err := s.Update()
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	return res
}

func TestWalkthroughFirstSteps(t *testing.T) {
	s := game.NewSession(Builtin(), 'X')
	if err := s.LoadCurrentLevel(); err != nil {
		t.Fatal(err)
	}

	// Spawn (3,3), goal at (26,13): walk right 23, then down 10.
	for i := 0; i < 23; i++ {
		step(t, s, core.DirRight)
	}
	if !s.Player().Pos.Equal(core.P(26, 3)) {
		t.Fatalf("player at %v, expected (26,3)", s.Player().Pos)
	}
	var res game.TurnResult
	for i := 0; i < 10; i++ {
		res = step(t, s, core.DirDown)
	}

	if !res.AdvancedLevel {
		t.Fatal("reaching the goal should advance to level 2")
	}
	if s.LevelIndex() != 1 {
		t.Errorf("level index = %d, expected 1", s.LevelIndex())
	}
	if !s.Player().Pos.Equal(core.P(6, 14)) {
		t.Errorf("player at %v, expected the level 2 spawn (6,14)", s.Player().Pos)
	}
}

// The third level is the AND-latch scenario: Button(0) at (24,2) and
// (24,4), Door(0) at (28,3). The door is open only while both buttons are
// covered at once. Since it re-closes the moment a button is released,
// walking through takes a box parked on each button.
func TestWalkthroughBothAtOnce(t *testing.T) {
	s := game.NewSession(Builtin(), 'X')
	if err := s.LoadCurrentLevel(); err != nil {
		t.Fatal(err)
	}
	if err := s.IncrementLevel(); err != nil {
		t.Fatal(err)
	}
	if err := s.IncrementLevel(); err != nil {
		t.Fatal(err)
	}

	doorOpen := func() bool {
		return s.Active().At(core.P(28, 3))[0].Type.Open
	}
	boxAt := func(p core.Position) bool {
		for _, tile := range s.Active().At(p) {
			if tile.Type.Kind == game.TilePushBox {
				return true
			}
		}
		return false
	}

	// From the spawn (3,3), get above the first box at (10,3)
	step(t, s, core.DirUp)
	for i := 0; i < 7; i++ {
		step(t, s, core.DirRight)
	}
	if !s.Player().Pos.Equal(core.P(10, 2)) {
		t.Fatalf("player at %v, expected (10,2)", s.Player().Pos)
	}

	// One push moves box and player by the same vector
	step(t, s, core.DirDown)
	if !boxAt(core.P(10, 4)) {
		t.Fatal("box should be at (10,4) after one push down")
	}
	if !s.Player().Pos.Equal(core.P(10, 3)) {
		t.Fatalf("player at %v, expected (10,3)", s.Player().Pos)
	}

	// Roll the first box along row 4 onto the lower button (24,4)
	step(t, s, core.DirLeft)
	step(t, s, core.DirDown)
	for i := 0; i < 14; i++ {
		step(t, s, core.DirRight)
	}
	if !boxAt(core.P(24, 4)) {
		t.Fatal("first box should cover the lower button at (24,4)")
	}
	if doorOpen() {
		t.Fatal("one covered button must not open the door")
	}

	// Second box: (14,3) up to row 2, then along row 2 onto (24,2)
	for i := 0; i < 9; i++ {
		step(t, s, core.DirLeft)
	}
	step(t, s, core.DirUp) // push: box (14,3) -> (14,2), player (14,3)
	if !boxAt(core.P(14, 2)) {
		t.Fatal("second box should be at (14,2)")
	}
	step(t, s, core.DirLeft)
	step(t, s, core.DirUp)
	for i := 0; i < 10; i++ {
		step(t, s, core.DirRight)
	}
	if !boxAt(core.P(24, 2)) {
		t.Fatal("second box should cover the upper button at (24,2)")
	}
	if !doorOpen() {
		t.Fatal("door should open with both buttons covered")
	}

	// Through the open door to the goal at (35,3)
	step(t, s, core.DirDown) // (23,3)
	for i := 0; i < 12; i++ {
		res := step(t, s, core.DirRight)
		if s.Player().Pos.Equal(core.P(35, 3)) {
			if !res.CampaignComplete {
				t.Fatal("winning the last level should complete the campaign")
			}
			return
		}
	}
	t.Fatalf("never reached the goal; stuck at %v", s.Player().Pos)
}
