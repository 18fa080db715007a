package game

import (
	"errors"
	"fmt"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
)

// Session errors. Boundary conditions are surfaced to the caller instead
// of aborting: a failed transition leaves the session unchanged.
var (
	// ErrNoActiveLevel is returned by operations that require a loaded
	// level when none is active. Movement and event collection are
	// explicit no-ops in that state, never panics.
	ErrNoActiveLevel = errors.New("game: no active level")

	// ErrLevelNotFound is returned when the current level index has no
	// corresponding template.
	ErrLevelNotFound = errors.New("game: level not found")
)

// Session drives one play-through: it owns the player, the active level
// (a mutable clone) and the read-only list of level templates, and runs
// the per-turn update cycle. Single-threaded by design; each turn runs to
// completion before the next input is considered.
type Session struct {
	player Player
	levels []Level
	active *Level
	index  int

	turns    int
	complete bool
}

// NewSession creates a session over the given level templates. No level
// is active until LoadCurrentLevel is called.
func NewSession(levels []Level, playerGlyph rune) *Session {
	if playerGlyph == 0 {
		playerGlyph = DefaultPlayerGlyph
	}
	return &Session{
		player: Player{Glyph: playerGlyph},
		levels: levels,
	}
}

// LoadCurrentLevel clones the template at the current index into the
// active slot and resets the player to the clone's spawn. The previous
// active level, if any, is replaced wholesale. Idempotent: with no
// movement in between, loading twice yields identical state.
func (s *Session) LoadCurrentLevel() error {
	if s.index < 0 || s.index >= len(s.levels) {
		return fmt.Errorf("%w: index %d of %d levels", ErrLevelNotFound, s.index, len(s.levels))
	}
	s.active = s.levels[s.index].Clone()
	s.player.Pos = s.active.PlayerSpawn
	s.turns = 0
	return nil
}

// IncrementLevel advances to the next level and loads it. The index is
// validated before it is touched, so a failed call leaves the session on
// the current level.
func (s *Session) IncrementLevel() error {
	if s.index+1 >= len(s.levels) {
		return fmt.Errorf("%w: no level after index %d", ErrLevelNotFound, s.index)
	}
	s.index++
	return s.LoadCurrentLevel()
}

// DecrementLevel steps back to the previous level and loads it. Going
// below level 0 fails and leaves the session unchanged; the bounds check
// runs before the (unsigned-unsafe in other implementations) decrement.
func (s *Session) DecrementLevel() error {
	if s.index == 0 {
		return fmt.Errorf("%w: no level before index 0", ErrLevelNotFound)
	}
	s.index--
	return s.LoadCurrentLevel()
}

// PlayerMovement resolves one directional move on the active level.
// With no active level it is a guarded no-op returning ErrNoActiveLevel.
func (s *Session) PlayerMovement(d core.Direction) (MoveResult, error) {
	if s.active == nil {
		return MoveResult{}, ErrNoActiveLevel
	}
	s.turns++
	return s.active.ResolveMove(&s.player, d), nil
}

// CollectEvents returns the stood-on events of every tile at the player's
// current position. Pure read: no state is mutated, callable independent
// of Update.
func (s *Session) CollectEvents() []Event {
	if s.active == nil {
		return nil
	}
	tiles := s.active.At(s.player.Pos)
	events := make([]Event, 0, len(tiles))
	for _, t := range tiles {
		events = append(events, t.Type.StoodOnEvent())
	}
	return events
}

// TurnResult reports what one Update call did.
type TurnResult struct {
	// Events are the stood-on events aggregated at the player's position
	// this turn.
	Events []Event
	// AdvancedLevel is true when a Win event moved the session to the
	// next level. At most one advance happens per turn no matter how
	// many Win events fired.
	AdvancedLevel bool
	// CampaignComplete is true once a Win fires on the last level. The
	// level stays loaded; there is nowhere further to advance.
	CampaignComplete bool
}

// Update runs the post-movement phase of a turn: collect stood-on events,
// advance on win (exactly once), then recompute button/door satisfaction.
// With no active level it is a no-op returning ErrNoActiveLevel.
func (s *Session) Update() (TurnResult, error) {
	if s.active == nil {
		return TurnResult{}, ErrNoActiveLevel
	}

	res := TurnResult{Events: s.CollectEvents()}

	for _, e := range res.Events {
		if e != EventWin {
			continue
		}
		if s.index+1 >= len(s.levels) {
			s.complete = true
			res.CampaignComplete = true
		} else if err := s.IncrementLevel(); err != nil {
			return res, err
		} else {
			res.AdvancedLevel = true
		}
		break
	}

	s.active.RecomputeLinkage(s.player.Pos)
	return res, nil
}

// Apply translates one input command into session operations and runs the
// movement half of the turn. CmdNone and CmdQuit are ignored here; the
// platform owns quitting.
func (s *Session) Apply(cmd core.Command) error {
	if d, ok := cmd.Direction(); ok {
		_, err := s.PlayerMovement(d)
		return err
	}
	if cmd == core.CmdReload {
		return s.LoadCurrentLevel()
	}
	return nil
}

// Player returns the current player token.
func (s *Session) Player() Player {
	return s.player
}

// LevelIndex returns the current level index.
func (s *Session) LevelIndex() int {
	return s.index
}

// LevelCount returns the number of level templates.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// Active returns the active level, or nil before the first load.
func (s *Session) Active() *Level {
	return s.active
}

// Turns returns the number of movement commands applied since the active
// level was last loaded.
func (s *Session) Turns() int {
	return s.turns
}

// Complete reports whether a Win has fired on the last level.
func (s *Session) Complete() bool {
	return s.complete
}

// Snapshot is the read-only view handed to the presentation layer once
// per cycle. The renderer must not reach back into the session.
type Snapshot struct {
	LevelIndex int
	LevelID    string
	LevelName  string
	Flavor     string
	Tiles      []Tile
	PlayerPos  core.Position
	Glyph      rune
	Turns      int
	Complete   bool
}

// Snapshot captures the current state for rendering. Tiles are copied;
// mutating the snapshot cannot affect the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		LevelIndex: s.index,
		PlayerPos:  s.player.Pos,
		Glyph:      s.player.Glyph,
		Turns:      s.turns,
		Complete:   s.complete,
	}
	if s.active != nil {
		snap.LevelID = s.active.ID
		snap.LevelName = s.active.Name
		snap.Flavor = s.active.Flavor
		snap.Tiles = make([]Tile, len(s.active.Tiles))
		copy(snap.Tiles, s.active.Tiles)
	}
	return snap
}
