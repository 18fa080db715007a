package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
	"github.com/fdfdjfk3/box-pushing-game/internal/storage"
)

// PlayModel is the Bubble Tea model for playing a campaign.
type PlayModel struct {
	session   *game.Session
	screen    *core.Screen
	store     *storage.Store
	keyMapper *KeyMapper
	help      help.Model
	levelLoad time.Time // when the active level was loaded
	now       time.Time
	quitting  bool
	loadErr   error
}

// NewPlayModel creates a new play model for the given session.
// The store may be nil; completions are then not persisted.
func NewPlayModel(session *game.Session, store *storage.Store, width, height int) PlayModel {
	h := help.New()
	h.ShowAll = false

	return PlayModel{
		session:   session,
		screen:    core.NewScreen(width, height),
		store:     store,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init loads the first level and starts the clock.
func (m PlayModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return levelLoadedMsg{} },
		clockTickCmd(),
	)
}

// levelLoadedMsg triggers the initial level load inside the update loop,
// so load errors surface through the model rather than a constructor.
type levelLoadedMsg struct{}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case levelLoadedMsg:
		if err := m.session.LoadCurrentLevel(); err != nil {
			m.loadErr = err
			m.quitting = true
			return m, tea.Quit
		}
		m.levelLoad = time.Now()
		m.now = m.levelLoad
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case ClockTickMsg:
		m.now = time.Time(msg)
		return m, clockTickCmd()
	}

	return m, nil
}

// handleKey translates a key into a command and runs one full turn.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keyMapper.MapKey(msg)

	switch cmd {
	case core.CmdNone:
		return m, nil
	case core.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}

	// After the campaign is won the board is frozen except for quit.
	if m.session.Complete() {
		return m, nil
	}

	if err := m.session.Apply(cmd); err != nil {
		// No active level; nothing to play.
		m.loadErr = err
		m.quitting = true
		return m, tea.Quit
	}
	if cmd == core.CmdReload {
		m.levelLoad = time.Now()
		return m, nil
	}

	// Record the level being played before Update may advance past it.
	finishedID := ""
	if lvl := m.session.Active(); lvl != nil {
		finishedID = lvl.ID
	}
	turns := m.session.Turns()

	result, err := m.session.Update()
	if err != nil {
		m.loadErr = err
		m.quitting = true
		return m, tea.Quit
	}

	if result.AdvancedLevel || result.CampaignComplete {
		m.saveCompletion(finishedID, turns)
		m.levelLoad = time.Now()
	}

	return m, nil
}

// saveCompletion persists a level completion, best-effort.
func (m *PlayModel) saveCompletion(levelID string, turns int) {
	if m.store == nil || levelID == "" {
		return
	}
	duration := int(time.Since(m.levelLoad).Seconds())
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveCompletion(levelID, turns, duration)
}

// Err returns the error that ended the session, if any.
func (m PlayModel) Err() error {
	return m.loadErr
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	elapsed := m.now.Sub(m.levelLoad)
	if elapsed < 0 {
		elapsed = 0
	}
	DrawSnapshot(m.screen, m.session.Snapshot(), elapsed)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(session *game.Session, store *storage.Store, width, height int) error {
	model := NewPlayModel(session, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(PlayModel); ok && pm.Err() != nil {
		return pm.Err()
	}
	return nil
}
