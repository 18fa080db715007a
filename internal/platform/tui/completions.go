package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fdfdjfk3/box-pushing-game/internal/game"
	"github.com/fdfdjfk3/box-pushing-game/internal/storage"
)

// Completions board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 24  // Width of level list sidebar
	maxCompletions     = 100 // Max completions to load
)

// CompletionsKeyMap defines the key bindings for the completions board.
type CompletionsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CompletionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CompletionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextLevel, k.PrevLevel, k.Quit},
	}
}

// DefaultCompletionsKeyMap returns default key bindings.
func DefaultCompletionsKeyMap() CompletionsKeyMap {
	return CompletionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CompletionsModel is the Bubble Tea model for the completions screen.
type CompletionsModel struct {
	levels      []game.Level // Campaign levels in order
	levelCursor int          // Currently selected level index
	store       *storage.Store
	entries     []storage.Completion
	table       table.Model
	help        help.Model
	keys        CompletionsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewCompletionsModel creates a new completions model.
func NewCompletionsModel(store *storage.Store, levels []game.Level, width, height int) CompletionsModel {
	h := help.New()
	h.ShowAll = false

	m := CompletionsModel{
		levels:      levels,
		store:       store,
		keys:        DefaultCompletionsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.levels) > 0 {
		m.loadCompletions(m.levels[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *CompletionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Turns", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadCompletions loads completions for the given level ID.
func (m *CompletionsModel) loadCompletions(levelID string) {
	if m.store == nil {
		m.entries = nil
		m.updateTableRows()
		return
	}

	entries, err := m.store.BestCompletions(levelID, maxCompletions)
	if err != nil {
		m.entries = nil
	} else {
		m.entries = entries
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current completions.
func (m *CompletionsModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Turns),
			fmt.Sprintf("%d:%02d", e.Duration/60, e.Duration%60),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the completions model.
func (m CompletionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the completions board.
func (m CompletionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.levelCursor = (m.levelCursor + 1) % len(m.levels)
				m.loadCompletions(m.levels[m.levelCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.levelCursor--
				if m.levelCursor < 0 {
					m.levelCursor = len(m.levels) - 1
				}
				m.loadCompletions(m.levels[m.levelCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the completions board.
func (m CompletionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST CLEARS"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("BEST CLEARS - %s", m.levels[m.levelCursor].Name)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderTableContent())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board with a sidebar for level selection.
func (m CompletionsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.levelCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := lvl.Name
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderTableContent renders the table or empty message.
func (m CompletionsModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No clears recorded yet.\nFinish a level to set a record!")
	}

	return m.table.View()
}

// RunCompletions runs the completions screen.
func RunCompletions(store *storage.Store, levels []game.Level, width, height int) error {
	model := NewCompletionsModel(store, levels, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
