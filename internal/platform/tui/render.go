package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fdfdjfk3/box-pushing-game/internal/core"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
)

// hudRows is the number of rows reserved above the play field.
const hudRows = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// DrawSnapshot renders a session snapshot into the screen buffer: a HUD
// header, the play field offset below it, and the player on top.
func DrawSnapshot(s *core.Screen, snap game.Snapshot, elapsed time.Duration) {
	s.Clear()

	header := fmt.Sprintf("level %d: %s", snap.LevelIndex+1, snap.Flavor)
	if snap.Flavor == "" {
		header = fmt.Sprintf("level %d: %s", snap.LevelIndex+1, snap.LevelName)
	}
	s.DrawText(0, 0, header, core.ColorBrightWhite)

	status := fmt.Sprintf("turns %d  time %s", snap.Turns, formatElapsed(elapsed))
	if snap.Complete {
		status = fmt.Sprintf("campaign complete in %d turns, press q to quit", snap.Turns)
	}
	s.DrawText(0, 1, status, core.ColorGray)

	for _, t := range snap.Tiles {
		s.SetCell(t.Pos.X, t.Pos.Y+hudRows, core.Cell{
			Rune:  t.Type.Glyph(),
			Color: tileColor(t.Type),
		})
	}

	s.SetCell(snap.PlayerPos.X, snap.PlayerPos.Y+hudRows, core.Cell{
		Rune:  snap.Glyph,
		Color: playerColor,
	})
}

// formatElapsed renders a duration as m:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
