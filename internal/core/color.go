package core

// Color is a foreground color identifier for a screen cell. The platform
// layer maps it to concrete terminal styles; the core never touches
// terminal attributes directly.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)
