// Package core provides fundamental types and utilities for the puzzle
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "fmt"

// Position is an integer coordinate on the tile grid.
// X increases to the right, Y increases downward (screen coordinates).
// The grid is unbounded: tiles simply occupy coordinates, no dimensions
// are stored anywhere.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns a new Position one step in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Equal returns true if two positions are the same.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Direction represents a unit movement direction on the grid.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}
