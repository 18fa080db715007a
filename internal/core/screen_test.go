package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with default spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorYellow})
	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v, expected yellow 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell should return blank, got %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "level 0: Welcome", ColorGray)

	if !strings.Contains(s.Row(1), "level 0: Welcome") {
		t.Errorf("Row(1) = %q, expected text at column 2", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorGray {
		t.Errorf("DrawText should carry color, got %v", s.GetCell(2, 1).Color)
	}

	// Text beyond the right edge is clipped, not wrapped
	s.DrawText(15, 0, "clipped text", ColorDefault)
	if !strings.HasSuffix(s.Row(0), "clipp") {
		t.Errorf("Row(0) = %q, expected clipped text at edge", s.Row(0))
	}
	if s.GetCell(0, 1).Rune == 'e' {
		t.Error("clipped text must not wrap to the next row")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(3, 2, '@')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Resize failed: %dx%d", s.Width(), s.Height())
	}
	if s.GetCell(3, 2).Rune != '@' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking drops clipped content
	s.Resize(2, 2)
	if s.GetCell(3, 2).Rune == '@' {
		t.Error("GetCell outside shrunk bounds should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
