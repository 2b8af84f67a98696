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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.Get(x, y); c.Rune != ' ' || c.Token != "" {
				t.Fatalf("New screen should hold uncolored spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '█', "#5948F6")
	if got := s.Get(5, 5); got.Rune != '█' || got.Token != "#5948F6" {
		t.Errorf("Get(5, 5) = %+v, expected block with purple", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', "x")
	s.Set(100, 0, 'A', "x")
	s.Set(0, -1, 'A', "x")
	s.Set(0, 100, 'A', "x")

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X', "red")
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.Get(x, y); c.Rune != ' ' || c.Token != "" {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Seed")

	for i, ch := range "Seed" {
		if s.Get(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1).Rune)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2).Rune != 'H' || s.Get(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenRuns(t *testing.T) {
	s := NewScreen(6, 1)
	s.Set(0, 0, '█', "a")
	s.Set(1, 0, '█', "a")
	s.Set(2, 0, '█', "b")
	s.Set(5, 0, '█', "a")

	runs := s.Runs(0)
	want := []Run{
		{Token: "a", Text: "██"},
		{Token: "b", Text: "█"},
		{Token: "", Text: "  "},
		{Token: "a", Text: "█"},
	}
	if len(runs) != len(want) {
		t.Fatalf("Runs = %+v, want %+v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}

	if s.Runs(3) != nil {
		t.Error("Runs out of range should be nil")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := firstRow(s); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	s.Resize(15, 8)
	if row0 := firstRow(s); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func firstRow(s *Screen) string {
	row, _, _ := strings.Cut(s.String(), "\n")
	return row
}
