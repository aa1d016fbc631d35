package core

import (
	"strings"
	"testing"
)

func TestScreenSetAndGetCell(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(2, 3, '█', ColorRed)

	c := s.GetCell(2, 3)
	if c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v, expected red block", c)
	}

	// Out of bounds is ignored and reads back blank
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds cell = %+v, expected blank", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '#', ColorYellow)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear cell = %+v, expected blank default", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCenteredColored(1, "OOPS!", ColorRed)

	// (20 - 5) / 2 = 7
	if s.Get(7, 1) != 'O' || s.Get(11, 1) != '!' {
		t.Errorf("text not centered: %q", s.Row(1))
	}
	if s.GetCell(7, 1).Color != ColorRed {
		t.Error("centered text should keep its color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 2), '▀', ColorOrange)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '▀' || c.Color != ColorOrange {
				t.Errorf("FillRect: cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
	if s.Get(5, 2) != ' ' {
		t.Error("FillRect wrote past the right edge")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("box corners wrong:\n%s", s.String())
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("box edges wrong:\n%s", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BB")

	expected := "AAAAA\nBB   "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("new rows should be full width, got %d", len(s.Row(7)))
	}
}

func TestColorPalette(t *testing.T) {
	if ColorRed.Hex() != "#d4186c" {
		t.Errorf("ColorRed.Hex() = %q", ColorRed.Hex())
	}
	if ColorDefault.Hex() != "" {
		t.Error("ColorDefault should have no hex value")
	}
	if PaletteColor(8+5%7) != ColorGray {
		t.Errorf("PaletteColor(13) = %d, expected gray", PaletteColor(13))
	}
	if PaletteColor(-1) != ColorPeach {
		t.Error("PaletteColor should wrap negative indices")
	}
	rgba := ColorYellow.RGBA()
	if rgba.R != 0xe9 || rgba.G != 0xc3 || rgba.B != 0x5b || rgba.A != 0xff {
		t.Errorf("ColorYellow.RGBA() = %+v", rgba)
	}
}

func TestInputFrameClearKeepsPointerPosition(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Pointer = Pointer{X: 0.25, Valid: true, Pressed: true}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	if f.Pointer.Pressed || !f.Pointer.Valid || f.Pointer.X != 0.25 {
		t.Errorf("Clear should drop edges only, got %+v", f.Pointer)
	}
}
