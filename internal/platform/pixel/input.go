package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// touchState follows the first finger down until it lifts.
type touchState struct {
	id     ebiten.TouchID
	active bool
	ids    []ebiten.TouchID
}

// pollInput fills w.input for this tick. It returns true on a quit request.
func (w *Window) pollInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		w.input.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		w.input.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.input.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.input.Set(core.ActionPause)
	}

	width, _ := w.Layout(0, 0)
	ptr := &w.input.Pointer

	mx, _ := ebiten.CursorPosition()
	ptr.X = normalizeX(mx, width)
	ptr.Valid = true
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ptr.Pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ptr.Released = true
	}

	w.pollTouch(ptr, width)
	return false
}

// pollTouch lets a touch screen drive the pointer. A touch overrides the
// mouse position while it is held.
func (w *Window) pollTouch(ptr *core.Pointer, width int) {
	t := &w.touch
	if !t.active {
		t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
		if len(t.ids) > 0 {
			t.id = t.ids[0]
			t.active = true
			ptr.Pressed = true
		}
	}
	if !t.active {
		return
	}

	if inpututil.IsTouchJustReleased(t.id) {
		t.active = false
		ptr.Released = true
		return
	}
	tx, _ := ebiten.TouchPosition(t.id)
	ptr.X = normalizeX(tx, width)
}

// normalizeX maps a logical x coordinate to 0..1 across the field.
func normalizeX(x, width int) float64 {
	if width <= 0 {
		return 0
	}
	return core.ClampF((float64(x)+0.5)/float64(width), 0, 1)
}
