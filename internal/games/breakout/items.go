package breakout

import (
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Item is a falling pickup that adds a ball when the paddle catches it.
type Item struct {
	X, Y   float64
	Size   float64
	Speed  float64
	Active bool
}

// NewItem drops an item centered on (cx, cy).
func NewItem(cx, cy float64, cfg config.ItemsConfig) Item {
	return Item{
		X:      cx - cfg.Size/2,
		Y:      cy - cfg.Size/2,
		Size:   cfg.Size,
		Speed:  cfg.Speed,
		Active: true,
	}
}

// Rect returns the item's bounding box.
func (it *Item) Rect() core.RectF {
	return core.NewRectF(it.X, it.Y, it.Size, it.Size)
}

// Update moves the item down and reports whether it is still on the field.
func (it *Item) Update(fieldH float64) bool {
	it.Y += it.Speed
	if it.Y >= fieldH {
		it.Active = false
	}
	return it.Active
}

// ItemColor returns the blink color of items on the given frame.
func ItemColor(frame int) core.Color {
	if frame%30 < 15 {
		return core.ColorLime
	}
	return core.ColorYellow
}
