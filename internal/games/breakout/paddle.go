package breakout

import (
	"math"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Paddle is the player's bar. X is its left edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Trail         []float64 // recent X positions, newest first
	Opacity       float64

	cfg       config.PaddleConfig
	tracking  bool
	exiting   bool
	exitSpeed float64
}

// NewPaddle places a paddle according to cfg.
func NewPaddle(cfg config.PaddleConfig) *Paddle {
	return &Paddle{
		X:       cfg.X,
		Y:       cfg.Y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Trail:   make([]float64, 0, max(cfg.Trail, 0)),
		Opacity: 1,
		cfg:     cfg,
	}
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CatchZone is the area that deflects balls and collects items. It runs
// from the paddle's top edge down to the bottom of the field, so anything
// that slipped into the paddle between frames is still caught.
func (p *Paddle) CatchZone(fieldH float64) core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, max(fieldH-p.Y, p.Height))
}

// Steer applies one frame of input and updates the trail.
func (p *Paddle) Steer(in core.InputFrame, mode string, fieldW float64) {
	last := p.X
	maxX := fieldW - p.Width

	if mode == config.ControlsPointer {
		ptr := in.Pointer
		p.follow(ptr)
		if p.tracking && ptr.Valid {
			target := ptr.X*fieldW - p.Width/2
			p.X = core.ClampF(p.X+(target-p.X)*p.cfg.PointerEasing, 0, maxX)
		}
	} else {
		if in.Has(core.ActionRight) {
			p.X = math.Min(p.X+p.cfg.Speed, maxX)
		}
		if in.Has(core.ActionLeft) {
			p.X = math.Max(p.X-p.cfg.Speed, 0)
		}
	}

	p.recordTrail(last)
}

// follow starts tracking on a press edge and stops on a release edge.
func (p *Paddle) follow(ptr core.Pointer) {
	if ptr.Pressed {
		p.tracking = true
	}
	if ptr.Released {
		p.tracking = false
	}
}

// Tracking reports whether a pointer is currently held down on the paddle.
func (p *Paddle) Tracking() bool {
	return p.tracking
}

func (p *Paddle) recordTrail(last float64) {
	if p.cfg.Trail <= 0 {
		return
	}
	if math.Abs(p.X-last) > 0.5 {
		if len(p.Trail) < p.cfg.Trail {
			p.Trail = append(p.Trail, 0)
		}
		copy(p.Trail[1:], p.Trail)
		p.Trail[0] = p.X
		return
	}
	if len(p.Trail) > 0 {
		p.Trail = p.Trail[:len(p.Trail)-1]
	}
}

// StartExit begins the game over slide.
func (p *Paddle) StartExit() {
	p.exiting = true
	p.exitSpeed = p.cfg.ExitSpeed
}

// UpdateExit advances the accelerating slide and fades the paddle out.
func (p *Paddle) UpdateExit() {
	if !p.exiting {
		return
	}
	p.exitSpeed *= p.cfg.ExitAccel
	p.X += p.exitSpeed
	p.Opacity = math.Max(0, p.Opacity-p.cfg.FadeStep)
}

// Faded reports whether the exit animation has made the paddle invisible.
func (p *Paddle) Faded() bool {
	return p.Opacity <= 0
}
