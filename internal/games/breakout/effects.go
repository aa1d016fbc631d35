package breakout

import (
	"math"

	"github.com/vovakirdan/blockbreak/internal/core"
)

const (
	particleSpeedMin = 1.5
	particleSpeedMax = 4.0

	explosionBaseRadius = 12
	explosionComboStep  = 6
	explosionMaxRadius  = 60
	explosionBaseTrails = 8
	explosionTrailStep  = 4
	explosionMaxTrails  = 32
	explosionMaxCore    = 4

	// Fraction of remaining life at which the ring stops growing.
	explosionTurn = 0.4

	comboTextLife = 30
)

// Particle is a decorative point flying in a straight line.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Color  core.Color
	Life   int
}

func newParticle(rng *SimpleRNG, x, y float64, color core.Color, life int) Particle {
	angle := rng.Uniform(0, 2*math.Pi)
	speed := rng.Uniform(particleSpeedMin, particleSpeedMax)
	return Particle{
		X:     x,
		Y:     y,
		DX:    math.Cos(angle) * speed,
		DY:    math.Sin(angle) * speed,
		Color: color,
		Life:  life,
	}
}

// Update advances the particle and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.X += p.DX
	p.Y += p.DY
	p.Life--
	return p.Life > 0
}

// ParticleCount returns how many particles a destroyed block emits at the
// given combo.
func ParticleCount(combo int) int {
	switch {
	case combo < 2:
		return 0
	case combo == 2:
		return 6
	case combo == 3:
		return 10
	case combo == 4:
		return 15
	default:
		return combo * 4
	}
}

// Explosion is a ring that expands and collapses over its lifetime.
// Its size is fixed by the combo at the moment it was spawned.
type Explosion struct {
	X, Y    float64
	Combo   int
	Life    int
	MaxLife int
}

// NewExplosion creates a ring at (x, y) that lives for life frames.
func NewExplosion(x, y float64, combo, life int) Explosion {
	return Explosion{X: x, Y: y, Combo: combo, Life: life, MaxLife: life}
}

// Update ages the ring and reports whether it is still alive.
func (e *Explosion) Update() bool {
	e.Life--
	return e.Life > 0
}

// MaxRadius is the peak ring radius.
func (e Explosion) MaxRadius() float64 {
	return math.Min(explosionBaseRadius+explosionComboStep*float64(e.Combo), explosionMaxRadius)
}

// TrailPoints is the number of dots drawn around the ring.
func (e Explosion) TrailPoints() int {
	return min(explosionBaseTrails+explosionTrailStep*e.Combo, explosionMaxTrails)
}

// CoreSize is the radius of the dot at the ring's center.
func (e Explosion) CoreSize() int {
	return min(1+e.Combo/2, explosionMaxCore)
}

// Radius returns the ring radius for the current life.
func (e Explosion) Radius() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	p := float64(e.Life) / float64(e.MaxLife)
	if p > explosionTurn {
		return e.MaxRadius() * easeOutQuart((1-p)/(1-explosionTurn))
	}
	return e.MaxRadius() * easeInQuart(p/explosionTurn)
}

func easeOutQuart(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u
}

func easeInQuart(t float64) float64 {
	return t * t * t * t
}

// ComboText is the floating "N COMBO!" label.
type ComboText struct {
	Text  string
	X, Y  float64
	Timer int
}

// Visible reports whether the label should be drawn.
func (c ComboText) Visible() bool {
	return c.Timer > 0
}

// prune compacts s in place, keeping the entries for which live returns true.
// live may update the entry it is given.
func prune[T any](s []T, live func(*T) bool) []T {
	n := 0
	for i := range s {
		if live(&s[i]) {
			s[n] = s[i]
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}
