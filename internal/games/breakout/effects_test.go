package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockbreak/internal/core"
)

func TestExplosionScalesWithCombo(t *testing.T) {
	e := NewExplosion(10, 10, 5, 8)
	assert.Equal(t, 42.0, e.MaxRadius())
	assert.Equal(t, 28, e.TrailPoints())
	assert.Equal(t, 3, e.CoreSize())

	big := NewExplosion(0, 0, 20, 8)
	assert.Equal(t, 60.0, big.MaxRadius())
	assert.Equal(t, 32, big.TrailPoints())
	assert.Equal(t, 4, big.CoreSize())

	small := NewExplosion(0, 0, 1, 8)
	assert.Equal(t, 18.0, small.MaxRadius())
	assert.Equal(t, 12, small.TrailPoints())
	assert.Equal(t, 1, small.CoreSize())
}

func TestExplosionRadiusCurve(t *testing.T) {
	e := NewExplosion(0, 0, 0, 10)
	assert.Equal(t, 0.0, e.Radius(), "starts collapsed")

	// Expansion is monotonic up to the turn at 40% life.
	prev := e.Radius()
	for e.Life > 4 {
		e.Update()
		r := e.Radius()
		assert.GreaterOrEqual(t, r, prev, "life %d", e.Life)
		prev = r
	}
	assert.InDelta(t, 12.0, e.Radius(), 1e-9, "peak at the turn")

	// Contraction is monotonic down to zero.
	for e.Life > 0 {
		e.Update()
		r := e.Radius()
		assert.LessOrEqual(t, r, prev, "life %d", e.Life)
		prev = r
	}
	assert.Equal(t, 0.0, e.Radius())
}

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(0, 0, 2, 8)
	for range 7 {
		assert.True(t, e.Update())
	}
	assert.False(t, e.Update())
}

func TestParticleLifetime(t *testing.T) {
	rng := NewSimpleRNG(7)
	p := newParticle(rng, 50, 50, core.ColorRed, 30)

	speed := p.DX*p.DX + p.DY*p.DY
	assert.GreaterOrEqual(t, speed, 1.5*1.5)
	assert.Less(t, speed, 4.0*4.0)

	for range 29 {
		assert.True(t, p.Update())
	}
	assert.False(t, p.Update())
	assert.Equal(t, 0, p.Life)
}

func TestParticleCount(t *testing.T) {
	for combo, want := range map[int]int{0: 0, 1: 0, 2: 6, 3: 10, 4: 15, 5: 20, 8: 32} {
		assert.Equal(t, want, ParticleCount(combo), "combo %d", combo)
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	s = prune(s, func(v *int) bool { return *v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, s)

	s = prune(s, func(*int) bool { return false })
	assert.Empty(t, s)
}

func TestScreenShakeForCombo(t *testing.T) {
	tests := []struct {
		combo     int
		magnitude float64
		duration  int
	}{
		{1, 0, 0},
		{2, 0.5, 1},
		{3, 1, 3},
		{4, 2, 5},
		{9, 3, 8},
	}
	for _, tc := range tests {
		var s ScreenShake
		s.ForCombo(tc.combo)
		assert.Equal(t, tc.magnitude, s.Magnitude, "combo %d", tc.combo)
		assert.Equal(t, tc.duration, s.Duration, "combo %d", tc.combo)
	}
}

func TestScreenShakeUpdate(t *testing.T) {
	rng := NewSimpleRNG(3)

	var weak ScreenShake
	weak.Start(0.5, 1)
	weak.Update(rng, false)
	assert.Equal(t, weak.X, weak.Y)
	assert.Contains(t, []int{0, 1}, weak.X)
	assert.Equal(t, 0, weak.Duration)

	weak.Update(rng, false)
	assert.Equal(t, 0, weak.X)
	assert.Equal(t, 0.0, weak.Magnitude)

	var strong ScreenShake
	strong.Start(3, 8)
	for range 8 {
		strong.Update(rng, true)
		assert.LessOrEqual(t, max(strong.X, -strong.X), 3)
		assert.LessOrEqual(t, max(strong.Y, -strong.Y), 3)
	}
	strong.Update(rng, true)
	assert.Equal(t, 0, strong.X)
	assert.Equal(t, 0, strong.Y)
}

func TestSimpleRNGRanges(t *testing.T) {
	rng := NewSimpleRNG(42)
	seen := map[int]bool{}
	for range 1000 {
		v := rng.IntRange(-2, 2)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 2)
		seen[v] = true

		f := rng.Uniform(-60, 60)
		require.GreaterOrEqual(t, f, -60.0)
		require.Less(t, f, 60.0)
	}
	assert.Len(t, seen, 5, "every value in the inclusive range shows up")

	a, b := NewSimpleRNG(5), NewSimpleRNG(5)
	for range 10 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestItemFallsAndBlinks(t *testing.T) {
	it := Item{X: 10, Y: 117, Size: 4, Speed: 1, Active: true}
	assert.True(t, it.Update(120))
	assert.True(t, it.Update(120))
	assert.False(t, it.Update(120))
	assert.False(t, it.Active)

	assert.Equal(t, core.ColorLime, ItemColor(0))
	assert.Equal(t, core.ColorYellow, ItemColor(15))
}
