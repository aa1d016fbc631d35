package pixel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
)

func TestNormalizeX(t *testing.T) {
	assert.InDelta(t, 0.5/320, normalizeX(0, 320), 1e-12)
	assert.InDelta(t, 160.5/320, normalizeX(160, 320), 1e-12)
	assert.Equal(t, 1.0, normalizeX(400, 320), "clamped to the field")
	assert.Equal(t, 0.0, normalizeX(-10, 320))
	assert.Equal(t, 0.0, normalizeX(10, 0))
}

func TestCenterX(t *testing.T) {
	assert.Equal(t, 145, centerX(5, 320), "OOPS! on a 320 wide screen")
	assert.Equal(t, 0, centerX(0, 0))
}

func TestQuadCorners(t *testing.T) {
	b := &breakout.Block{X: 10, Y: 20, Width: 10, Height: 8}

	flat := quadCorners(b)
	assert.Equal(t, [2]float64{10, 20}, flat[0])
	assert.Equal(t, [2]float64{20, 20}, flat[1])
	assert.Equal(t, [2]float64{20, 28}, flat[2])
	assert.Equal(t, [2]float64{10, 28}, flat[3])

	b.Rotation = 90
	turned := quadCorners(b)
	// A quarter turn maps the top-left corner to the top-right of the
	// rotated footprint around the center (15, 24).
	assert.InDelta(t, 19, turned[0][0], 1e-9)
	assert.InDelta(t, 19, turned[0][1], 1e-9)
	assert.InDelta(t, 11, turned[2][0], 1e-9)
	assert.InDelta(t, 29, turned[2][1], 1e-9)
}

func TestSeededUsesClockForZeroSeed(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	at := func(ns int64) func() time.Time {
		return func() time.Time { return time.Unix(0, ns) }
	}

	fixed := seeded(core.RuntimeConfig{Seed: 42}, at(7))
	assert.Equal(t, int64(42), fixed.Seed, "an explicit seed is kept")

	first := seeded(core.RuntimeConfig{}, at(1_000_000_007))
	second := seeded(core.RuntimeConfig{}, at(2_000_000_011))
	assert.Equal(t, int64(1_000_000_007), first.Seed)
	assert.Equal(t, int64(2_000_000_011), second.Seed)

	a, b := breakout.New(), breakout.New()
	a.Reset(first)
	b.Reset(second)
	assert.NotEqual(t, a.Session().Balls()[0].DX, b.Session().Balls()[0].DX,
		"different launch times give different launches")
}
