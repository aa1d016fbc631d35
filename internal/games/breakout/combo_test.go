package breakout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockbreak/internal/config"
)

func comboRule() ComboBonus {
	return ComboBonus{Step: 100 * time.Millisecond, Threshold: 2}
}

func TestComboTrackerRunningMax(t *testing.T) {
	c := NewComboTracker(30)
	rule := comboRule()

	prevMax := 0
	for i, n := range []int{2, 3, 0, 1} {
		c.Tick()
		c.Add(n, rule)
		assert.GreaterOrEqual(t, c.Max, prevMax, "frame %d", i)
		prevMax = c.Max
	}

	assert.Equal(t, 6, c.Count)
	assert.Equal(t, 6, c.Max)
}

func TestComboTrackerIdleExpiry(t *testing.T) {
	c := NewComboTracker(30)
	c.Add(2, comboRule())

	for range 30 {
		c.Tick()
		assert.Equal(t, 2, c.Count)
	}
	assert.Equal(t, 0, c.Timer)

	c.Tick()
	assert.Equal(t, 0, c.Count, "expired combo resets to zero")
	assert.Equal(t, 2, c.Max, "max survives expiry")
}

func TestComboTrackerBreak(t *testing.T) {
	c := NewComboTracker(30)
	c.Add(4, comboRule())
	c.Break()

	assert.Equal(t, 0, c.Count)
	assert.Equal(t, 0, c.Timer)
	assert.Equal(t, 4, c.Max)
}

func TestComboBonusIsMarginal(t *testing.T) {
	c := NewComboTracker(30)
	rule := comboRule()

	steps := []struct {
		add       int
		breakNext bool
		bonus     time.Duration
	}{
		{1, false, 0},                      // 0 -> 1, below threshold
		{1, false, 200 * time.Millisecond}, // 1 -> 2
		{2, true, 400 * time.Millisecond},  // 2 -> 4
		{3, false, 700 * time.Millisecond}, // 0 -> 3
	}

	last := time.Duration(0)
	for _, s := range steps {
		c.Add(s.add, rule)
		assert.Equal(t, s.bonus, c.Bonus)
		assert.GreaterOrEqual(t, c.Bonus, last, "bonus never decreases")
		last = c.Bonus
		if s.breakNext {
			c.Break()
		}
	}
}

func TestBallsOnlyBonus(t *testing.T) {
	c := NewComboTracker(30)
	rule := BallsOnlyBonus{}
	c.Add(10, rule)

	assert.Equal(t, time.Duration(0), c.Bonus)
	assert.Equal(t, time.Duration(0), rule.BallCredit(1))
	assert.Equal(t, 2*time.Second, rule.BallCredit(3))
	assert.Equal(t, config.PolicyBalls, rule.Name())
}

func TestNewBonusRule(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	assert.Equal(t, comboRule(), NewBonusRule(cfg))

	cfg.Scoring.Policy = config.PolicyBalls
	assert.Equal(t, BallsOnlyBonus{}, NewBonusRule(cfg))
}

func TestClearResult(t *testing.T) {
	c := NewComboTracker(30)
	c.Add(5, comboRule())

	r := NewClearResult(30*time.Second, 3, c, comboRule())
	assert.Equal(t, 2*time.Second, r.BallBonus)
	assert.Equal(t, 500*time.Millisecond, r.ComboBonus)
	assert.Equal(t, 2500*time.Millisecond, r.TotalBonus())
	assert.Equal(t, 27500*time.Millisecond, r.Final)
	assert.Equal(t, 5, r.MaxCombo)

	text := r.Text()
	assert.Equal(t, "ORIGINAL TIME: 00:30.00", text.Original)
	assert.Equal(t, "BALL BONUS! -2s (3 balls)", text.BallBonus)
	assert.Equal(t, "COMBO BONUS! -0.5s (Max 5 combo)", text.ComboBonus)
	assert.Equal(t, "FINAL TIME: 00:27.50", text.Final)
}

func TestClearResultFloorsAtZero(t *testing.T) {
	r := NewClearResult(time.Second, 5, NewComboTracker(30), BallsOnlyBonus{})
	assert.Equal(t, time.Duration(0), r.Final)
}

func TestClearTextOmitsEmptyBonuses(t *testing.T) {
	r := NewClearResult(61*time.Second, 1, NewComboTracker(30), BallsOnlyBonus{})
	text := r.Text()

	assert.Equal(t, "ORIGINAL TIME: 01:01.00", text.Original)
	assert.Empty(t, text.BallBonus)
	assert.Empty(t, text.ComboBonus)
	assert.Empty(t, text.Final)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.00"},
		{75*time.Second + 250*time.Millisecond, "01:15.25"},
		{9*time.Minute + 59*time.Second + 999*time.Millisecond, "09:59.99"},
		{-time.Second, "00:00.00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatClock(tc.d))
	}
}
