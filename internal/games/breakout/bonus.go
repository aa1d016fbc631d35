package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockbreak/internal/config"
)

// BonusRule decides how much time a cleared board earns back.
type BonusRule interface {
	// Name is the policy name used in configuration.
	Name() string
	// ComboCredit is the credit for a combo growing from prev to next.
	ComboCredit(prev, next int) time.Duration
	// BallCredit is the credit for balls still in play at clear time.
	BallCredit(balls int) time.Duration
}

// BallsOnlyBonus credits one second per surviving ball beyond the first.
type BallsOnlyBonus struct{}

func (BallsOnlyBonus) Name() string { return config.PolicyBalls }

func (BallsOnlyBonus) ComboCredit(prev, next int) time.Duration { return 0 }

func (BallsOnlyBonus) BallCredit(balls int) time.Duration {
	return ballCredit(balls)
}

// ComboBonus adds Step per combo level, counted from Threshold upward,
// on top of the ball credit. Only the increase over the previous level is
// credited, so a long combo is paid once per step.
type ComboBonus struct {
	Step      time.Duration
	Threshold int
}

func (ComboBonus) Name() string { return config.PolicyCombo }

func (r ComboBonus) ComboCredit(prev, next int) time.Duration {
	return max(0, r.value(next)-r.value(prev))
}

func (ComboBonus) BallCredit(balls int) time.Duration {
	return ballCredit(balls)
}

func (r ComboBonus) value(combo int) time.Duration {
	if combo < r.Threshold {
		return 0
	}
	return time.Duration(combo) * r.Step
}

func ballCredit(balls int) time.Duration {
	if balls <= 1 {
		return 0
	}
	return time.Duration(balls-1) * time.Second
}

// NewBonusRule builds the rule named by cfg.Scoring.Policy.
func NewBonusRule(cfg config.BreakoutConfig) BonusRule {
	if cfg.Scoring.Policy == config.PolicyCombo {
		return ComboBonus{
			Step:      time.Duration(cfg.Combo.BonusStep * float64(time.Second)),
			Threshold: cfg.Combo.BonusThreshold,
		}
	}
	return BallsOnlyBonus{}
}

// ClearResult is the time breakdown of a cleared board.
type ClearResult struct {
	Raw        time.Duration // wall time from start to clear, pauses excluded
	BallBonus  time.Duration
	ComboBonus time.Duration
	Final      time.Duration
	Balls      int
	MaxCombo   int
}

// NewClearResult applies rule to a finished board.
func NewClearResult(raw time.Duration, balls int, combo ComboTracker, rule BonusRule) ClearResult {
	r := ClearResult{
		Raw:        raw,
		BallBonus:  rule.BallCredit(balls),
		ComboBonus: combo.Bonus,
		Balls:      balls,
		MaxCombo:   combo.Max,
	}
	r.Final = max(0, raw-r.TotalBonus())
	return r
}

// TotalBonus is the sum of every credit category.
func (r ClearResult) TotalBonus() time.Duration {
	return r.BallBonus + r.ComboBonus
}

// ClearText holds the overlay lines for a cleared board.
// Bonus lines are empty when that category earned nothing.
type ClearText struct {
	Original   string
	BallBonus  string
	ComboBonus string
	Final      string
}

// Text formats the breakdown for display.
func (r ClearResult) Text() ClearText {
	t := ClearText{
		Original: "ORIGINAL TIME: " + FormatClock(r.Raw),
	}
	if r.BallBonus > 0 {
		t.BallBonus = fmt.Sprintf("BALL BONUS! -%ds (%d balls)", int(r.BallBonus/time.Second), r.Balls)
	}
	if r.ComboBonus > 0 {
		t.ComboBonus = fmt.Sprintf("COMBO BONUS! -%.1fs (Max %d combo)", r.ComboBonus.Seconds(), r.MaxCombo)
	}
	if r.TotalBonus() > 0 {
		t.Final = "FINAL TIME: " + FormatClock(r.Final)
	}
	return t
}

// FormatClock renders d as MM:SS.cc.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	centis := int(d % time.Second / (10 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}
