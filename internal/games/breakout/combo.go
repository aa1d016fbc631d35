package breakout

import "time"

// ComboTracker counts consecutive block hits inside an idle window and
// accumulates the time credit they earn.
type ComboTracker struct {
	Count int           // current combo
	Timer int           // frames left before an idle combo expires
	Max   int           // longest combo this session
	Bonus time.Duration // credit accrued so far; never decreases

	window int
}

// NewComboTracker creates a tracker whose combos expire after window idle frames.
func NewComboTracker(window int) ComboTracker {
	return ComboTracker{window: window}
}

// Tick runs once per playing frame. It counts the idle timer down, and
// expires the combo once the timer has already run out.
func (c *ComboTracker) Tick() {
	if c.Timer > 0 {
		c.Timer--
	} else if c.Count > 0 {
		c.Count = 0
	}
}

// Add credits n blocks destroyed by one ball in one frame.
func (c *ComboTracker) Add(n int, rule BonusRule) {
	if n <= 0 {
		return
	}
	prev := c.Count
	c.Count += n
	c.Timer = c.window
	if c.Count > c.Max {
		c.Max = c.Count
	}
	if credit := rule.ComboCredit(prev, c.Count); credit > 0 {
		c.Bonus += credit
	}
}

// Break ends the current combo immediately.
func (c *ComboTracker) Break() {
	c.Count = 0
	c.Timer = 0
}
