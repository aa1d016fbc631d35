// Package config provides YAML-based configuration loading and validation
// for the block breaker simulation.
package config

import (
	"errors"
	"fmt"
)

// Bonus policies.
const (
	PolicyBalls = "balls" // surviving balls beyond the first, credited at clear
	PolicyCombo = "combo" // running combo credit plus the ball credit
)

// Control modes.
const (
	ControlsKeyboard = "keyboard"
	ControlsPointer  = "pointer"
)

// BreakoutConfig contains all tunables for a session. Distances are in
// play-field pixels and durations in frames.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Combo    ComboConfig    `yaml:"combo"`
	Items    ItemsConfig    `yaml:"items"`
	Effects  EffectsConfig  `yaml:"effects"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Controls ControlsConfig `yaml:"controls"`
}

// FieldConfig defines the play field size.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines paddle geometry, motion and the exit animation.
type PaddleConfig struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	PointerEasing float64 `yaml:"pointer_easing"`
	Trail         int     `yaml:"trail"`
	ExitSpeed     float64 `yaml:"exit_speed"`
	ExitAccel     float64 `yaml:"exit_accel"`
	FadeStep      float64 `yaml:"fade_step"`
}

// BallConfig defines the launch state of a ball.
type BallConfig struct {
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	MaxAngle float64 `yaml:"max_angle"` // degrees from vertical
	Trail    int     `yaml:"trail"`
}

// BlocksConfig defines the block grid layout.
type BlocksConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GapX    float64 `yaml:"gap_x"`
	GapY    float64 `yaml:"gap_y"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// ComboConfig defines the combo window and its bonus credit.
type ComboConfig struct {
	Window         int     `yaml:"window"`
	BonusStep      float64 `yaml:"bonus_step"` // seconds per combo step
	BonusThreshold int     `yaml:"bonus_threshold"`
}

// ItemsConfig defines extra-ball item drops.
type ItemsConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
}

// EffectsConfig defines effect lifetimes.
type EffectsConfig struct {
	ParticleLife  int `yaml:"particle_life"`
	ExplosionLife int `yaml:"explosion_life"`
}

// ScoringConfig selects the bonus policy.
type ScoringConfig struct {
	Policy string `yaml:"policy"`
}

// ControlsConfig selects how the paddle is driven.
type ControlsConfig struct {
	Mode string `yaml:"mode"`
}

// Validate checks that the configuration describes a playable session.
func (c BreakoutConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.width", float64(c.Field.Width))
	positive("field.height", float64(c.Field.Height))
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("ball.size", c.Ball.Size)
	positive("ball.speed", c.Ball.Speed)
	positive("blocks.rows", float64(c.Blocks.Rows))
	positive("blocks.cols", float64(c.Blocks.Cols))
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	positive("combo.window", float64(c.Combo.Window))
	positive("items.size", c.Items.Size)
	positive("effects.particle_life", float64(c.Effects.ParticleLife))
	positive("effects.explosion_life", float64(c.Effects.ExplosionLife))

	if c.Items.DropChance < 0 || c.Items.DropChance > 1 {
		errs = append(errs, fmt.Errorf("items.drop_chance must be within [0,1], got %v", c.Items.DropChance))
	}
	if c.Paddle.PointerEasing <= 0 || c.Paddle.PointerEasing > 1 {
		errs = append(errs, fmt.Errorf("paddle.pointer_easing must be within (0,1], got %v", c.Paddle.PointerEasing))
	}
	if c.Ball.MaxAngle < 0 || c.Ball.MaxAngle >= 90 {
		errs = append(errs, fmt.Errorf("ball.max_angle must be within [0,90), got %v", c.Ball.MaxAngle))
	}
	if c.Ball.StartY >= float64(c.Field.Height) {
		errs = append(errs, fmt.Errorf("ball.start_y %v is below the field", c.Ball.StartY))
	}

	switch c.Scoring.Policy {
	case PolicyBalls, PolicyCombo:
	default:
		errs = append(errs, fmt.Errorf("unknown scoring.policy %q", c.Scoring.Policy))
	}
	switch c.Controls.Mode {
	case ControlsKeyboard, ControlsPointer:
	default:
		errs = append(errs, fmt.Errorf("unknown controls.mode %q", c.Controls.Mode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
