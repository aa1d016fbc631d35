package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded configuration used when no
// YAML source can be read.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  160,
			Height: 120,
		},
		Paddle: PaddleConfig{
			X:             80,
			Y:             110,
			Width:         24,
			Height:        2,
			Speed:         4,
			PointerEasing: 0.2,
			Trail:         4,
			ExitSpeed:     1,
			ExitAccel:     1.1,
			FadeStep:      0.05,
		},
		Ball: BallConfig{
			StartX:   80,
			StartY:   90,
			Size:     2,
			Speed:    2,
			MaxAngle: 60,
			Trail:    8,
		},
		Blocks: BlocksConfig{
			Rows:    5,
			Cols:    14,
			Width:   10,
			Height:  8,
			GapX:    1,
			GapY:    2,
			OffsetX: 5,
			OffsetY: 10,
		},
		Combo: ComboConfig{
			Window:         30,
			BonusStep:      0.1,
			BonusThreshold: 2,
		},
		Items: ItemsConfig{
			DropChance: 0.08,
			Size:       4,
			Speed:      1,
		},
		Effects: EffectsConfig{
			ParticleLife:  30,
			ExplosionLife: 8,
		},
		Scoring: ScoringConfig{
			Policy: PolicyCombo,
		},
		Controls: ControlsConfig{
			Mode: ControlsKeyboard,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
