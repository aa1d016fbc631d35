package breakout

import "github.com/vovakirdan/blockbreak/internal/core"

// Color rules shared by every frontend.

// PaddleColor is the paddle color for its current opacity.
func PaddleColor(opacity float64) core.Color {
	switch {
	case opacity > 0.7:
		return core.ColorWhite
	case opacity > 0.4:
		return core.ColorLightBlue
	default:
		return core.ColorDarkBlue
	}
}

// PaddleTrailColor returns the color of trail entry i. While playing the
// trail fades with age; during the exit it also fades with the paddle and
// entries too faint to see report false.
func PaddleTrailColor(i, maxTrail int, opacity float64, exiting bool) (core.Color, bool) {
	if maxTrail <= 0 {
		return core.ColorDefault, false
	}
	alpha := float64(maxTrail-i) / float64(maxTrail)
	if exiting {
		if alpha*opacity <= 0.3 {
			return core.ColorDefault, false
		}
		if i > maxTrail/2 {
			return core.ColorNavy, true
		}
		return core.ColorDarkBlue, true
	}
	switch {
	case alpha > 0.7:
		return core.ColorLightBlue, true
	case alpha > 0.4:
		return core.ColorDarkBlue, true
	default:
		return core.ColorNavy, true
	}
}

// BallTrailColor returns the color of ball trail entry i.
func BallTrailColor(i, maxTrail int) core.Color {
	if i > maxTrail/2 {
		return core.ColorNavy
	}
	return core.ColorDarkBlue
}

// ExplosionColors returns the ring and core colors for a combo.
func ExplosionColors(combo int) (ring, center core.Color) {
	if combo >= 3 {
		return core.ColorYellow, core.ColorYellow
	}
	return core.ColorLightBlue, core.ColorWhite
}

// ComboTextColor returns the combo label color.
func ComboTextColor(combo int) core.Color {
	if combo >= 3 {
		return core.ColorYellow
	}
	return core.ColorWhite
}

// Blink reports whether blinking overlay text is lit on the given frame.
func Blink(frame int) bool {
	return frame%30 < 20
}
