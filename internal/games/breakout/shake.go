package breakout

// ScreenShake offsets the whole frame for a few frames after big combos
// and on game over.
type ScreenShake struct {
	Magnitude float64
	Duration  int
	X, Y      int
}

// Start begins a shake of the given strength.
func (s *ScreenShake) Start(magnitude float64, duration int) {
	s.Magnitude = magnitude
	s.Duration = duration
}

// ForCombo starts the shake that matches a combo. Combos below 2 do nothing.
func (s *ScreenShake) ForCombo(combo int) {
	switch {
	case combo < 2:
	case combo == 2:
		s.Start(0.5, 1)
	case combo == 3:
		s.Start(1, 3)
	case combo == 4:
		s.Start(2, 5)
	default:
		s.Start(3, 8)
	}
}

// Update rolls this frame's offset. With independent set, the axes jitter
// separately; otherwise the frame moves along the diagonal.
func (s *ScreenShake) Update(rng *SimpleRNG, independent bool) {
	if s.Duration <= 0 {
		s.X, s.Y = 0, 0
		s.Magnitude = 0
		return
	}

	m := int(s.Magnitude)
	switch {
	case independent:
		s.X = rng.IntRange(-m, m)
		s.Y = rng.IntRange(-m, m)
	case s.Magnitude < 1:
		v := 0
		if rng.Chance(s.Magnitude) {
			v = 1
		}
		s.X, s.Y = v, v
	default:
		v := rng.IntRange(-m, m)
		s.X, s.Y = v, v
	}
	s.Duration--
}
