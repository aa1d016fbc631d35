package breakout

import "math"

// Snapshot is a flattened copy of the simulation state, used to compare
// runs for determinism. Floats are stored as their IEEE-754 bits.
type Snapshot struct {
	Frame      int
	Phase      int
	OverFrames int

	PaddleX       uint64
	PaddleOpacity uint64
	PaddleTrail   int

	// Each ball is 4 values: X, Y, DX, DY
	BallCount int
	BallData  []uint64

	// Each block is 4 values: Active, X, Y, Rotation
	BlockData []uint64

	// Each item is 2 values: X, Y
	ItemData []uint64

	ParticleCount  int
	ExplosionCount int

	Combo      int
	ComboTimer int
	MaxCombo   int
	ComboBonus int64

	ShakeX, ShakeY int

	RNGState uint64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	ballData := make([]uint64, 0, len(s.balls)*4)
	for _, b := range s.balls {
		ballData = append(ballData,
			math.Float64bits(b.X), math.Float64bits(b.Y),
			math.Float64bits(b.DX), math.Float64bits(b.DY))
	}

	blockData := make([]uint64, 0, len(s.grid.Blocks)*4)
	for i := range s.grid.Blocks {
		b := &s.grid.Blocks[i]
		var active uint64
		if b.Active {
			active = 1
		}
		blockData = append(blockData, active,
			math.Float64bits(b.X), math.Float64bits(b.Y), math.Float64bits(b.Rotation))
	}

	itemData := make([]uint64, 0, len(s.items)*2)
	for i := range s.items {
		itemData = append(itemData, math.Float64bits(s.items[i].X), math.Float64bits(s.items[i].Y))
	}

	return Snapshot{
		Frame:      s.frame,
		Phase:      int(s.phase),
		OverFrames: s.overFrames,

		PaddleX:       math.Float64bits(s.paddle.X),
		PaddleOpacity: math.Float64bits(s.paddle.Opacity),
		PaddleTrail:   len(s.paddle.Trail),

		BallCount: len(s.balls),
		BallData:  ballData,
		BlockData: blockData,
		ItemData:  itemData,

		ParticleCount:  len(s.particles),
		ExplosionCount: len(s.explosions),

		Combo:      s.combo.Count,
		ComboTimer: s.combo.Timer,
		MaxCombo:   s.combo.Max,
		ComboBonus: int64(s.combo.Bonus),

		ShakeX: s.shake.X,
		ShakeY: s.shake.Y,

		RNGState: s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.OverFrames)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleTrail)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboTimer)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxCombo)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboBonus)     //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.ShakeX))  //#nosec G115 -- hash computation
	h = h*31 + uint64(int64(snap.ShakeY))  //#nosec G115 -- hash computation
	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleOpacity

	for _, v := range snap.BallData {
		h = h*31 + v
	}
	for _, v := range snap.BlockData {
		h = h*31 + v
	}
	for _, v := range snap.ItemData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
