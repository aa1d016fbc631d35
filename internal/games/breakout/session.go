package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Phase is the macro state of a session.
type Phase int

const (
	PhasePlaying  Phase = iota // Ball in play
	PhaseCleared               // Every block destroyed
	PhaseGameOver              // Every ball lost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseCleared:
		return "Cleared"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game over tuning.
const (
	lossShakeMagnitude = 3
	lossShakeDuration  = 8
	oopsDelay          = 30
	oopsBlink          = 10
)

// Session is one run from a full grid to a clear or a loss. It owns every
// entity collection and is the only thing that mutates them.
type Session struct {
	cfg   config.BreakoutConfig
	rule  BonusRule
	rng   *SimpleRNG
	clock func() time.Time

	phase      Phase
	start      time.Time
	end        time.Time
	frame      int
	overFrames int

	paddle     *Paddle
	balls      []*Ball
	grid       *BlockGrid
	particles  []Particle
	explosions []Explosion
	items      []Item
	combo      ComboTracker
	comboText  ComboText
	shake      ScreenShake
	clear      ClearResult

	events []core.Event
}

// NewSession starts a session. A nil clock means time.Now.
func NewSession(cfg config.BreakoutConfig, seed int64, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	s := &Session{
		cfg:   cfg,
		rule:  NewBonusRule(cfg),
		rng:   NewSimpleRNG(seed),
		clock: clock,
	}
	s.Reset()
	return s
}

// Reset throws away every entity and starts over with a full grid and a
// single ball. The random source keeps running, so the next board differs.
func (s *Session) Reset() {
	s.phase = PhasePlaying
	s.start = s.clock()
	s.end = time.Time{}
	s.frame = 0
	s.overFrames = 0

	held := s.paddle != nil && s.paddle.tracking
	s.paddle = NewPaddle(s.cfg.Paddle)
	s.paddle.tracking = held
	s.balls = []*Ball{s.launchBall(s.cfg.Ball.StartX, s.cfg.Ball.StartY)}
	s.grid = NewBlockGrid(s.cfg.Blocks)
	s.particles = nil
	s.explosions = nil
	s.items = nil
	s.combo = NewComboTracker(s.cfg.Combo.Window)
	s.comboText = ComboText{}
	s.shake = ScreenShake{}
	s.clear = ClearResult{}
}

func (s *Session) launchBall(x, y float64) *Ball {
	b := s.cfg.Ball
	angle := s.rng.Uniform(-b.MaxAngle, b.MaxAngle)
	return NewBall(x, y, b.Size, b.Speed, angle, b.Trail)
}

func (s *Session) fieldSize() (float64, float64) {
	return float64(s.cfg.Field.Width), float64(s.cfg.Field.Height)
}

// Step advances the session by one frame. The returned events are only
// valid until the next call.
func (s *Session) Step(in core.InputFrame) []core.Event {
	s.events = s.events[:0]
	switch s.phase {
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseGameOver:
		s.paddle.follow(in.Pointer)
		s.stepGameOver()
	default:
		s.paddle.follow(in.Pointer)
	}
	return s.events
}

func (s *Session) emit(name string, fields ...any) {
	s.events = append(s.events, core.Event{Name: name, Fields: fields})
}

func (s *Session) stepPlaying(in core.InputFrame) {
	s.frame++
	fieldW, fieldH := s.fieldSize()

	s.paddle.Steer(in, s.cfg.Controls.Mode, fieldW)
	s.combo.Tick()
	s.shake.Update(s.rng, false)
	s.explosions = prune(s.explosions, (*Explosion).Update)
	if s.comboText.Timer > 0 {
		s.comboText.Timer--
	}

	catch := s.paddle.CatchZone(fieldH)
	s.balls = prune(s.balls, func(b **Ball) bool {
		(*b).Update(fieldW, catch, s.cfg.Ball.MaxAngle)
		return (*b).Y < fieldH
	})
	if len(s.balls) == 0 {
		s.enterGameOver()
		return
	}

	s.collide()
	s.particles = prune(s.particles, (*Particle).Update)
	s.items = prune(s.items, func(it *Item) bool {
		if !it.Update(fieldH) {
			return false
		}
		if it.Rect().Overlaps(catch) {
			it.Active = false
			src := s.balls[s.rng.Intn(len(s.balls))]
			s.balls = append(s.balls, s.launchBall(src.X, src.Y))
			s.emit("extra ball", "balls", len(s.balls))
			return false
		}
		return true
	})

	if s.grid.Cleared() {
		s.enterCleared()
	}
}

// collide runs the block pass for every ball and feeds the combo tracker.
func (s *Session) collide() {
	var hits []int
	for _, ball := range s.balls {
		hits = hits[:0]
		r := ball.Rect()
		for i := range s.grid.Blocks {
			blk := &s.grid.Blocks[i]
			if !blk.Active || !r.Overlaps(blk.Rect()) {
				continue
			}
			s.grid.Destroy(i)
			ball.DY = -ball.DY
			hits = append(hits, i)
			if s.rng.Chance(s.cfg.Items.DropChance) {
				cx, cy := blk.Center()
				s.items = append(s.items, NewItem(cx, cy, s.cfg.Items))
			}
		}

		if len(hits) == 0 {
			if ball.HitPaddle() {
				s.combo.Break()
			}
			continue
		}

		s.combo.Add(len(hits), s.rule)
		count := s.combo.Count
		for _, i := range hits {
			blk := &s.grid.Blocks[i]
			cx, cy := blk.Center()
			s.explosions = append(s.explosions, NewExplosion(cx, cy, count, s.cfg.Effects.ExplosionLife))
			s.burst(blk, ParticleCount(count))
		}

		if count >= 2 {
			s.comboText = ComboText{
				Text:  fmt.Sprintf("%d COMBO!", count),
				X:     ball.X - 20,
				Y:     ball.Y - 10,
				Timer: comboTextLife,
			}
			s.shake.ForCombo(count)
		}
	}
}

// burst scatters n particles from random points inside a destroyed block.
func (s *Session) burst(blk *Block, n int) {
	for range n {
		x := blk.X + s.rng.Uniform(0, blk.Width)
		y := blk.Y + s.rng.Uniform(0, blk.Height)
		s.particles = append(s.particles, newParticle(s.rng, x, y, blk.Color, s.cfg.Effects.ParticleLife))
	}
}

func (s *Session) enterCleared() {
	s.end = s.clock()
	s.phase = PhaseCleared
	s.clear = NewClearResult(s.end.Sub(s.start), len(s.balls), s.combo, s.rule)
	s.emit("board cleared",
		"raw", s.clear.Raw,
		"bonus", s.clear.TotalBonus(),
		"final", s.clear.Final,
		"max_combo", s.clear.MaxCombo,
		"balls", s.clear.Balls,
	)
}

func (s *Session) enterGameOver() {
	s.end = s.clock()
	s.phase = PhaseGameOver
	s.overFrames = 0
	s.shake.Start(lossShakeMagnitude, lossShakeDuration)
	s.paddle.StartExit()
	s.grid.Shatter(s.rng)
	s.emit("game over",
		"blocks_left", s.grid.ActiveCount(),
		"max_combo", s.combo.Max,
		"elapsed", s.end.Sub(s.start),
	)
}

func (s *Session) stepGameOver() {
	fieldW, fieldH := s.fieldSize()
	s.overFrames++
	s.shake.Update(s.rng, true)
	s.grid.Fall(s.rng, fieldW, fieldH)
	s.paddle.UpdateExit()
}

// Restart resets the session if it has ended. It reports whether it did.
func (s *Session) Restart() bool {
	if s.phase == PhasePlaying {
		return false
	}
	s.Reset()
	return true
}

// ShiftStart moves the session start forward, removing d from the clock.
// Used to exclude paused time.
func (s *Session) ShiftStart(d time.Duration) {
	if s.phase == PhasePlaying && d > 0 {
		s.start = s.start.Add(d)
	}
}

// Elapsed is the time on the session clock: running while playing and
// frozen once the session ends.
func (s *Session) Elapsed() time.Duration {
	if s.phase != PhasePlaying {
		return s.end.Sub(s.start)
	}
	return s.clock().Sub(s.start)
}

// ShowOops reports whether the blinking game over banner is lit.
func (s *Session) ShowOops() bool {
	return s.phase == PhaseGameOver && s.overFrames > oopsDelay && (s.overFrames/oopsBlink)%2 == 0
}

// ShowRestartHint reports whether the game over restart hint is visible.
func (s *Session) ShowRestartHint() bool {
	return s.ShowOops() && s.paddle.Faded()
}

// Draw state accessors. Callers must treat the returned values as read-only.

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Config() config.BreakoutConfig { return s.cfg }
func (s *Session) Rule() BonusRule { return s.rule }
func (s *Session) Frame() int { return s.frame }
func (s *Session) GameOverFrames() int { return s.overFrames }
func (s *Session) Paddle() *Paddle { return s.paddle }
func (s *Session) Balls() []*Ball { return s.balls }
func (s *Session) Grid() *BlockGrid { return s.grid }
func (s *Session) Particles() []Particle { return s.particles }
func (s *Session) Explosions() []Explosion { return s.explosions }
func (s *Session) Items() []Item { return s.items }
func (s *Session) Combo() ComboTracker { return s.combo }
func (s *Session) ComboText() ComboText { return s.comboText }
func (s *Session) Shake() ScreenShake { return s.shake }
func (s *Session) Clear() ClearResult { return s.clear }
