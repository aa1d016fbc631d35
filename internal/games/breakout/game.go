package breakout

import (
	"time"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// overrides stores the command-line settings that beat the config file
var overrides config.Overrides

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetOverrides sets the bonus policy and control mode overrides.
func SetOverrides(o config.Overrides) {
	overrides = o
}

// Game adapts a Session to the registry's Game interface and adds pause
// and restart handling.
type Game struct {
	id     string
	title  string
	policy string // forced bonus policy, empty to take the config file's

	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	session *Session
	clock   func() time.Time

	ticks    int
	paused   bool
	pausedAt time.Time
}

// New creates the standard variant: combo and ball credit.
func New() *Game {
	return &Game{id: "breakout", title: "Block Breaker"}
}

// NewClassic creates the variant that only credits surviving balls.
func NewClassic() *Game {
	return &Game{id: "breakout_classic", title: "Block Breaker (Classic)", policy: config.PolicyBalls}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetClock replaces the wall clock used for session timing.
// Must be called before Reset.
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	if g.clock == nil {
		g.clock = time.Now
	}
	g.session = NewSession(g.cfg, runtime.Seed, g.clock)
	g.ticks = 0
	g.paused = false
}

// loadConfig resolves the file, the variant and the overrides. Anything
// invalid falls back to the defaults; the CLI validates up front.
func (g *Game) loadConfig() config.BreakoutConfig {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if g.policy != "" {
		cfg.Scoring.Policy = g.policy
	}
	config.ApplyOverrides(&cfg, overrides)
	if cfg.Validate() != nil {
		cfg = config.DefaultBreakoutConfig()
		if g.policy != "" {
			cfg.Scoring.Policy = g.policy
		}
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++

	if g.session.Phase() != PhasePlaying && g.wantsRestart(in) {
		g.session.Restart()
		g.paused = false
		if in.Pointer.Pressed && !in.Pointer.Released {
			g.session.Paddle().tracking = true
		}
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Name: "restart", Fields: []any{"variant", g.id}}},
		}
	}

	if in.Has(core.ActionPause) && g.session.Phase() == PhasePlaying {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.session.Step(in)
	return core.StepResult{State: g.State(), Events: events}
}

// wantsRestart accepts the restart key, or a tap in pointer mode.
func (g *Game) wantsRestart(in core.InputFrame) bool {
	if in.Has(core.ActionRestart) {
		return true
	}
	return g.cfg.Controls.Mode == config.ControlsPointer && in.Pointer.Pressed
}

func (g *Game) togglePause() {
	now := g.clock()
	if g.paused {
		g.session.ShiftStart(now.Sub(g.pausedAt))
		g.paused = false
		return
	}
	g.pausedAt = now
	g.paused = true
}

// Elapsed returns the session time shown in the HUD, frozen while paused.
func (g *Game) Elapsed() time.Duration {
	if g.paused {
		return g.pausedAt.Sub(g.session.start)
	}
	return g.session.Elapsed()
}

// Session exposes the simulation for frontends that draw it themselves.
func (g *Game) Session() *Session {
	return g.session
}

// Ticks returns the number of Step calls since Reset, used for blinking.
func (g *Game) Ticks() int {
	return g.ticks
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Phase:    phase.String(),
		Cleared:  phase == PhaseCleared,
		GameOver: phase == PhaseGameOver,
		Paused:   g.paused,
		MaxCombo: g.session.Combo().Max,
	}
}

// Register the variants with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_classic", func() registry.Game {
		return NewClassic()
	})
}
