package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Glyphs for the terminal renderer.
const (
	BlockChar     = '█'
	FallingChar   = '▓'
	PaddleChar    = '▀'
	BallChar      = '●'
	BallTrailChar = '•'
	RingChar      = '*'
	ParticleChar  = '·'
	ItemChar      = '■'
)

// Minimum terminal size.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// cellMapper scales play-field pixels into screen cells, applying the
// current shake offset.
type cellMapper struct {
	sx, sy         float64
	shakeX, shakeY float64
}

func (m cellMapper) x(px float64) int {
	return int(math.Floor((px + m.shakeX) * m.sx))
}

func (m cellMapper) y(py float64) int {
	return int(math.Floor((py + m.shakeY) * m.sy))
}

// rect maps a pixel box to cells, never shrinking below one cell.
func (m cellMapper) rect(r core.RectF) core.Rect {
	x0, y0 := m.x(r.X), m.y(r.Y)
	x1, y1 := m.x(r.Right()), m.y(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen. The bottom row is
// the HUD; the rest holds the play field stretched to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	s := g.session
	fieldW, fieldH := s.fieldSize()
	shake := s.Shake()
	m := cellMapper{
		sx:     float64(dst.Width()) / fieldW,
		sy:     float64(dst.Height()-1) / fieldH,
		shakeX: float64(shake.X),
		shakeY: float64(shake.Y),
	}

	switch s.Phase() {
	case PhasePlaying:
		g.renderPlaying(dst, m)
	case PhaseGameOver:
		g.renderGameOver(dst, m)
	case PhaseCleared:
		g.renderCleared(dst, m)
	}

	g.renderHUD(dst)

	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderPlaying(dst *core.Screen, m cellMapper) {
	s := g.session
	p := s.Paddle()

	for i := len(p.Trail) - 1; i >= 0; i-- {
		c, _ := PaddleTrailColor(i, s.cfg.Paddle.Trail, 1, false)
		dst.FillRect(m.rect(core.NewRectF(p.Trail[i], p.Y, p.Width, p.Height)), PaddleChar, c)
	}
	dst.FillRect(m.rect(p.Rect()), PaddleChar, PaddleColor(1))

	for _, b := range s.Balls() {
		for i := len(b.Trail) - 1; i >= 1; i-- {
			pt := b.Trail[i]
			dst.SetColored(m.x(pt.X), m.y(pt.Y), BallTrailChar, BallTrailColor(i, s.cfg.Ball.Trail))
		}
		dst.SetColored(m.x(b.X), m.y(b.Y), BallChar, core.ColorWhite)
	}

	g.renderBlocks(dst, m)

	for _, e := range s.Explosions() {
		ring, center := ExplosionColors(e.Combo)
		r := e.Radius()
		n := e.TrailPoints()
		for k := range n {
			a := float64(k) / float64(n) * 2 * math.Pi
			dst.SetColored(m.x(e.X+math.Cos(a)*r), m.y(e.Y+math.Sin(a)*r), RingChar, ring)
		}
		dst.SetColored(m.x(e.X), m.y(e.Y), BallChar, center)
	}

	for _, pt := range s.Particles() {
		dst.SetColored(m.x(pt.X), m.y(pt.Y), ParticleChar, pt.Color)
	}

	itemColor := ItemColor(g.ticks)
	for i := range s.Items() {
		it := s.Items()[i]
		dst.FillRect(m.rect(it.Rect()), ItemChar, itemColor)
	}

	if ct := s.ComboText(); ct.Visible() {
		dst.DrawTextColored(m.x(ct.X), m.y(ct.Y), ct.Text, ComboTextColor(s.Combo().Count))
	}
}

func (g *Game) renderBlocks(dst *core.Screen, m cellMapper) {
	for i := range g.session.grid.Blocks {
		b := &g.session.grid.Blocks[i]
		if !b.Active {
			continue
		}
		glyph := BlockChar
		if b.RotateSpeed != 0 {
			glyph = FallingChar
		}
		dst.FillRect(m.rect(b.Rect()), glyph, b.Color)
	}
}

func (g *Game) renderGameOver(dst *core.Screen, m cellMapper) {
	s := g.session
	g.renderBlocks(dst, m)

	p := s.Paddle()
	if !p.Faded() {
		for i := len(p.Trail) - 1; i >= 0; i-- {
			if c, ok := PaddleTrailColor(i, s.cfg.Paddle.Trail, p.Opacity, true); ok {
				dst.FillRect(m.rect(core.NewRectF(p.Trail[i], p.Y, p.Width, p.Height)), PaddleChar, c)
			}
		}
		dst.FillRect(m.rect(p.Rect()), PaddleChar, PaddleColor(p.Opacity))
	}

	if s.ShowOops() {
		plain := cellMapper{sx: m.sx, sy: m.sy}
		dst.DrawTextCenteredColored(plain.y(50), "OOPS!", core.ColorRed)
		if s.ShowRestartHint() {
			dst.DrawTextCenteredColored(plain.y(70), g.RestartHint(), core.ColorWhite)
		}
	}
}

func (g *Game) renderCleared(dst *core.Screen, m cellMapper) {
	text := g.session.Clear().Text()
	const top = 60

	if Blink(g.ticks) {
		dst.DrawTextCenteredColored(m.y(top-20), "FINISH!!!", core.ColorWhite)
	}
	dst.DrawTextCenteredColored(m.y(top), text.Original, core.ColorGray)
	if text.BallBonus != "" {
		dst.DrawTextCenteredColored(m.y(top+10), text.BallBonus, core.ColorYellow)
	}
	if text.ComboBonus != "" {
		dst.DrawTextCenteredColored(m.y(top+20), text.ComboBonus, core.ColorLime)
	}
	if text.Final != "" && Blink(g.ticks) {
		dst.DrawTextCenteredColored(m.y(top+30), text.Final, core.ColorRed)
	}
	dst.DrawTextCenteredColored(m.y(top+45), g.RestartHint(), core.ColorLightBlue)
}

// RestartHint is the prompt shown once a session has ended.
func (g *Game) RestartHint() string {
	if g.cfg.Controls.Mode == config.ControlsPointer {
		return "TOUCH TO RESTART"
	}
	return "PRESS SPACE TO RESTART"
}

// renderHUD draws the clock and combo counters on the bottom row.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	y := dst.Height() - 1
	combo := s.Combo()

	left := fmt.Sprintf("%s  x%d  max %d", FormatClock(g.Elapsed()), combo.Count, combo.Max)
	right := fmt.Sprintf("balls %d  blocks %d", len(s.Balls()), s.Grid().ActiveCount())

	dst.DrawTextColored(0, y, left, core.ColorGray)
	dst.DrawTextColored(dst.Width()-len(right), y, right, core.ColorGray)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
