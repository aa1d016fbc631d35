package pixel

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
)

// Debug font cell size in logical pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// view converts field pixels to logical screen pixels with the shake applied.
type view struct {
	dst            *ebiten.Image
	shakeX, shakeY float64
}

func (v view) pt(x, y float64) (float32, float32) {
	return float32((x + v.shakeX) * Scale), float32((y + v.shakeY) * Scale)
}

func (v view) rect(x, y, w, h float64, c core.Color) {
	sx, sy := v.pt(x, y)
	vector.DrawFilledRect(v.dst, sx, sy, float32(w*Scale), float32(h*Scale), c.RGBA(), false)
}

func (v view) circle(x, y, r float64, c core.Color) {
	sx, sy := v.pt(x, y)
	vector.DrawFilledCircle(v.dst, sx, sy, float32(r*Scale), c.RGBA(), true)
}

// text prints s at a field position, tinted c.
func (v view) text(x, y float64, s string, c core.Color) {
	sx, sy := v.pt(x, y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(c.RGBA())
	v.dst.DrawImage(label(s), op)
}

// labels caches rendered overlay strings; they repeat every frame.
var labels = map[string]*ebiten.Image{}

const maxLabels = 64

func label(s string) *ebiten.Image {
	if img, ok := labels[s]; ok {
		return img
	}
	if len(labels) >= maxLabels {
		for k, img := range labels {
			img.Deallocate()
			delete(labels, k)
		}
	}
	img := ebiten.NewImage(max(len(s), 1)*glyphW, glyphH)
	ebitenutil.DebugPrint(img, s)
	labels[s] = img
	return img
}

// centered prints s horizontally centered on the field at row y, tinted c.
func centered(dst *ebiten.Image, y float64, s string, c core.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(centerX(len(s), dst.Bounds().Dx())), y*Scale)
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(label(s), op)
}

// centerX returns the left x for n glyphs centered in width pixels.
func centerX(n, width int) int {
	return (width - n*glyphW) / 2
}

// drawGame renders the whole frame for the current phase.
func drawGame(dst *ebiten.Image, g *breakout.Game) {
	dst.Fill(core.ColorBlack.RGBA())

	s := g.Session()
	shake := s.Shake()
	v := view{dst: dst, shakeX: float64(shake.X), shakeY: float64(shake.Y)}

	switch s.Phase() {
	case breakout.PhasePlaying:
		drawPlaying(v, g)
	case breakout.PhaseGameOver:
		drawGameOver(v, g)
	case breakout.PhaseCleared:
		drawCleared(dst, g)
	}

	drawHUD(dst, g)

	if g.Paused() {
		centered(dst, float64(s.Config().Field.Height)/2-8, "PAUSED", core.ColorWhite)
	}
}

func drawPlaying(v view, g *breakout.Game) {
	s := g.Session()
	cfg := s.Config()
	p := s.Paddle()

	for i := len(p.Trail) - 1; i >= 0; i-- {
		c, _ := breakout.PaddleTrailColor(i, cfg.Paddle.Trail, 1, false)
		v.rect(p.Trail[i], p.Y, p.Width, p.Height, c)
	}
	v.rect(p.X, p.Y, p.Width, p.Height, breakout.PaddleColor(1))

	for _, b := range s.Balls() {
		for i := len(b.Trail) - 1; i >= 1; i-- {
			pt := b.Trail[i]
			v.rect(pt.X, pt.Y, b.Size, b.Size, breakout.BallTrailColor(i, cfg.Ball.Trail))
		}
		v.rect(b.X, b.Y, b.Size, b.Size, core.ColorWhite)
	}

	drawBlocks(v, s.Grid())

	for _, e := range s.Explosions() {
		ring, center := breakout.ExplosionColors(e.Combo)
		r := e.Radius()
		n := e.TrailPoints()
		for k := range n {
			a := float64(k) / float64(n) * 2 * math.Pi
			v.rect(e.X+math.Cos(a)*r, e.Y+math.Sin(a)*r, 1, 1, ring)
		}
		v.circle(e.X, e.Y, float64(e.CoreSize()), center)
	}

	for _, pt := range s.Particles() {
		v.rect(pt.X, pt.Y, 1, 1, pt.Color)
	}

	itemColor := breakout.ItemColor(g.Ticks())
	for _, it := range s.Items() {
		v.rect(it.X, it.Y, it.Size, it.Size, itemColor)
	}

	if ct := s.ComboText(); ct.Visible() {
		v.text(ct.X, ct.Y, ct.Text, breakout.ComboTextColor(s.Combo().Count))
	}
}

func drawBlocks(v view, grid *breakout.BlockGrid) {
	for i := range grid.Blocks {
		b := &grid.Blocks[i]
		if !b.Active {
			continue
		}
		if b.Rotation == 0 {
			v.rect(b.X, b.Y, b.Width, b.Height, b.Color)
			continue
		}
		drawRotated(v, b)
	}
}

// drawRotated fills a block turned around its center as two triangles.
func drawRotated(v view, b *breakout.Block) {
	corners := quadCorners(b)
	clr := b.Color.RGBA()
	r, g, bl, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff

	vs := make([]ebiten.Vertex, 0, 4)
	for _, c := range corners {
		x, y := v.pt(c[0], c[1])
		vs = append(vs, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
		})
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	v.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// quadCorners returns the block's corners in field pixels, clockwise from
// the top left, after rotating by b.Rotation degrees around its center.
func quadCorners(b *breakout.Block) [4][2]float64 {
	cx, cy := b.Center()
	hw, hh := b.Width/2, b.Height/2
	sin, cos := math.Sincos(b.Rotation * math.Pi / 180)

	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4][2]float64
	for i, p := range local {
		out[i] = [2]float64{
			cx + p[0]*cos - p[1]*sin,
			cy + p[0]*sin + p[1]*cos,
		}
	}
	return out
}

func drawGameOver(v view, g *breakout.Game) {
	s := g.Session()
	cfg := s.Config()
	drawBlocks(v, s.Grid())

	p := s.Paddle()
	if !p.Faded() {
		for i := len(p.Trail) - 1; i >= 0; i-- {
			if c, ok := breakout.PaddleTrailColor(i, cfg.Paddle.Trail, p.Opacity, true); ok {
				v.rect(p.Trail[i], p.Y, p.Width, p.Height, c)
			}
		}
		v.rect(p.X, p.Y, p.Width, p.Height, breakout.PaddleColor(p.Opacity))
	}

	if s.ShowOops() {
		centered(v.dst, 50, "OOPS!", core.ColorRed)
		if s.ShowRestartHint() {
			centered(v.dst, 70, g.RestartHint(), core.ColorWhite)
		}
	}
}

func drawCleared(dst *ebiten.Image, g *breakout.Game) {
	text := g.Session().Clear().Text()
	blink := breakout.Blink(g.Ticks())

	if blink {
		centered(dst, 40, "FINISH!!!", core.ColorWhite)
	}
	centered(dst, 60, text.Original, core.ColorGray)
	if text.BallBonus != "" {
		centered(dst, 70, text.BallBonus, core.ColorYellow)
	}
	if text.ComboBonus != "" {
		centered(dst, 80, text.ComboBonus, core.ColorLime)
	}
	if text.Final != "" && blink {
		centered(dst, 90, text.Final, core.ColorRed)
	}
	centered(dst, 105, g.RestartHint(), core.ColorLightBlue)
}

func drawHUD(dst *ebiten.Image, g *breakout.Game) {
	s := g.Session()
	combo := s.Combo()
	hud := fmt.Sprintf("%s  x%d  max %d", breakout.FormatClock(g.Elapsed()), combo.Count, combo.Max)
	ebitenutil.DebugPrintAt(dst, hud, 2, 0)
}
