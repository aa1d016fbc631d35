package breakout

import (
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Loss choreography tuning.
const (
	shatterFallMin     = 2.0
	shatterFallMax     = 4.0
	shatterSpinChance  = 0.3
	shatterSpinMax     = 15.0
	shatterDelayMax    = 20
	shatterDriftChance = 0.5
	shatterDriftMax    = 1.5
	fallAccelMin       = 0.5
	fallAccelMax       = 0.8
	spinDecay          = 0.995
)

// Block is one cell of the grid. The fall fields only change after a loss.
type Block struct {
	X, Y          float64
	Width, Height float64
	Row, Col      int
	Color         core.Color
	Active        bool

	FallSpeed       float64
	Rotation        float64 // degrees
	RotateSpeed     float64
	FallDelay       int
	HorizontalSpeed float64
}

// Rect returns the block's bounding box.
func (b *Block) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Center returns the center of the block.
func (b *Block) Center() (float64, float64) {
	return b.Rect().Center()
}

// BlockGrid is the fixed lattice of blocks in row-major order.
type BlockGrid struct {
	Blocks []Block
	Rows   int
	Cols   int

	active int
}

// PaletteIndex returns the block color for a grid row.
func PaletteIndex(row int) core.Color {
	return core.PaletteColor(8 + row%7)
}

// NewBlockGrid builds a full grid with every block active.
func NewBlockGrid(cfg config.BlocksConfig) *BlockGrid {
	g := &BlockGrid{
		Blocks: make([]Block, 0, cfg.Rows*cfg.Cols),
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
	}
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			g.Blocks = append(g.Blocks, Block{
				X:      cfg.OffsetX + float64(col)*(cfg.Width+cfg.GapX),
				Y:      cfg.OffsetY + float64(row)*(cfg.Height+cfg.GapY),
				Width:  cfg.Width,
				Height: cfg.Height,
				Row:    row,
				Col:    col,
				Color:  PaletteIndex(row),
				Active: true,
			})
		}
	}
	g.active = len(g.Blocks)
	return g
}

// ActiveCount returns the number of blocks still in play.
func (g *BlockGrid) ActiveCount() int {
	return g.active
}

// Cleared reports whether every block has been destroyed.
func (g *BlockGrid) Cleared() bool {
	return g.active == 0
}

// Destroy deactivates block i. It returns false if the block was already gone.
func (g *BlockGrid) Destroy(i int) bool {
	b := &g.Blocks[i]
	if !b.Active {
		return false
	}
	b.Active = false
	g.active--
	return true
}

// Shatter seeds every remaining block with its own fall, spin, drift and delay.
func (g *BlockGrid) Shatter(rng *SimpleRNG) {
	for i := range g.Blocks {
		b := &g.Blocks[i]
		if !b.Active {
			continue
		}
		b.FallSpeed = rng.Uniform(shatterFallMin, shatterFallMax)
		if rng.Chance(shatterSpinChance) {
			b.RotateSpeed = rng.Uniform(-shatterSpinMax, shatterSpinMax)
		}
		b.FallDelay = rng.IntRange(0, shatterDelayMax)
		if rng.Chance(shatterDriftChance) {
			b.HorizontalSpeed = rng.Uniform(-shatterDriftMax, shatterDriftMax)
		}
	}
}

// Fall advances the loss choreography by one frame. Blocks that leave the
// field are deactivated.
func (g *BlockGrid) Fall(rng *SimpleRNG, fieldW, fieldH float64) {
	for i := range g.Blocks {
		b := &g.Blocks[i]
		if !b.Active {
			continue
		}
		if b.FallDelay > 0 {
			b.FallDelay--
			continue
		}

		b.FallSpeed += rng.Uniform(fallAccelMin, fallAccelMax)
		b.Rotation += b.RotateSpeed
		b.RotateSpeed *= spinDecay
		b.X += b.HorizontalSpeed
		b.Y += b.FallSpeed

		if b.Y > fieldH || b.X < -b.Width*2 || b.X > fieldW+b.Width*2 {
			g.Destroy(i)
		}
	}
}
