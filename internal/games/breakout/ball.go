package breakout

import (
	"math"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// Point is a position in play-field pixels.
type Point struct {
	X, Y float64
}

// Ball is a square projectile. Trail holds its recent positions, newest first.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Size   float64
	Trail  []Point

	maxTrail  int
	hitPaddle bool
}

// NewBall launches a ball from (x, y) at angleDeg from straight up.
func NewBall(x, y, size, speed, angleDeg float64, maxTrail int) *Ball {
	rad := angleDeg * math.Pi / 180
	return &Ball{
		X:        x,
		Y:        y,
		DX:       speed * math.Sin(rad),
		DY:       -speed * math.Cos(rad),
		Size:     size,
		Trail:    make([]Point, 0, max(maxTrail, 0)),
		maxTrail: maxTrail,
	}
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Size, b.Size)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// HitPaddle reports whether the last Update deflected the ball off the paddle.
func (b *Ball) HitPaddle() bool {
	return b.hitPaddle
}

func (b *Ball) pushTrail() {
	if b.maxTrail <= 0 {
		return
	}
	if len(b.Trail) < b.maxTrail {
		b.Trail = append(b.Trail, Point{})
	}
	copy(b.Trail[1:], b.Trail)
	b.Trail[0] = Point{X: b.X, Y: b.Y}
}

// Move advances the ball one frame. The side and top walls clamp the
// position and point the velocity back into the field. The bottom is open.
func (b *Ball) Move(fieldW float64) {
	b.pushTrail()

	nx, ny := b.X+b.DX, b.Y+b.DY
	switch {
	case nx < 0:
		b.X = 0
		b.DX = math.Abs(b.DX)
	case nx > fieldW-b.Size:
		b.X = fieldW - b.Size
		b.DX = -math.Abs(b.DX)
	default:
		b.X = nx
	}

	if ny < 0 {
		b.Y = 0
		b.DY = math.Abs(b.DY)
	} else {
		b.Y = ny
	}
}

// Deflect bounces the ball off the paddle. The outgoing angle grows with the
// distance from the paddle center, up to maxAngle degrees; speed is kept.
func (b *Ball) Deflect(paddle core.RectF, maxAngle float64) {
	half := paddle.W / 2
	n := core.ClampF((paddle.X+half-b.X)/half, -1, 1)
	rad := n * maxAngle * math.Pi / 180
	speed := b.Speed()
	b.DX = -speed * math.Sin(rad)
	b.DY = -speed * math.Cos(rad)
	b.Y = paddle.Y - b.Size
}

// Update moves the ball and deflects it when it lands in the paddle's
// catch zone. It reports whether the paddle was hit.
func (b *Ball) Update(fieldW float64, catch core.RectF, maxAngle float64) bool {
	b.Move(fieldW)
	b.hitPaddle = b.Rect().Overlaps(catch)
	if b.hitPaddle {
		b.Deflect(catch, maxAngle)
	}
	return b.hitPaddle
}
