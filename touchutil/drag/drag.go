// Package drag turns finger motion into relative pointer motion, so the
// player moves with the finger without sitting under it.
package drag

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

// Pointer is a virtual pointer moved by the deltas of successive finger
// positions and kept inside a width x height area. Until the first release
// it follows the finger exactly; that release anchors it, and later
// touches only drag it.
type Pointer struct {
	width, height float64
	pos, prev     *mathutil.Vector2D
	anchored      bool
}

func NewPointer(width, height int) *Pointer {
	return &Pointer{width: float64(width), height: float64(height)}
}

// Press starts a touch at (x, y).
func (p *Pointer) Press(x, y int) {
	finger := mathutil.NewVector2D(float64(x), float64(y))
	p.prev = finger
	if !p.anchored || p.pos == nil {
		p.pos = p.clamp(finger.Clone())
	}
}

// Move drags the pointer by the finger's motion since the last call and
// returns the new pointer position. It reports false if nothing moved.
func (p *Pointer) Move(x, y int) (int, int, bool) {
	if p.prev == nil || p.pos == nil {
		return 0, 0, false
	}

	curr := mathutil.NewVector2D(float64(x), float64(y))
	diff := curr.Sub(p.prev)
	p.prev = curr
	if diff.Norm() == 0 {
		return 0, 0, false
	}

	next := p.clamp(p.pos.Add(diff))
	if next.Sub(p.pos).Norm() == 0 {
		return 0, 0, false
	}
	p.pos = next
	return int(p.pos.X), int(p.pos.Y), true
}

// Release ends the touch at (x, y). The first release anchors the pointer
// there.
func (p *Pointer) Release(x, y int) {
	p.prev = nil
	if !p.anchored {
		p.pos = p.clamp(mathutil.NewVector2D(float64(x), float64(y)))
		p.anchored = true
	}
}

// Pos returns the pointer position; ok is false before the first touch.
func (p *Pointer) Pos() (x, y int, ok bool) {
	if p.pos == nil {
		return 0, 0, false
	}
	return int(p.pos.X), int(p.pos.Y), true
}

func (p *Pointer) clamp(v *mathutil.Vector2D) *mathutil.Vector2D {
	return mathutil.NewVector2D(
		lo.Clamp(v.X, 0, p.width),
		lo.Clamp(v.Y, 0, p.height),
	)
}
