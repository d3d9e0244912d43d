package game

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

// Motion selects how a BulletGroup drifts.
type Motion int

const (
	MotionStraight Motion = iota
	MotionCircular
)

func (m Motion) String() string {
	switch m {
	case MotionStraight:
		return "straight"
	case MotionCircular:
		return "circular"
	default:
		return fmt.Sprintf("Motion(%d)", int(m))
	}
}

// sampleVelocity draws a drift vector for m. Straight groups get
// components in [-1, 3], circular groups in [-1, 1].
func (m Motion) sampleVelocity(rng *rand.Rand) Point {
	span := 5
	if m == MotionCircular {
		span = 3
	}
	return Point{X: rng.Intn(span) - 1, Y: rng.Intn(span) - 1}
}

// BulletGroup is a fixed set of bullets sharing one drift vector.
// The vector is sampled when the group is built and never changes.
type BulletGroup struct {
	bullets  [BulletGroupSize]Bullet
	motion   Motion
	velocity Point
	rng      *rand.Rand
}

func NewBulletGroup(m Motion, rng *rand.Rand) *BulletGroup {
	g := &BulletGroup{
		motion: m,
		rng:    rng,
	}
	for i := range g.bullets {
		g.bullets[i] = newBullet(rng)
	}
	g.velocity = m.sampleVelocity(rng)
	return g
}

func (g *BulletGroup) Motion() Motion {
	return g.motion
}

func (g *BulletGroup) Velocity() Point {
	return g.velocity
}

// Bullets returns a copy of the members.
func (g *BulletGroup) Bullets() [BulletGroupSize]Bullet {
	return g.bullets
}

// Advance moves every member by the group's drift vector.
func (g *BulletGroup) Advance() {
	for i := range g.bullets {
		g.bullets[i].Advance(g.velocity, g.rng)
	}
}

func (g *BulletGroup) Draw(r Renderer) {
	lo.ForEach(g.bullets[:], func(b Bullet, _ int) {
		b.Draw(r)
	})
}
