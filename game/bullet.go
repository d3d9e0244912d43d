package game

import "math/rand"

type Bullet struct {
	pos Point
}

func newBullet(rng *rand.Rand) Bullet {
	return Bullet{pos: randomPoint(rng)}
}

func randomPoint(rng *rand.Rand) Point {
	return Point{X: rng.Intn(ScreenWidth), Y: rng.Intn(ScreenHeight)}
}

func (b *Bullet) Pos() Point {
	return b.pos
}

func (b *Bullet) Radius() int {
	return BulletRadius
}

// Advance moves the bullet by v. A bullet that passes the right or bottom
// edge respawns at a random point; leaving through the top or left edge
// is not corrected.
func (b *Bullet) Advance(v Point, rng *rand.Rand) {
	b.pos = b.pos.Add(v)

	if b.pos.X > ScreenWidth || b.pos.Y > ScreenHeight {
		b.pos = randomPoint(rng)
	}
}

func (b *Bullet) Draw(r Renderer) {
	r.FillCircle(b.pos, BulletRadius, bulletColor)
}
