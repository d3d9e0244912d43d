package game

import "github.com/samber/lo"

// Player is the circle steered by the pointer. It waits at the centre of
// the screen until the first left-button release, then follows pointer
// motion for the rest of the game.
type Player struct {
	pos     Point
	started bool
	hits    uint
}

func NewPlayer() *Player {
	return &Player{
		pos: Point{X: ScreenWidth / 2, Y: ScreenHeight / 2},
	}
}

func (p *Player) Pos() Point {
	return p.pos
}

func (p *Player) Started() bool {
	return p.started
}

func (p *Player) Hits() uint {
	return p.hits
}

// HandleInput applies ev and reports whether it started the game.
func (p *Player) HandleInput(ev Event) (activated bool) {
	if !p.started {
		if ev.Kind == EventPointerRelease && ev.Button == ButtonLeft {
			p.started = true
			p.pos = ev.Pos()
			return true
		}
		return false
	}

	if ev.Kind == EventPointerMove {
		p.pos = Point{
			X: lo.Clamp(ev.X, PlayerRadius, ScreenWidth-PlayerRadius),
			Y: lo.Clamp(ev.Y, PlayerRadius, ScreenHeight-PlayerRadius),
		}
	}
	return false
}

// CheckCollision counts at most one hit against g, however many of its
// bullets overlap the player.
func (p *Player) CheckCollision(g *BulletGroup) bool {
	threshold := (PlayerRadius + BulletRadius) * (PlayerRadius + BulletRadius)

	hit := lo.ContainsBy(g.bullets[:], func(b Bullet) bool {
		return SquaredDistance(p.pos, b.pos) < threshold
	})
	if hit {
		p.hits++
	}
	return hit
}

func (p *Player) Draw(r Renderer) {
	r.FillCircle(p.pos, PlayerRadius, playerColor)
}
