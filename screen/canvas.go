// Package screen implements the game's rendering capabilities on top of
// ebiten images.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tsujio/game-pepero/game"
)

// Canvas is a double-buffered offscreen target. Frames are drawn into the
// back buffer and copied to the front buffer on Present, so the window can
// be redrawn at any time with the last complete frame.
type Canvas struct {
	back  *ebiten.Image
	front *ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{
		back:  ebiten.NewImage(game.ScreenWidth, game.ScreenHeight),
		front: ebiten.NewImage(game.ScreenWidth, game.ScreenHeight),
	}
}

func (c *Canvas) Clear() {
	c.back.Fill(game.BackgroundColor())
}

func (c *Canvas) FillCircle(center game.Point, radius int, clr color.Color) {
	vector.DrawFilledCircle(c.back, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *Canvas) DrawImage(d game.Drawable, at game.Point) {
	img, ok := d.(*Image)
	if !ok || img.img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	c.back.DrawImage(img.img, op)
}

func (c *Canvas) Present() {
	c.front.Clear()
	c.front.DrawImage(c.back, nil)
}

// Draw copies the last presented frame onto dst.
func (c *Canvas) Draw(dst *ebiten.Image) {
	dst.DrawImage(c.front, nil)
}
