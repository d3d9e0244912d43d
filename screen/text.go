package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tsujio/game-pepero/game"
)

var ScoreColor = color.RGBA{0x00, 0x00, 0xff, 0xff}

// Text renders strings into freshly allocated images.
type Text struct {
	face  font.Face
	color color.Color
}

// NewText uses face, or the built-in bitmap face when face is nil.
func NewText(face font.Face, clr color.Color) *Text {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Text{face: face, color: clr}
}

func (t *Text) Text(s string) game.Drawable {
	b := text.BoundString(t.face, s)
	if b.Empty() {
		return nil
	}

	img := ebiten.NewImage(b.Dx(), b.Dy())
	text.Draw(img, s, t.face, -b.Min.X, -b.Min.Y, t.color)
	return &Image{img: img}
}
