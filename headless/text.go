package headless

import (
	"unicode/utf8"

	"github.com/tsujio/game-pepero/game"
)

const (
	glyphWidth  = 8
	glyphHeight = 16
)

// Placeholder is a sized stand-in for an image or a text.
type Placeholder struct {
	Label    string
	W, H     int
	released *int
}

func NewPlaceholder(label string, w, h int) *Placeholder {
	return &Placeholder{Label: label, W: w, H: h}
}

func (p *Placeholder) Size() (int, int) {
	return p.W, p.H
}

func (p *Placeholder) Release() {
	if p.released != nil {
		*p.released++
	}
}

// Text is a TextFactory producing fixed-metric placeholders.
type Text struct {
	Rendered []string
	released int
}

func (t *Text) Text(s string) game.Drawable {
	t.Rendered = append(t.Rendered, s)
	return &Placeholder{
		Label:    s,
		W:        glyphWidth * utf8.RuneCountInString(s),
		H:        glyphHeight,
		released: &t.released,
	}
}

// Released returns how many rendered texts have been released.
func (t *Text) Released() int {
	return t.released
}
