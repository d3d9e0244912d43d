package game

import "fmt"

// ScoreDisplay is the "Hits N" text in the top-right corner. The text is
// re-rendered from scratch on every update.
type ScoreDisplay struct {
	text  TextFactory
	image Drawable
}

func NewScoreDisplay(text TextFactory) *ScoreDisplay {
	return &ScoreDisplay{text: text}
}

func (s *ScoreDisplay) Update(hits uint) {
	s.Release()
	if s.text == nil {
		return
	}
	s.image = s.text.Text(fmt.Sprintf("Hits %d", hits))
}

func (s *ScoreDisplay) Draw(r Renderer) {
	if s.image == nil {
		return
	}
	w, _ := s.image.Size()
	r.DrawImage(s.image, Point{X: ScreenWidth - w, Y: 0})
}

func (s *ScoreDisplay) Release() {
	if s.image != nil {
		s.image.Release()
		s.image = nil
	}
}
