package game

// StartScreen is the clickable button shown before play begins. Once
// dismissed its image is released and it never comes back.
type StartScreen struct {
	pos     Point
	w, h    int
	image   Drawable
	visible bool
}

// NewStartScreen centres image on the canvas. A nil image yields a screen
// that draws nothing and cannot be dismissed.
func NewStartScreen(image Drawable) *StartScreen {
	s := &StartScreen{
		image:   image,
		visible: true,
	}
	if image != nil {
		s.w, s.h = image.Size()
	}
	s.pos = Point{X: (ScreenWidth - s.w) / 2, Y: (ScreenHeight - s.h) / 2}
	return s
}

func (s *StartScreen) Pos() Point {
	return s.pos
}

func (s *StartScreen) Visible() bool {
	return s.visible
}

func (s *StartScreen) contains(x, y int) bool {
	return x > s.pos.X && x < s.pos.X+s.w && y > s.pos.Y && y < s.pos.Y+s.h
}

// HandleClick hides the screen on a left-button press strictly inside the
// button and reports whether that happened.
func (s *StartScreen) HandleClick(ev Event) bool {
	if ev.Kind != EventPointerPress || ev.Button != ButtonLeft {
		return false
	}
	if !s.visible || !s.contains(ev.X, ev.Y) {
		return false
	}

	s.visible = false
	s.Release()
	return true
}

func (s *StartScreen) Draw(r Renderer) {
	if !s.visible || s.image == nil {
		return
	}
	r.DrawImage(s.image, s.pos)
}

// Release frees the button image. It is safe to call more than once.
func (s *StartScreen) Release() {
	if s.image != nil {
		s.image.Release()
		s.image = nil
	}
}
