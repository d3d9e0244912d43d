package game

import "testing"

func TestStartScreenCentred(t *testing.T) {
	s := NewStartScreen(&fakeDrawable{w: 100, h: 50})

	if s.Pos() != (Point{270, 215}) {
		t.Errorf("Pos() = %v, expected {270 215}", s.Pos())
	}
	if !s.Visible() {
		t.Error("expected a new start screen to be visible")
	}
}

func TestStartScreenHandleClick(t *testing.T) {
	tests := []struct {
		name      string
		ev        Event
		dismissed bool
	}{
		{"press inside", PressEvent(ButtonLeft, 320, 240), true},
		{"press just inside corner", PressEvent(ButtonLeft, 271, 216), true},
		{"press on left edge", PressEvent(ButtonLeft, 270, 240), false},
		{"press on right edge", PressEvent(ButtonLeft, 370, 240), false},
		{"press on top edge", PressEvent(ButtonLeft, 320, 215), false},
		{"press on bottom edge", PressEvent(ButtonLeft, 320, 265), false},
		{"press outside", PressEvent(ButtonLeft, 10, 10), false},
		{"right button", PressEvent(ButtonRight, 320, 240), false},
		{"release inside", ReleaseEvent(ButtonLeft, 320, 240), false},
		{"move inside", MoveEvent(320, 240), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := &fakeDrawable{w: 100, h: 50}
			s := NewStartScreen(img)

			got := s.HandleClick(tc.ev)

			if got != tc.dismissed {
				t.Errorf("HandleClick() = %v, expected %v", got, tc.dismissed)
			}
			if s.Visible() == tc.dismissed {
				t.Errorf("Visible() = %v after %s", s.Visible(), tc.name)
			}
			if tc.dismissed && img.released != 1 {
				t.Errorf("image released %d times, expected 1", img.released)
			}
			if !tc.dismissed && img.released != 0 {
				t.Errorf("image released %d times, expected 0", img.released)
			}
		})
	}
}

func TestStartScreenDismissalIsFinal(t *testing.T) {
	img := &fakeDrawable{w: 100, h: 50}
	s := NewStartScreen(img)
	r := &recordRenderer{}

	s.Draw(r)
	if len(r.calls) != 1 || r.calls[0].op != "image" || r.calls[0].at != s.Pos() {
		t.Fatalf("unexpected draw calls before dismissal: %+v", r.calls)
	}

	s.HandleClick(PressEvent(ButtonLeft, 320, 240))
	for i := 0; i < 3; i++ {
		if s.HandleClick(PressEvent(ButtonLeft, 320, 240)) {
			t.Fatal("a dismissed start screen reacted to a click")
		}
	}
	s.Release()

	r.reset()
	s.Draw(r)
	if len(r.calls) != 0 {
		t.Errorf("dismissed start screen drew %d calls", len(r.calls))
	}
	if img.released != 1 {
		t.Errorf("image released %d times, expected 1", img.released)
	}
}

func TestStartScreenWithoutImage(t *testing.T) {
	s := NewStartScreen(nil)
	r := &recordRenderer{}

	if s.HandleClick(PressEvent(ButtonLeft, ScreenWidth/2, ScreenHeight/2)) {
		t.Error("expected a start screen without an image to ignore clicks")
	}
	s.Draw(r)
	if len(r.calls) != 0 {
		t.Errorf("expected no draw calls, got %d", len(r.calls))
	}
	s.Release()
}
