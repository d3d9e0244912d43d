// Package touchutil turns ebiten's polled mouse and touch state into the
// discrete events consumed by the game loop.
package touchutil

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"

	"github.com/tsujio/game-pepero/game"
	"github.com/tsujio/game-pepero/touchutil/drag"
)

var mouseButtons = []struct {
	id     ebiten.MouseButton
	button game.Button
}{
	{ebiten.MouseButtonLeft, game.ButtonLeft},
	{ebiten.MouseButtonRight, game.ButtonRight},
	{ebiten.MouseButtonMiddle, game.ButtonMiddle},
}

type touch struct {
	id       ebiten.TouchID
	released bool
}

// Source queues the events observed during one ebiten tick. Touches are
// reported as the left button; the first active touch drags a virtual
// pointer instead of placing it under the finger.
type Source struct {
	queue       []game.Event
	cursor      image.Point
	cursorSeen  bool
	touches     []*touch
	justTouched []ebiten.TouchID
	pointer     *drag.Pointer
}

func NewSource() *Source {
	return &Source{
		pointer: drag.NewPointer(game.ScreenWidth, game.ScreenHeight),
	}
}

// Collect appends the events of the current tick to the queue. It must be
// called once per tick, before the queue is polled.
func (s *Source) Collect() {
	if ebiten.IsWindowBeingClosed() {
		s.queue = append(s.queue, game.QuitEvent())
	}

	s.collectMouse()
	s.collectTouches()
}

func (s *Source) collectMouse() {
	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	if s.cursorSeen && pos != s.cursor {
		s.queue = append(s.queue, game.MoveEvent(x, y))
	}
	s.cursor = pos
	s.cursorSeen = true

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.id) {
			s.queue = append(s.queue, game.PressEvent(b.button, x, y))
		}
		if inpututil.IsMouseButtonJustReleased(b.id) {
			s.queue = append(s.queue, game.ReleaseEvent(b.button, x, y))
		}
	}
}

func (s *Source) collectTouches() {
	for i, t := range s.touches {
		primary := i == 0
		if inpututil.IsTouchJustReleased(t.id) {
			x, y := inpututil.TouchPositionInPreviousTick(t.id)
			if primary {
				s.pointer.Release(x, y)
			}
			s.queue = append(s.queue, game.ReleaseEvent(game.ButtonLeft, x, y))
			t.released = true
			continue
		}

		if !primary {
			continue
		}
		if px, py, moved := s.pointer.Move(ebiten.TouchPosition(t.id)); moved {
			s.queue = append(s.queue, game.MoveEvent(px, py))
		}
	}

	s.touches = lo.Filter(s.touches, func(t *touch, _ int) bool {
		return !t.released
	})

	s.justTouched = inpututil.AppendJustPressedTouchIDs(s.justTouched[:0])
	for _, id := range s.justTouched {
		x, y := ebiten.TouchPosition(id)
		if len(s.touches) == 0 {
			s.pointer.Press(x, y)
		}
		s.queue = append(s.queue, game.PressEvent(game.ButtonLeft, x, y))
		s.touches = append(s.touches, &touch{id: id})
	}
}

func (s *Source) Poll() (game.Event, bool) {
	if len(s.queue) == 0 {
		return game.Event{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

func (s *Source) HideCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}
