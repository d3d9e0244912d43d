package headless

import (
	"github.com/samber/lo"

	"github.com/tsujio/game-pepero/game"
)

// Input replays a Script. Every run of Poll calls until it returns false is
// one frame.
type Input struct {
	byFrame map[int][]game.Event
	frames  int
	frame   int
	pending []game.Event
	loaded  bool
	hidden  bool
}

// NewInput builds an Input from a validated script.
func NewInput(s *Script) *Input {
	grouped := lo.GroupBy(s.Events, func(e ScriptEvent) int {
		return e.Frame
	})

	byFrame := make(map[int][]game.Event, len(grouped))
	for frame, events := range grouped {
		byFrame[frame] = lo.FilterMap(events, func(e ScriptEvent, _ int) (game.Event, bool) {
			ev, err := e.Event()
			return ev, err == nil
		})
	}

	return &Input{byFrame: byFrame, frames: s.Frames}
}

func (in *Input) Poll() (game.Event, bool) {
	if !in.loaded {
		in.pending = append(in.pending[:0], in.byFrame[in.frame]...)
		if in.frames > 0 && in.frame == in.frames-1 {
			in.pending = append(in.pending, game.QuitEvent())
		}
		in.loaded = true
	}

	if len(in.pending) == 0 {
		in.loaded = false
		in.frame++
		return game.Event{}, false
	}

	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, true
}

func (in *Input) HideCursor() {
	in.hidden = true
}

// CursorHidden reports whether the game asked to hide the cursor.
func (in *Input) CursorHidden() bool {
	return in.hidden
}
