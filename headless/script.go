// Package headless runs the game loop without a window: input comes from a
// YAML script and frames are recorded instead of drawn.
package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsujio/game-pepero/game"
)

// Script is a timeline of input events.
type Script struct {
	// Frames is the number of frames to run before quitting. 0 means the
	// script has to quit on its own.
	Frames int           `yaml:"frames"`
	Events []ScriptEvent `yaml:"events"`
}

type ScriptEvent struct {
	Frame  int    `yaml:"frame"`
	Kind   string `yaml:"kind"`   // press, release, move or quit
	Button string `yaml:"button"` // left (default), right or middle
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

var eventKinds = map[string]game.EventKind{
	"press":   game.EventPointerPress,
	"release": game.EventPointerRelease,
	"move":    game.EventPointerMove,
	"quit":    game.EventQuit,
}

var buttons = map[string]game.Button{
	"":       game.ButtonLeft,
	"left":   game.ButtonLeft,
	"right":  game.ButtonRight,
	"middle": game.ButtonMiddle,
}

// Event converts e into a game event.
func (e ScriptEvent) Event() (game.Event, error) {
	kind, ok := eventKinds[e.Kind]
	if !ok {
		return game.Event{}, fmt.Errorf("frame %d: unknown event kind %q", e.Frame, e.Kind)
	}

	ev := game.Event{Kind: kind, X: e.X, Y: e.Y}
	switch kind {
	case game.EventPointerPress, game.EventPointerRelease:
		b, ok := buttons[e.Button]
		if !ok {
			return game.Event{}, fmt.Errorf("frame %d: unknown button %q", e.Frame, e.Button)
		}
		ev.Button = b
	case game.EventQuit:
		ev.X, ev.Y = 0, 0
	}
	return ev, nil
}

// Validate checks that every event converts and that the script ends.
func (s *Script) Validate() error {
	if s.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", s.Frames)
	}

	quits := false
	for _, e := range s.Events {
		if e.Frame < 0 {
			return fmt.Errorf("event frame must not be negative, got %d", e.Frame)
		}
		ev, err := e.Event()
		if err != nil {
			return err
		}
		if ev.Kind == game.EventQuit {
			quits = true
		}
	}

	if s.Frames == 0 && !quits {
		return fmt.Errorf("script never quits: set frames or add a quit event")
	}
	return nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
