package headless

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsujio/game-pepero/game"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
frames: 10
events:
  - {frame: 0, kind: press, x: 320, y: 240}
  - {frame: 0, kind: release, button: left, x: 320, y: 240}
  - {frame: 3, kind: move, x: 5, y: 600}
  - {frame: 4, kind: press, button: right, x: 1, y: 2}
`))
	if err != nil {
		t.Fatalf("ParseScript() error: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if s.Frames != 10 || len(s.Events) != 4 {
		t.Fatalf("unexpected script %+v", s)
	}

	expected := []game.Event{
		game.PressEvent(game.ButtonLeft, 320, 240),
		game.ReleaseEvent(game.ButtonLeft, 320, 240),
		game.MoveEvent(5, 600),
		game.PressEvent(game.ButtonRight, 1, 2),
	}
	for i, e := range s.Events {
		ev, err := e.Event()
		if err != nil {
			t.Fatalf("event %d: %v", i, err)
		}
		if ev != expected[i] {
			t.Errorf("event %d = %+v, expected %+v", i, ev, expected[i])
		}
	}
}

func TestScriptValidate(t *testing.T) {
	tests := []struct {
		name    string
		script  Script
		wantErr bool
	}{
		{"frames only", Script{Frames: 3}, false},
		{"quit event", Script{Events: []ScriptEvent{{Frame: 2, Kind: "quit"}}}, false},
		{"never quits", Script{Events: []ScriptEvent{{Kind: "move"}}}, true},
		{"negative frames", Script{Frames: -1}, true},
		{"negative event frame", Script{Frames: 1, Events: []ScriptEvent{{Frame: -1, Kind: "move"}}}, true},
		{"unknown kind", Script{Frames: 1, Events: []ScriptEvent{{Kind: "scroll"}}}, true},
		{"unknown button", Script{Frames: 1, Events: []ScriptEvent{{Kind: "press", Button: "side"}}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.script.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte("frames: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error: %v", err)
	}
	if s.Frames != 2 {
		t.Errorf("Frames = %d, expected 2", s.Frames)
	}

	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing script")
	}
	if _, err := ParseScript([]byte("frames: [")); err == nil {
		t.Error("expected an error for invalid yaml")
	}
}
