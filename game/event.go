package game

import "fmt"

type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventPointerPress
	EventPointerRelease
	EventPointerMove
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventQuit:
		return "quit"
	case EventPointerPress:
		return "press"
	case EventPointerRelease:
		return "release"
	case EventPointerMove:
		return "move"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Event is a discrete input event. Button is only meaningful for press
// and release events.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
}

func (e Event) Pos() Point {
	return Point{X: e.X, Y: e.Y}
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func PressEvent(b Button, x, y int) Event {
	return Event{Kind: EventPointerPress, Button: b, X: x, Y: y}
}

func ReleaseEvent(b Button, x, y int) Event {
	return Event{Kind: EventPointerRelease, Button: b, X: x, Y: y}
}

func MoveEvent(x, y int) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}
