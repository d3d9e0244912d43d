package game

import (
	"image/color"
	"time"
)

// Renderer draws onto the canvas of one frame.
type Renderer interface {
	Clear()
	FillCircle(center Point, radius int, c color.Color)
	DrawImage(d Drawable, at Point)
	Present()
}

// Drawable is an image resource owned by whoever created it.
type Drawable interface {
	Size() (w, h int)
	Release()
}

// TextFactory renders a string into a new Drawable. It returns nil if the
// text could not be rendered.
type TextFactory interface {
	Text(s string) Drawable
}

// InputSource delivers the input events pending for the current frame.
// Poll returns false once the queue is drained.
type InputSource interface {
	Poll() (Event, bool)
	HideCursor()
}

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
