package headless

import (
	"image/color"

	"github.com/tsujio/game-pepero/game"
)

// Shape is one draw call of a recorded frame.
type Shape struct {
	Kind   string // circle or image
	At     game.Point
	Radius int
	W, H   int
}

type Stats struct {
	Clears   int
	Circles  int
	Images   int
	Presents int
}

// Recorder is a Renderer that keeps counters and the draw calls of the
// last presented frame.
type Recorder struct {
	stats   Stats
	current []Shape
	last    []Shape
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.stats.Clears++
	r.current = r.current[:0]
}

func (r *Recorder) FillCircle(center game.Point, radius int, _ color.Color) {
	r.stats.Circles++
	r.current = append(r.current, Shape{Kind: "circle", At: center, Radius: radius})
}

func (r *Recorder) DrawImage(d game.Drawable, at game.Point) {
	r.stats.Images++
	w, h := d.Size()
	r.current = append(r.current, Shape{Kind: "image", At: at, W: w, H: h})
}

func (r *Recorder) Present() {
	r.stats.Presents++
	r.last = append(r.last[:0], r.current...)
}

func (r *Recorder) Stats() Stats {
	return r.stats
}

// LastFrame returns the draw calls of the last presented frame.
func (r *Recorder) LastFrame() []Shape {
	return append([]Shape(nil), r.last...)
}
