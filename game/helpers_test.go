package game

import (
	"image/color"
	"math/rand"
	"time"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

type drawCall struct {
	op     string
	at     Point
	radius int
	color  color.Color
	image  Drawable
}

type recordRenderer struct {
	calls    []drawCall
	presents int
}

func (r *recordRenderer) Clear() {
	r.calls = append(r.calls, drawCall{op: "clear"})
}

func (r *recordRenderer) FillCircle(center Point, radius int, c color.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", at: center, radius: radius, color: c})
}

func (r *recordRenderer) DrawImage(d Drawable, at Point) {
	r.calls = append(r.calls, drawCall{op: "image", at: at, image: d})
}

func (r *recordRenderer) Present() {
	r.calls = append(r.calls, drawCall{op: "present"})
	r.presents++
}

func (r *recordRenderer) reset() {
	r.calls = nil
}

type fakeDrawable struct {
	name     string
	w, h     int
	released int
}

func (d *fakeDrawable) Size() (int, int) {
	return d.w, d.h
}

func (d *fakeDrawable) Release() {
	d.released++
}

type fakeText struct {
	rendered []*fakeDrawable
}

func (f *fakeText) Text(s string) Drawable {
	d := &fakeDrawable{name: s, w: 10 * len(s), h: 20}
	f.rendered = append(f.rendered, d)
	return d
}

func (f *fakeText) last() *fakeDrawable {
	if len(f.rendered) == 0 {
		return nil
	}
	return f.rendered[len(f.rendered)-1]
}

// queueInput hands out one batch of events per frame.
type queueInput struct {
	frames     [][]Event
	current    []Event
	hidden     int
	pollRounds int
}

func (q *queueInput) Poll() (Event, bool) {
	if q.current == nil {
		q.pollRounds++
		if len(q.frames) == 0 {
			q.current = []Event{}
		} else {
			q.current = q.frames[0]
			q.frames = q.frames[1:]
		}
	}
	if len(q.current) == 0 {
		q.current = nil
		return Event{}, false
	}
	ev := q.current[0]
	q.current = q.current[1:]
	return ev, true
}

func (q *queueInput) HideCursor() {
	q.hidden++
}

type fakeClock struct {
	now       time.Time
	frameCost time.Duration
	sleeps    []time.Duration
	nowCalls  int
}

func (c *fakeClock) Now() time.Time {
	c.nowCalls++
	// Every second reading is the end of a frame.
	if c.nowCalls%2 == 0 {
		c.now = c.now.Add(c.frameCost)
	}
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

