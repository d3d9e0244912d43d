// Package game is the simulation core: bullets, the player, the start
// screen and the fixed-rate frame loop. Drawing and input go through the
// small capability interfaces in capability.go.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

type Options struct {
	// Rand drives bullet placement and drift. Defaults to a time seeded source.
	Rand *rand.Rand
	// StartImage is the start button; nil disables the start screen.
	StartImage Drawable
	// Text renders the score; nil disables it.
	Text   TextFactory
	Clock  Clock
	Logger *log.Logger
}

// Loop owns the whole game state and advances it one frame at a time.
type Loop struct {
	renderer Renderer
	input    InputSource
	clock    Clock
	logger   *log.Logger

	player   *Player
	start    *StartScreen
	score    *ScoreDisplay
	straight *BulletGroup
	circular *BulletGroup

	frames uint64
	quit   bool
}

func NewLoop(r Renderer, in InputSource, opts Options) *Loop {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Loop{
		renderer: r,
		input:    in,
		clock:    clock,
		logger:   logger,
		player:   NewPlayer(),
		start:    NewStartScreen(opts.StartImage),
		score:    NewScoreDisplay(opts.Text),
		straight: NewBulletGroup(MotionStraight, rng),
		circular: NewBulletGroup(MotionCircular, rng),
	}
}

func (l *Loop) Player() *Player {
	return l.player
}

func (l *Loop) StartScreen() *StartScreen {
	return l.start
}

// Groups returns the straight and the circular group, in that order.
func (l *Loop) Groups() (*BulletGroup, *BulletGroup) {
	return l.straight, l.circular
}

func (l *Loop) Frames() uint64 {
	return l.frames
}

// Quitting reports whether a quit event has been seen.
func (l *Loop) Quitting() bool {
	return l.quit
}

// Frame runs one frame without pacing: collision, input, motion, render.
func (l *Loop) Frame() {
	if l.player.CheckCollision(l.straight) || l.player.CheckCollision(l.circular) {
		l.logger.Debug("hit", "count", l.player.Hits(), "frame", l.frames)
		l.score.Update(l.player.Hits())
	}

	for {
		ev, ok := l.input.Poll()
		if !ok {
			break
		}
		l.dispatch(ev)
	}

	l.straight.Advance()
	l.circular.Advance()

	l.renderer.Clear()
	l.player.Draw(l.renderer)
	l.start.Draw(l.renderer)
	l.score.Draw(l.renderer)
	l.straight.Draw(l.renderer)
	l.circular.Draw(l.renderer)
	l.renderer.Present()

	l.frames++
}

func (l *Loop) dispatch(ev Event) {
	if ev.Kind == EventQuit {
		l.quit = true
	}

	if l.start.HandleClick(ev) {
		l.logger.Debug("start screen dismissed", "x", ev.X, "y", ev.Y)
	}

	if l.player.HandleInput(ev) {
		l.input.HideCursor()
		l.logger.Debug("game started", "x", ev.X, "y", ev.Y)
	}
}

// Run drives frames until a quit event arrives, sleeping away whatever is
// left of FrameBudget after each one. Overrunning frames are not made up.
func (l *Loop) Run() {
	for !l.quit {
		begin := l.clock.Now()

		l.Frame()

		if elapsed := l.clock.Now().Sub(begin); elapsed < FrameBudget {
			l.clock.Sleep(FrameBudget - elapsed)
		}
	}

	l.logger.Debug("quit", "frames", l.frames, "hits", l.player.Hits())
}

// Close releases the drawable resources owned by the loop.
func (l *Loop) Close() {
	l.start.Release()
	l.score.Release()
}
