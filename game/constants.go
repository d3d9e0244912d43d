package game

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	FPS          = 30

	// FrameBudget is the target duration of one frame.
	FrameBudget = 1000 / FPS * time.Millisecond

	PlayerRadius    = 10
	BulletRadius    = 25
	BulletGroupSize = 10
)

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	bulletColor     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	playerColor     = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// BackgroundColor is the colour a canvas is cleared with.
func BackgroundColor() color.Color {
	return backgroundColor
}
