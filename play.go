package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"

	"github.com/tsujio/game-pepero/config"
	"github.com/tsujio/game-pepero/game"
	"github.com/tsujio/game-pepero/resources"
	"github.com/tsujio/game-pepero/screen"
	"github.com/tsujio/game-pepero/touchutil"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play.

Controls:
  Left click on START - Hide the start button
  Left release        - Start the game at the pointer
  Mouse / touch       - Move
  Close the window    - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// Game adapts the loop to ebiten. Every tick runs one full frame into the
// offscreen canvas; Draw only shows the last presented frame.
type Game struct {
	loop   *game.Loop
	canvas *screen.Canvas
	input  *touchutil.Source
}

func (g *Game) Update() error {
	g.input.Collect()
	g.loop.Frame()

	if g.loop.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.canvas.Draw(dst)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(game.ScreenWidth*cfg.Window.Scale, game.ScreenHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(game.FPS)
	ebiten.SetWindowClosingHandled(true)

	input := touchutil.NewSource()
	canvas := screen.NewCanvas()
	loop := game.NewLoop(canvas, input, game.Options{
		Rand:       newRand(cfg.Seed),
		StartImage: loadStartImage(cfg.Assets.StartImage, logger),
		Text:       screen.NewText(loadScoreFace(cfg.Assets, logger), screen.ScoreColor),
		Logger:     logger,
	})
	defer loop.Close()

	logger.Debug("starting", "seed", cfg.Seed, "scale", cfg.Window.Scale)

	if err := ebiten.RunGame(&Game{loop: loop, canvas: canvas, input: input}); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("game over", "hits", loop.Player().Hits(), "frames", loop.Frames())
	return nil
}

// loadStartImage returns nil when the image is unavailable; the game then
// runs without a start button.
func loadStartImage(path string, logger *log.Logger) game.Drawable {
	img, err := resources.LoadImage(path)
	if err != nil {
		logger.Warn("failed to load start image", "path", path, "error", err)
		return nil
	}
	return screen.NewImage(resources.ColorKey(img, color.Black))
}

func loadScoreFace(assets config.AssetsConfig, logger *log.Logger) font.Face {
	face, err := resources.LoadFace(assets.ScoreFont, assets.FontSize)
	if err != nil {
		logger.Warn("failed to load score font, using the built-in face", "path", assets.ScoreFont, "error", err)
		return nil
	}
	return face
}
