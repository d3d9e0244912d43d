package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tsujio/game-pepero/game"
	"github.com/tsujio/game-pepero/headless"
	"github.com/tsujio/game-pepero/resources"
)

var (
	flagFrames int
	flagNoPace bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Replay an input script without a window",
	Long: `Run the game loop headless, feeding it the events of a YAML script.

Script format:
  frames: 300            # quit after this many frames (0 = wait for a quit event)
  events:
    - {frame: 0, kind: press, button: left, x: 320, y: 240}
    - {frame: 0, kind: release, x: 320, y: 240}
    - {frame: 10, kind: move, x: 100, y: 100}

Examples:
  pepero sim scripts/demo.yaml
  pepero sim scripts/demo.yaml --frames 900 --no-pace --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 0, "Override the number of frames of the script")
	simCmd.Flags().BoolVar(&flagNoPace, "no-pace", false, "Run frames back to back instead of at 30 FPS")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	script, err := headless.LoadScript(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("frames") {
		script.Frames = flagFrames
	}
	if err := script.Validate(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	var clock game.Clock = game.SystemClock{}
	if flagNoPace {
		clock = headless.FastClock{}
	}

	input := headless.NewInput(script)
	recorder := headless.NewRecorder()
	loop := game.NewLoop(recorder, input, game.Options{
		Rand:       newRand(cfg.Seed),
		StartImage: startPlaceholder(cfg.Assets.StartImage, logger),
		Text:       &headless.Text{},
		Clock:      clock,
		Logger:     logger,
	})

	began := time.Now()
	loop.Run()
	loop.Close()

	stats := recorder.Stats()
	logger.Info("simulation finished",
		"frames", loop.Frames(),
		"hits", loop.Player().Hits(),
		"started", loop.Player().Started(),
		"position", loop.Player().Pos(),
		"presents", stats.Presents,
		"elapsed", time.Since(began).Round(time.Millisecond),
	)
	return nil
}

// startPlaceholder sizes the headless start button like the real one.
func startPlaceholder(path string, logger *log.Logger) game.Drawable {
	img, err := resources.LoadImage(path)
	if err != nil {
		logger.Warn("failed to load start image", "path", path, "error", err)
		return nil
	}
	b := img.Bounds()
	return headless.NewPlaceholder("start", b.Dx(), b.Dy())
}
