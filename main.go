// pepero is a small arcade game: steer a circle with the mouse and dodge
// two drifting groups of bullets. Every hit is counted.
//
// Usage:
//
//	pepero [play]         - Open the game window
//	pepero sim <script>   - Replay a YAML input script without a window
//
// Global flags:
//
//	--config <path>      - Configuration file (default search: ~/.pepero/config.yaml, ./pepero.yaml)
//	--seed <value>       - RNG seed (0 = time based, GAME_RAND_SEED also works)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tsujio/game-pepero/config"
)

const gameName = "pepero"

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   gameName,
	Short: "Pepero - dodge the bullets",
	Long: `Pepero is a tiny arcade game. Click the start button, then release the
mouse anywhere to drop your circle onto the field. Move the mouse to dodge
the red bullets; the top-right counter shows how often you were hit.

Examples:
  pepero
  pepero play --seed 42
  pepero sim scripts/demo.yaml --no-pace`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// setup resolves the configuration and builds the logger shared by all commands.
func setup(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	overrides := config.Overrides{LogLevel: flagLogLevel}
	if cmd.Flags().Changed("seed") {
		overrides.Seed = &flagSeed
	}
	if err := config.Resolve(&cfg, overrides); err != nil {
		return cfg, nil, err
	}

	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return cfg, nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          gameName,
		Level:           level,
	})
	return cfg, logger, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
