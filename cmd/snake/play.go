package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play snake",
	Long: `Start playing the specified variant (default: snake).

Variants:
  snake          - +10 food, +50 bonus star, -10 poison
  snake_classic  - +1 food, +5 bonus star, no poison

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  R                - Restart (after game over)
  ?                - Toggle help
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Config values as loaded
  hard   - Faster start, steeper speed-up
  fixed  - No speed-up, stays at the initial speed

Examples:
  snake play
  snake play snake_classic
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume (0-1)")
}

func runPlay(_ *cobra.Command, args []string) {
	variant := "snake"
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "snake")

	if err := loadRules(flagConfig, flagDifficulty, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := audio.Open(flagMute, flagVolume, logger)

	runErr := tui.Run(game, tui.Options{
		Store:  store,
		Audio:  sound,
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: max(height-1, 0), // help bar
			Seed:    flagSeed,
		},
	})

	if err := sound.Close(); err != nil {
		logger.Warn("audio close failed", "err", err)
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		logFile.Close()
		os.Exit(1)
	}
}
