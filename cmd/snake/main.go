// snake is a terminal Snake game with poison and bonus food.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a variant (default: snake)
//	snake serve              - Start SSH server for remote play
//	snake scores [variant]   - Show high scores for a variant
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/snake.db)
//	--log-file <path>  - Set log file for interactive play (default: ~/.arcade/snake.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game: steer the snake, eat food, grow, and avoid
walls and your own tail. Golden stars are worth extra points, poison
costs points and kills you when the score drops below zero.

Available commands:
  list     - Show all variants
  play     - Play a variant
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake play
  snake play snake_classic --difficulty hard
  snake serve --ssh :2222
  snake scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/snake.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default: ~/.arcade/snake.log)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile opens the interactive log destination, keeping the alt-screen clean.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "snake.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadRules resolves the YAML config and difficulty preset into the rules
// every new game starts from.
func loadRules(configPath, difficulty string, logger *log.Logger) error {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadSnake(configPath)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("config loaded", "source", source, "difficulty", preset)
	snake.SetRules(snake.RulesFromConfig(cfg))
	return nil
}
