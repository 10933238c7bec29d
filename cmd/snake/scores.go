package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the best runs for the specified variant (default: snake).

On a terminal this opens the interactive scoreboard; otherwise the top 10
runs are printed.

Examples:
  snake scores
  snake scores snake_classic
  snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	variant := "snake"
	if len(args) == 1 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearRuns(variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs for %s.\n", n, variant)
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, newLogger(io.Discard, "snake"), variant, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, variant); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printScores writes the top 10 runs for variant as plain text.
func printScores(w io.Writer, store *storage.Store, variant string) error {
	runs, err := store.TopRuns(variant, 10)
	if err != nil {
		return err
	}

	title := variant
	for _, g := range registry.List() {
		if g.ID == variant {
			title = g.Title
		}
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'snake play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-8s  %-9s  %s\n", "Rank", "Score", "Length", "Time", "End", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-8s  %-9s  %s\n", "----", "-----", "------", "----", "---", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-8s  %-9s  %s\n",
			i+1, r.Score, r.Length, r.Duration.Round(100*time.Millisecond), r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", runs[0].Score)
	return nil
}
