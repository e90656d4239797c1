package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tiltdodge/dodge/internal/engine"
	"github.com/tiltdodge/dodge/internal/platform/tui"
	"github.com/tiltdodge/dodge/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the high score board",
	Long: `Display the top runs, one tab per difficulty.

Without arguments an interactive board opens. Pass a difficulty name
(or use --plain) for a plain-text table.

Examples:
  dodge scores
  dodge scores hard
  dodge scores --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain-text table instead of the interactive board")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) > 0 || flagPlain {
		difficulty := "easy"
		if len(args) > 0 {
			difficulty = args[0]
		}
		printScores(store, difficulty)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, flagFPS, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes a plain-text table for one difficulty.
func printScores(store *storage.Store, difficulty string) {
	known := false
	for _, d := range engine.Difficulties() {
		if d.String() == difficulty {
			known = true
			break
		}
	}
	if !known {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, medium, hard)\n", difficulty)
		os.Exit(1)
	}

	runs, err := store.TopRuns(difficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.DurationTicks, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
