// dodge is a terminal rendition of the handheld tilt-and-dodge game:
// steer the avatar between falling claws, score a point for every one
// that misses, and survive as long as your lives last.
//
// Usage:
//
//	dodge play              - Play the game
//	dodge scores            - Show the high score board
//	dodge serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.dodge/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - tilt away from the falling claws",
	Long: `Dodge is a terminal game where you steer an avatar along the bottom
of the playfield while claws rain down. Every claw that misses scores a
point; every one that connects costs a life.

Available commands:
  play     - Play the game
  scores   - View the high score board
  serve    - Start SSH server for remote play

Examples:
  dodge play
  dodge play --difficulty hard
  dodge scores
  dodge serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
