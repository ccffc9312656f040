// shooter is a TUI bubble shooter for playing in the terminal.
//
// Usage:
//
//	shooter list              - List available variants
//	shooter play [variant]    - Play a variant (classic by default)
//	shooter menu              - Start menu to pick variants interactively
//	shooter serve             - Start SSH server for remote play
//	shooter scores [variant]  - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shooter/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-shooter/internal/games/shooter"
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
	Use:   "shooter",
	Short: "TUI Shooter - Pop bubbles in your terminal",
	Long: `TUI Shooter is a terminal bubble shooter. Aim the cannon, fire
bubbles into the hanging field, and pop groups of three or more of the
same color before the field reaches your cannon.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  shooter list
  shooter play
  shooter play dense
  shooter menu
  shooter serve --ssh :2222
  shooter scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// resolveVariant maps a user-facing variant name to a registry game ID.
// Raw registry IDs pass through untouched.
func resolveVariant(arg string) string {
	switch arg {
	case "", "classic":
		return "shooter"
	case "dense":
		return "shooter_dense"
	default:
		return arg
	}
}
