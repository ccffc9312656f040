package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresAll    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display high scores. With a variant, shows the top 10 scores for it.
Without arguments, shows a summary across all variants.

Examples:
  shooter scores                    # Summary of all variants
  shooter scores classic            # Top 10 for classic
  shooter scores dense --player bob # Bob's best dense scores
  shooter scores classic --all      # Full history, most recent first
  shooter scores classic --clear    # Wipe classic scores`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show scores for a single player")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show full history instead of top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// No variant: print a summary across all of them
	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := resolveVariant(args[0])
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	if flagScoresClear {
		if clearErr := store.ClearScores(gameID); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Printf("Scores cleared for %s.\n", title)
		return
	}

	// Pick the score set to display
	var scores []storage.ScoreEntry
	heading := fmt.Sprintf("High Scores - %s", title)
	switch {
	case flagScoresPlayer != "":
		scores, err = store.PlayerScores(gameID, flagScoresPlayer, 10)
		heading = fmt.Sprintf("High Scores - %s - %s", title, flagScoresPlayer)
	case flagScoresAll:
		scores, err = store.AllScores(gameID)
		heading = fmt.Sprintf("Score History - %s", title)
	default:
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println(heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shooter play %s' to set the first high score!\n", args[0])
		return
	}

	printScoreTable(scores)

	// Show best score and totals
	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, statsErr := store.GetGameStats(gameID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Games played: %d, shots fired: %d, bubbles popped: %d\n",
			stats.GamesCount, stats.TotalShots, stats.TotalPopped)
	}
}

// printScoreTable prints score entries as an aligned table.
func printScoreTable(scores []storage.ScoreEntry) {
	// Calculate player column width
	maxNameLen := 6 // "Player" header
	for _, e := range scores {
		if len(e.Player) > maxNameLen {
			maxNameLen = len(e.Player)
		}
	}

	fmt.Printf("  %-4s  %-*s  %-8s  %-7s  %s\n", "Rank", maxNameLen, "Player", "Score", "Popped", "Date")
	fmt.Printf("  %-4s  %-*s  %-8s  %-7s  %s\n", "----", maxNameLen, "------", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-8d  %-7d  %s\n", i+1, maxNameLen, entry.Player, entry.Score, entry.Popped, dateStr)
	}
}

// printSummary prints per-variant aggregate stats.
func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Scores by variant:")
	fmt.Println()
	fmt.Printf("  %-24s  %-6s  %-8s  %-8s  %s\n", "Variant", "Plays", "Best", "Avg", "Popped")
	fmt.Printf("  %-24s  %-6s  %-8s  %-8s  %s\n", "-------", "-----", "----", "---", "------")

	for _, g := range games {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-24s  %-6d  %-8s  %-8s  %s\n", g.Title, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-24s  %-6d  %-8d  %-8.1f  %d\n",
			g.Title, s.GamesCount, s.HighScore, s.AvgScore, s.TotalPopped)
	}

	fmt.Println()
	fmt.Println("Run 'shooter scores <variant>' for the full table.")
}
