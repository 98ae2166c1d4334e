package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-forge/internal/registry"
	"github.com/vovakirdan/tui-forge/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the richest runs of a game",
	Long: `Display the 10 runs that ended with the most money.

Examples:
  forge scores forge
  forge scores forge_endless
  forge scores forge --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'forge list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs of %s.\n", title)
		return
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Richest Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'forge play %s' to open the books!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-7s  %-10s  %s\n", "Rank", "Money", "Days", "Crafted", "Smith", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-7s  %-10s  %s\n", "----", "-----", "----", "-------", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-4d  %-7d  %-10s  %s\n",
			i+1, fmt.Sprintf("%d$", r.Money), r.Days, r.Crafted, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestRun(gameID); err == nil {
		fmt.Printf("Best: %d$\n", best)
	}
}
