// forge is a terminal blacksmith game: buy metal, heat it in the forge,
// hammer it on the anvil and sell the goods before the days run out.
//
// Usage:
//
//	forge list              - List available games
//	forge play [game]       - Play a game (default: forge)
//	forge menu              - Start menu to pick games interactively
//	forge serve             - Start SSH server for remote play
//	forge scores <game>     - Show the richest runs of a game
//	forge crafts            - Show recent anvil results
//	forge config            - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.forge/forge.db)
//	--log <path>    - Write a game log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-forge/internal/games/workshop"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge - run a blacksmith's workshop in your terminal",
	Long: `Forge is a terminal game about running a small smithy.

Buy bars at the desk, heat them in the forge until they glow just right,
then strike them on the anvil in time with the falling notes. Finished
goods sell for more the better you hammer them.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View the richest runs
  crafts   - View recent anvil results
  config   - Print the default tuning file

Examples:
  forge play
  forge play forge_endless --difficulty hard
  forge menu
  forge serve --ssh :2222
  forge scores forge`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.forge/forge.db", "Path to ledger database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a game log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log purchases and sales too")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(craftsCmd)
	rootCmd.AddCommand(configCmd)
}
