package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-forge/internal/smithy"
	"github.com/vovakirdan/tui-forge/internal/storage"
)

var (
	flagCraftsLimit int
	flagFinest      bool
	flagMaterial    string
)

var craftsCmd = &cobra.Command{
	Use:   "crafts",
	Short: "Show recent anvil results",
	Long: `Display the goods that came off the anvil, newest first.

Examples:
  forge crafts
  forge crafts --limit 50
  forge crafts --finest
  forge crafts --material gold`,
	Args: cobra.NoArgs,
	Run:  runCrafts,
}

func init() {
	craftsCmd.Flags().IntVar(&flagCraftsLimit, "limit", 20, "Number of crafts to show")
	craftsCmd.Flags().BoolVar(&flagFinest, "finest", false, "Order by value instead of date")
	craftsCmd.Flags().StringVar(&flagMaterial, "material", "", "Only show goods of one material (iron, steel, bronze, silver, gold)")
}

func runCrafts(_ *cobra.Command, _ []string) {
	var material smithy.Material
	if flagMaterial != "" {
		m, err := smithy.ParseMaterial(flagMaterial)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		material = m
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	query := store.RecentCrafts
	title := "Recent Crafts"
	if flagFinest {
		query = store.FinestCrafts
		title = "Finest Crafts"
	}
	if flagMaterial != "" {
		query = func(limit int) ([]storage.CraftEntry, error) {
			return store.CraftsOf(material.String(), limit)
		}
		title = fmt.Sprintf("%s Crafts", material)
	}

	crafts, err := query(flagCraftsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving crafts: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(crafts) == 0 {
		fmt.Println("Nothing has left the anvil yet.")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-7s  %-10s  %s\n", "Item", "Points", "Value", "Smith", "Date")
	fmt.Printf("  %-16s  %-6s  %-7s  %-10s  %s\n", "----", "------", "-----", "-----", "----")

	for _, c := range crafts {
		fmt.Printf("  %-16s  %-6d  %-7s  %-10s  %s\n",
			c.Item, c.Points, fmt.Sprintf("%d$", c.Value), c.Player, c.CreatedAt.Format("2006-01-02 15:04"))
	}
}
