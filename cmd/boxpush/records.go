package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fdfdjfk3/box-pushing-game/internal/platform/tui"
	"github.com/fdfdjfk3/box-pushing-game/internal/storage"
)

var flagInteractive bool

var recordsCmd = &cobra.Command{
	Use:   "records [level]",
	Short: "Show best clears",
	Long: `Display the best clears for a level, or aggregate statistics for
the whole campaign when no level is given.

Examples:
  boxpush records
  boxpush records 01-first-steps
  boxpush records --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse records in an interactive table")
}

func runRecords(cmd *cobra.Command, args []string) {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening completions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		campaign, campErr := loadCampaign(cfg)
		if campErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", campErr)
			os.Exit(1)
		}

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if runErr := tui.RunCompletions(store, campaign, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	if len(args) == 1 {
		printLevelRecords(store, args[0])
		return
	}

	printAllStats(store)
}

// printLevelRecords prints the top 10 clears for one level.
func printLevelRecords(store *storage.Store, levelID string) {
	entries, err := store.BestCompletions(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Clears - %s\n", levelID)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Println("Run 'boxpush play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Turns", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-8d  %d:%02d      %s\n",
			i+1, e.Turns, e.Duration/60, e.Duration%60,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestTurns(levelID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d turns\n", best)
	}
}

// printAllStats prints aggregate clear statistics for every level played.
func printAllStats(store *storage.Store) {
	all, err := store.GetAllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No clears recorded yet.")
		fmt.Println()
		fmt.Println("Run 'boxpush play' to set the first record!")
		return
	}

	fmt.Println("Campaign statistics:")
	fmt.Println()
	fmt.Printf("  %-20s  %-7s  %-6s  %s\n", "Level", "Clears", "Best", "Avg turns")
	fmt.Printf("  %-20s  %-7s  %-6s  %s\n", "-----", "------", "----", "---------")

	for id, stats := range all {
		fmt.Printf("  %-20s  %-7d  %-6d  %.1f\n", id, stats.Clears, stats.BestTurns, stats.AvgTurns)
	}
}
