package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long:  `Shows the levels of the campaign in play order.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	campaign, err := loadCampaign(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range campaign {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxIDLen, "ID", "Name")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxIDLen, "--", "----")

	for i, lvl := range campaign {
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxIDLen, lvl.ID, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'boxpush play' to start from the first level.")
}
