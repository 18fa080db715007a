// boxpush is a terminal box-pushing puzzle game.
//
// Usage:
//
//	boxpush play             - Play the campaign
//	boxpush levels           - List campaign levels
//	boxpush records [level]  - Show best clears
//	boxpush serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Path to config YAML (default: search standard locations)
//	--db <path>     - Set database path (default: ~/.boxpush/completions.db)
//	--levels <dir>  - Load levels from a directory instead of the builtin campaign
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fdfdjfk3/box-pushing-game/internal/config"
	"github.com/fdfdjfk3/box-pushing-game/internal/game"
	"github.com/fdfdjfk3/box-pushing-game/internal/levels"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxpush",
	Short: "A box-pushing puzzle game for your terminal",
	Long: `boxpush is a terminal puzzle game: push boxes onto buttons to open
doors and reach the goal of each level.

Available commands:
  play     - Play the campaign
  levels   - List campaign levels
  records  - View best clears
  serve    - Start SSH server for remote play

Examples:
  boxpush play
  boxpush play --levels ./my-levels
  boxpush records 01-first-steps
  boxpush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to completions database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (overrides builtin campaign)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadAppConfig loads the config and applies flag overrides.
func loadAppConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	return cfg, nil
}

// loadCampaign loads the campaign levels: from the configured directory
// when one is set, otherwise the builtin campaign.
func loadCampaign(cfg config.Config) ([]game.Level, error) {
	if cfg.Levels.Dir == "" {
		return levels.Builtin(), nil
	}

	loader := levels.NewLoader(config.ExpandHome(cfg.Levels.Dir))
	loaded, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return nil, fmt.Errorf("no level files found in %s", cfg.Levels.Dir)
	}
	return loaded, nil
}
