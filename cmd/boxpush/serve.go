package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdfdjfk3/box-pushing-game/internal/game"
	"github.com/fdfdjfk3/box-pushing-game/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the boxpush SSH server",
	Long: `Start an SSH server that lets users connect and play the campaign.

Each SSH connection gets an independent playthrough; best clears are
stored per-server (all users share the same records).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.boxpush/host_key

Examples:
  boxpush serve                          # Listen on :2222 with auto-generated key
  boxpush serve --ssh :2200              # Listen on port 2200
  boxpush serve --host-key ./my_key      # Use specific host key
  boxpush serve --db ./completions.db    # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
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

	address := flagSSHAddr
	if address == "" {
		address = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = cfg.Server.HostKeyPath
	}

	srvCfg := tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: hostKey,
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		PlayerGlyph: cfg.PlayerRune(game.DefaultPlayerGlyph),
	}

	server, err := tui.NewSSHServer(srvCfg, campaign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting boxpush SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
