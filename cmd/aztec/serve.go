package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aztec-shuffle/internal/config"
	"github.com/vovakirdan/aztec-shuffle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxOrder    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the aztec SSH server",
	Long: `Start an SSH server that lets users connect and watch diamonds grow.

Each SSH connection gets its own session with the interactive menu.
Runs generated over SSH are saved to the server's database, so every user
sees the same list of saved runs.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.aztec/host_key

Examples:
  aztec serve                           # Listen on :23235 with auto-generated key
  aztec serve --ssh :2222               # Listen on port 2222
  aztec serve --host-key ./my_host_key  # Use specific host key
  aztec serve --max-order 60            # Allow larger diamonds

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().IntVar(&flagMaxOrder, "max-order", 0, "Largest order a session may generate (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	scfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMinutes) * time.Minute,
		MaxOrder:    cfg.Server.MaxOrder,
		Viewer:      runtimeConfig(cmd),
		Palette:     palette(),
	}
	if cmd.Flags().Changed("ssh") {
		scfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		scfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		scfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if cmd.Flags().Changed("max-order") {
		scfg.MaxOrder = flagMaxOrder
	}

	if scfg.HostKeyPath != "" {
		path, err := config.ExpandHome(scfg.HostKeyPath)
		if err != nil {
			return err
		}
		scfg.HostKeyPath = path
	}

	server, err := tui.NewSSHServer(scfg, logger.WithPrefix("aztec-ssh"))
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting aztec SSH server on %s\n", scfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
