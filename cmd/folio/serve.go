package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-folio/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio SSH server",
	Long: `Start an SSH server that shows the portfolio to every visitor.

Each SSH connection gets its own session: scroll position, tilt and the
contact form are never shared between visitors.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key from the config
  - If both are empty, auto-generates a key at ~/.folio/host_key

Examples:
  folio serve                            # Listen on server.host:server.port
  folio serve --ssh :2222                # Listen on port 2222
  folio serve --host-key ./my_host_key   # Use specific host key

Visitors can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides the config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg := mustConfig()
	portfolio := mustContent()

	cfg := tui.SSHServerConfigFrom(appCfg.Server)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FPS = flagFPS

	logger := newLogger(appCfg, os.Stderr, "folio-ssh")
	server, err := tui.NewSSHServer(cfg, appCfg, portfolio, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting folio SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
