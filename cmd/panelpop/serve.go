package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/panelpop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMode        string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the panelpop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode picker, or goes
straight into --mode when given. Sessions are recorded under the SSH
user name in the server's history database (--db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.panelpop/host_key

Examples:
  panelpop serve                           # Listen on :23234 with auto-generated key
  panelpop serve --ssh :2222               # Listen on port 2222
  panelpop serve --mode panels_gated       # Skip the menu
  panelpop serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMode, "mode", "", "Mode every session plays (default: show the menu)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if _, err := applyConfig(); err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Mode:        flagMode,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("panelpop-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Starting panelpop SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
