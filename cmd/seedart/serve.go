package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the member card SSH server",
	Long: `Start an SSH server that shows every user their member card.

The first connection of a user name assigns a random seed, stored in the
member database; later connections show the same card. Users can browse
other seeds and artworks from there.

Host key handling:
  - If --host-key or server.host_key_path is set, uses that key file
  - Otherwise, auto-generates a key at ~/.seedart/host_key

Examples:
  seedart serve                           # Listen on the configured address
  seedart serve --ssh :2222               # Listen on port 2222
  seedart serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides config")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes, overrides config")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	srvCfg := tui.SSHServerConfigFrom(cfg)
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = minutes(flagIdleTimeout)
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting seedart SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		fail("%v", err)
	}
}
