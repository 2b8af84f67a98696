package tui

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/seedart/internal/config"
	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.seedart/host_key.
	HostKeyPath string

	// DBPath is the path to the member database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Config is handed to every session's browser.
	Config *config.Config
}

// SSHServerConfigFrom builds a server config from the loaded configuration.
func SSHServerConfigFrom(cfg *config.Config) SSHServerConfig {
	return SSHServerConfig{
		Address:     net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: cfg.Server.IdleTimeout,
		Config:      cfg,
	}
}

// SSHServer wraps a Wish SSH server that shows each user their member card.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seedart-ssh",
	})
	if cfg.Config == nil {
		d := config.Default()
		cfg.Config = &d
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open member database", "error", err)
		// Continue without storage; seeds fall back to a hash of the user name.
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".seedart", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a browser for each SSH session, opened on the user's
// member card.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sshSession.User()
	seed := s.memberSeed(user)

	model := NewBrowserModel(BrowserOptions{
		Config:  s.config.Config,
		Store:   s.store,
		Artwork: "member-card",
		Seed:    seed,
		Width:   pty.Window.Width,
		Height:  pty.Window.Height,
		Label:   user,
		NoSave:  true,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// memberSeed returns the persisted seed for user, assigning a random one on
// first visit. Without a database the seed is derived from the user name.
func (s *SSHServer) memberSeed(user string) prng.Seed {
	if s.store != nil {
		seed, err := s.store.MemberSeed(user, func() prng.Seed {
			return prng.RandomSeed(rand.New(rand.NewSource(time.Now().UnixNano())))
		})
		if err == nil {
			return seed
		}
		s.logger.Warn("member seed lookup failed", "user", user, "error", err)
	}
	h := fnv.New32a()
	h.Write([]byte(user))
	return prng.FromInt(int64(h.Sum32()))
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
