// shadowcast-server serves the field-of-view walker over SSH. Every
// connection walks its own observer around the same map.
//
//	go build -o shadowcast-server ./cmd/server
//	./shadowcast-server [-port 2222] [-key server_host_key] [-generate -seed 7]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"shadowcast/internal/game"
	"shadowcast/internal/gamemap"
	internalssh "shadowcast/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "path to the PEM host key (generated if absent)")
	cfg := game.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*port, *keyFile, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(port int, keyFile string, cfg game.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	game.SetupLocale(cfg.LocaleDir, cfg.Lang)

	grid, start, err := game.LoadGrid(cfg)
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, grid: grid, start: start, log: logger}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     h.serve,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		// No authentication: every client gets a read-only walk.
		HostSigners: []gossh.Signer{signer},
	}

	w, ht := grid.Size()
	logger.Info("listening", "addr", srv.Addr, "map", fmt.Sprintf("%dx%d", w, ht))
	return srv.ListenAndServe()
}

// handler runs one game per SSH session over a shared, read-only grid.
type handler struct {
	cfg    game.Config
	grid   *gamemap.Grid
	start  gamemap.Point
	log    *slog.Logger
	active atomic.Int64
}

// serve blocks for the lifetime of the session.
func (h *handler) serve(s gossh.Session) {
	log := h.log.With("user", s.User(), "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPty) {
		fmt.Fprintln(s, "This walker needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		log.Warn("session setup failed", "err", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	g, err := game.NewWithScreen(screen, h.cfg, h.grid, h.start, log)
	if err != nil {
		log.Error("new game", "err", err)
		return
	}

	log.Info("connected", "sessions", h.active.Add(1))
	g.Run()
	log.Info("disconnected", "sessions", h.active.Add(-1))
}

// loadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and tries to save it there.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("unreadable host key, generating a new one", "path", path)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	block, err := xssh.MarshalPrivateKey(key, "shadowcast server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(block), 0o600)
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "err", err)
	} else {
		logger.Info("generated host key", "path", path)
	}
	return signer, nil
}
