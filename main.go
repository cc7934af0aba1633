package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"shadowcast/internal/dump"
	"shadowcast/internal/game"
	"shadowcast/internal/system"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	game.SetupLocale(cfg.LocaleDir, cfg.Lang)

	logger, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	grid, start, err := game.LoadGrid(cfg)
	if err != nil {
		return err
	}

	if cfg.Dump {
		vis := system.NewFOV(grid, cfg.FOVOptions()...).Visibility(start.X, start.Y)
		return dump.Write(os.Stdout, grid, vis, start, dump.TerminalOptions(os.Stdout))
	}

	g, err := game.New(cfg, grid, start, logger)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

// openLog returns a logger writing to path. The screen owns the terminal,
// so without a path log records are dropped.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
