package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/lox/guess/internal/config"
	"github.com/lox/guess/internal/game"
	"github.com/lox/guess/internal/randutil"
	"github.com/lox/guess/internal/tui"
)

// Run loads configuration, starts the game and blocks until the player quits
func (c *CLI) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.LogLevel(),
	})

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := randutil.SeedOrNow(cfg.Game.Seed, quartz.NewReal())
	state := game.New(randutil.New(seed), cfg.Game.MaxRange)
	model := tui.NewTUIModel(state, logger, tui.Options{
		SliderMin:  cfg.Game.SliderMin,
		SliderMax:  cfg.Game.SliderMax,
		SliderStep: cfg.Game.SliderStep,
		ShowTimer:  !cfg.UI.HideTimer,
	})

	logger.Info("Starting guess",
		"version", version,
		"config", c.Config,
		"max_range", cfg.Game.MaxRange,
		"seed", seed)

	return run(model, logger)
}

// loadConfig reads the config file and applies command line overrides
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if c.Max != 0 {
		cfg.Game.MaxRange = c.Max
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}
	if c.HideTimer {
		cfg.UI.HideTimer = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run drives the program until the player quits or a signal arrives
func run(model tea.Model, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	program := tea.NewProgram(model, tea.WithAltScreen())
	done := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down", "reason", context.Cause(ctx))
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Exiting")
	return nil
}
