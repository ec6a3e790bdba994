// main.go - Entry point for the legal aid assistant client.
// Loads configuration from the environment (.env supported), sets up
// logging, and launches the terminal UI against the Remote Case Service.

package main

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"legalaid/src/api"
	"legalaid/src/app"
	"legalaid/src/config"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting legal aid assistant client", "api_base_url", cfg.APIBaseURL)

	client := api.NewClient(cfg.APIBaseURL, logger)
	root := app.New(client, logger)

	program := tea.NewProgram(root, tea.WithAltScreen())

	setupGracefulShutdown(program, logger)

	if _, err := program.Run(); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application exited")
}

// newLogger builds the slog logger. Output goes to the configured log
// file; without one it is discarded, since stderr belongs to the TUI.
func newLogger(cfg *config.Config) *slog.Logger {
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			out = f
		}
	}

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// setupGracefulShutdown quits the program cleanly on SIGINT/SIGTERM.
func setupGracefulShutdown(program *tea.Program, logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("received shutdown signal")
		program.Quit()
	}()
}
