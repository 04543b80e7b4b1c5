package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"pitchtarp/internal/config"
	"pitchtarp/internal/service"
	"pitchtarp/internal/store"
	"pitchtarp/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration, writing the defaults on first run
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating default config: %w", err)
		}
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// The TUI owns the terminal, so log to a file instead
	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("resolving log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "pitchtarp")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	// Open profile store
	storePath, err := cfg.StorePath()
	if err != nil {
		return fmt.Errorf("resolving store path: %w", err)
	}
	profiles, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("opening profile store: %w", err)
	}
	log.Printf("using profiles file %s", profiles.Path())

	// Launch TUI
	pitchSvc := service.NewPitchService(profiles)
	app := tui.NewApp(pitchSvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
