package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/spaces/app"
	"github.com/jask/spaces/internal/config"
	"github.com/jask/spaces/internal/content"
	"github.com/jask/spaces/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}

	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatal("logging", "err", err)
	}
	defer closer.Close()

	spaces, err := content.LoadFile(cfg.Content.Path)
	if err != nil {
		log.Fatal("content", "err", err)
	}
	logger.Info("starting", "spaces", len(spaces), "boundary", cfg.Carousel.Boundary, "autoplay_ms", cfg.Carousel.AutoplayMS)

	m, err := app.New(cfg, spaces, logger)
	if err != nil {
		log.Fatal("startup", "err", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
