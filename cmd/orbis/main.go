// Package main is the entry point for the Orbis simulation client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/orbis/internal/config"
	"github.com/Faultbox/orbis/internal/game"
	"github.com/Faultbox/orbis/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Orbis ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// With no input devices attached, the character walks the planet on
	// autopilot so connected viewers see the world in motion.
	autopilot := func() game.InputState {
		return game.InputState{Forward: 1}
	}

	g, err := game.New(cfg, autopilot)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
