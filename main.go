package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/term"
	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, closer, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closer.Close()

	g := game.NewGame(game.Options{
		Width:    cfg.BoardWidth,
		Height:   cfg.BoardHeight,
		CellSize: cfg.CellSize,
		Logger:   logger,
	})

	logger.Info().
		Str("frontend", cfg.Frontend).
		Int("width", cfg.BoardWidth).
		Int("height", cfg.BoardHeight).
		Dur("tick", cfg.TickInterval).
		Msg("starting snake")

	switch cfg.Frontend {
	case config.FrontendTerminal:
		if err := runTerminal(g, cfg, logger, tcell.NewScreen); err != nil {
			logger.Error().Err(err).Msg("terminal frontend failed")
			closer.Close()
			os.Exit(1)
		}
	default:
		ui.Run(g, ui.Options{
			Title:        cfg.WindowTitle,
			TickInterval: cfg.TickInterval,
			Logger:       logger,
		})
	}

	logger.Info().Int("high_score", g.HighScore()).Msg("bye")
}

func runTerminal(g *game.Game, cfg config.Config, logger zerolog.Logger, newScreen func() (tcell.Screen, error)) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return term.NewApp(screen, g, cfg.TickInterval, logger).Run(ctx)
}
