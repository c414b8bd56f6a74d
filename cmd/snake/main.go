package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/config"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/logging"
	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"
	"github.com/Nilesh-194/snake-game-mobile/internal/sound"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/screens"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the log file and audio device are
// released on every path.
func run(args []string) error {
	cfg, flags, err := config.Parse("snake", args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if flags.Dump {
		return cfg.Write(os.Stdout)
	}

	logger, closer, err := logging.Setup(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	tp := schedule.SystemTime{}
	clock := schedule.NewClock(tp.Now())
	ctrl := app.NewController(clock,
		app.WithRand(domain.NewRand(cfg.Game.Seed)),
		app.WithLogger(logger.With().Str("component", "controller").Logger()),
	)

	player := sound.New(cfg.Sound, logger.With().Str("component", "sound").Logger())
	defer player.Close()
	ctrl.Subscribe(player)

	if cfg.Game.StartLevel != "" {
		if err := ctrl.Start(cfg.Game.StartLevel); err != nil {
			logger.Error().Err(err).Msg("failed to start level")
			return err
		}
	}

	engine := graphics.NewEngine(ctrl, clock, tp, graphics.Options{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		CellSize: cfg.Window.CellSize,
		Title:    cfg.Window.Title,
		Log:      logger.With().Str("component", "ui").Logger(),
	})
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewGameScreen(engine),
		screens.NewGameOverScreen(engine),
	)

	logger.Info().Str("title", cfg.Window.Title).Bool("sound", player.Enabled()).Msg("starting")
	if err := engine.Run(); err != nil {
		logger.Error().Err(err).Msg("ui error")
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
