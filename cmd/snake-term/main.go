package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/config"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/logging"
	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"
	"github.com/Nilesh-194/snake-game-mobile/internal/sound"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

const defaultLogFile = "logs/snake-term.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, flags, err := config.Parse("snake-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if flags.Dump {
		return cfg.Write(os.Stdout)
	}

	// stderr belongs to the screen, so logs always go to a file.
	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile
	}
	logger, closer, err := logging.Setup(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

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
			screen.Fini()
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Bool("sound", player.Enabled()).Msg("starting")
	runner := terminal.NewRunner(screen, ctrl, clock, tp, logger.With().Str("component", "ui").Logger())
	if err := runner.Run(ctx); err != nil {
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
