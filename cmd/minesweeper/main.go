package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-tui/internal/app"
	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/sound"
	"github.com/vancomm/minesweeper-tui/internal/terminal"
)

var log = logrus.New()

// setupLogging points every package logger at the log file, if any. The
// terminal belongs to the game, so nothing is written to it.
func setupLogging(cfg config.Config) {
	loggers := []*logrus.Logger{log, app.Log, mines.Log, sound.Log}

	var hook logrus.Hook
	if cfg.LogFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      cfg.LogLevel,
			Formatter:  &logrus.TextFormatter{DisableColors: true},
		})
		if err != nil {
			log.Fatal("unable to open log file: ", err)
		}
	}

	for _, l := range loggers {
		l.SetLevel(cfg.LogLevel)
		l.SetOutput(io.Discard)
		if hook != nil {
			l.AddHook(hook)
		}
	}
}

func newRand(cfg config.Config) *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	log.WithField("seed", seed).Debug("random source")
	return rand.New(rand.NewPCG(seed, seed))
}

func run(ctx context.Context, cfg config.Config) (app.Result, error) {
	params := mines.GameParams{Width: cfg.Width, Height: cfg.Height, MineCount: cfg.MineCount}
	game, err := mines.NewGame(params, newRand(cfg))
	if err != nil {
		return app.Result{}, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return app.Result{}, fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return app.Result{}, fmt.Errorf("unable to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	player := sound.NewPlayer(cfg.Sound)
	defer player.Close()

	log.WithField("params", params).Info("new game")

	a := app.New(game, terminal.NewRenderer(screen), terminal.NewKeySource(screen), player)
	return a.Start(ctx, screen)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "try --help")
		os.Exit(1)
	}
	if cfg.Info != config.InfoNone {
		fmt.Print(cfg.Info.Text())
		return
	}

	setupLogging(cfg)
	log.WithFields(cfg.Fields()).Debug("config")

	result, err := run(mainCtx, cfg)
	if err != nil {
		log.WithError(err).Error("session failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if result.State.Over() {
		fmt.Println(terminal.Summary(result.State, result.Elapsed))
	}
}
