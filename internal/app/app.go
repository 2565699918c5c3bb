package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/terminal"
)

var Log = logrus.New()

// TickInterval is how often the elapsed time is redrawn while waiting for
// input.
const TickInterval = 250 * time.Millisecond

type Drawer interface {
	Draw(frame terminal.Frame)
}

type Player interface {
	Play(state mines.GameState)
}

// Result is how a session ended. State is [mines.Playing] when the player
// interrupted a game in progress.
type Result struct {
	State   mines.GameState
	Elapsed time.Duration
}

// App runs a single game against a command source and a drawer.
type App struct {
	game   *mines.Game
	drawer Drawer
	source terminal.Source
	player Player

	cursorX, cursorY int
}

func New(game *mines.Game, drawer Drawer, source terminal.Source, player Player) *App {
	field := game.Field()
	return &App{
		game:    game,
		drawer:  drawer,
		source:  source,
		player:  player,
		cursorX: (field.Width()+1)/2 - 1,
		cursorY: (field.Height()+1)/2 - 1,
	}
}

// Start runs the game on screen. Ticks are posted to the screen for as long as
// the game runs; cancelling ctx interrupts the game.
func (a *App) Start(ctx context.Context, screen tcell.Screen) (Result, error) {
	g, gCtx := errgroup.WithContext(ctx)
	tickCtx, stop := context.WithCancel(gCtx)

	g.Go(func() error {
		if err := terminal.Tick(tickCtx, screen, TickInterval); err != nil {
			return err
		}
		if ctx.Err() != nil {
			Log.WithError(ctx.Err()).Debug("interrupting session")
			return screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
		}
		return nil
	})

	var result Result
	g.Go(func() error {
		defer stop()
		result = a.Run()
		return nil
	})

	err := g.Wait()
	return result, err
}

// Run plays until the game is over or the player interrupts. A finished
// game stays on screen until the player confirms.
func (a *App) Run() Result {
	a.draw()

	for {
		cmd := a.source.Next()
		a.apply(cmd)
		a.draw()
		if cmd == terminal.Interrupt || a.game.State().Over() {
			break
		}
	}

	state := a.game.State()
	result := Result{State: state, Elapsed: a.game.Elapsed()}
	Log.WithFields(logrus.Fields{
		"state":   state,
		"elapsed": result.Elapsed,
	}).Info("session ended")

	if state.Over() {
		if a.player != nil {
			a.player.Play(state)
		}
		for {
			cmd := a.source.Next()
			if cmd == terminal.Confirm || cmd == terminal.Interrupt {
				break
			}
			a.draw()
		}
	}

	return result
}

func (a *App) apply(cmd terminal.Command) {
	switch cmd {
	case terminal.MoveUp:
		a.cursorY--
	case terminal.MoveDown:
		a.cursorY++
	case terminal.MoveLeft:
		a.cursorX--
	case terminal.MoveRight:
		a.cursorX++
	case terminal.Open:
		state := a.game.Open(a.cursorX, a.cursorY)
		Log.WithFields(logrus.Fields{
			"x": a.cursorX, "y": a.cursorY, "state": state,
		}).Debug("open")
	case terminal.ToggleFlag:
		a.game.ToggleFlag(a.cursorX, a.cursorY)
		Log.WithFields(logrus.Fields{
			"x": a.cursorX, "y": a.cursorY, "flags": a.game.Flags(),
		}).Debug("flag")
	}

	field := a.game.Field()
	a.cursorX = max(0, min(a.cursorX, field.Width()-1))
	a.cursorY = max(0, min(a.cursorY, field.Height()-1))
}

func (a *App) draw() {
	a.drawer.Draw(terminal.Frame{
		Field:     a.game.Field(),
		CursorX:   a.cursorX,
		CursorY:   a.cursorY,
		MinesLeft: a.game.MinesLeft(),
		Elapsed:   a.game.Elapsed(),
		State:     a.game.State(),
	})
}
