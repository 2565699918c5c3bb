package terminal

import (
	"github.com/gdamore/tcell/v2"
)

type Command int

const (
	Idle Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Open
	ToggleFlag
	Confirm
	Interrupt
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Open:
		return "open"
	case ToggleFlag:
		return "flag"
	case Confirm:
		return "confirm"
	case Interrupt:
		return "interrupt"
	default:
		return "idle"
	}
}

// Source delivers one command per call, blocking until one is available.
type Source interface {
	Next() Command
}

// Translate maps a terminal event to a command. Keys without a binding,
// resizes and ticks are [Idle] and only cause a redraw.
func Translate(ev tcell.Event) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Idle
	}

	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyETX:
		return Interrupt
	case tcell.KeyEnter:
		return Confirm
	case tcell.KeyUp:
		return MoveUp
	case tcell.KeyDown:
		return MoveDown
	case tcell.KeyLeft:
		return MoveLeft
	case tcell.KeyRight:
		return MoveRight
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w':
			return MoveUp
		case 's':
			return MoveDown
		case 'a':
			return MoveLeft
		case 'd':
			return MoveRight
		case ' ':
			return Open
		case 'f':
			return ToggleFlag
		}
	}
	return Idle
}

// KeySource reads commands from a tcell screen.
type KeySource struct {
	screen tcell.Screen
}

func NewKeySource(screen tcell.Screen) *KeySource {
	return &KeySource{screen: screen}
}

// Next blocks for the next event. A finalized screen reads as [Interrupt].
func (s *KeySource) Next() Command {
	ev := s.screen.PollEvent()
	if ev == nil {
		return Interrupt
	}
	return Translate(ev)
}
