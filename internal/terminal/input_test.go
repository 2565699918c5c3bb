package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		ev   tcell.Event
		want Command
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), MoveUp},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), MoveDown},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), MoveLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), MoveRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), MoveUp},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), MoveDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), MoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), MoveRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Open},
		{tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), ToggleFlag},
		{tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), Confirm},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Interrupt},
		{tcell.NewEventKey(tcell.KeyRune, '\x03', tcell.ModNone), Interrupt},
		{tcell.NewEventKey(tcell.KeyETX, 0, tcell.ModNone), Interrupt},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Idle},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Idle},
		{tcell.NewEventResize(80, 24), Idle},
		{tcell.NewEventInterrupt(nil), Idle},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Translate(test.ev), "%#v", test.ev)
	}
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "interrupt", Interrupt.String())
}

func TestKeySource(t *testing.T) {
	screen := newTestScreen(t)
	source := NewKeySource(screen)

	screen.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)

	assert.Equal(t, ToggleFlag, source.Next())
	assert.Equal(t, Confirm, source.Next())
}

func TestKeySourceClosedScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.Fini()

	assert.Equal(t, Interrupt, NewKeySource(screen).Next())
}

func TestTick(t *testing.T) {
	screen := newTestScreen(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- Tick(ctx, screen, time.Millisecond)
	}()

	ev := screen.PollEvent()
	_, ok := ev.(*tcell.EventInterrupt)
	assert.True(t, ok, "got %T", ev)

	cancel()
	assert.NoError(t, <-done)
}
