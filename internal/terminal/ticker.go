package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Tick posts an interrupt event to screen every interval until ctx is done,
// so a blocked [KeySource] wakes up and the timer gets redrawn.
func Tick(ctx context.Context, screen tcell.Screen, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// a full queue already has a redraw pending
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}
