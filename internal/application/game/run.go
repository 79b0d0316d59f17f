package game

import (
	"context"
	"time"
)

// Run drives the game without a window: it ticks, waits for the timeout and
// repeats until the scene manager stops, a tick fails or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	for {
		running, err := g.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		wait := g.Timeout()
		if wait <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
