package config

import (
	"errors"
	"fmt"
)

// Validate checks display and audio settings. A non-positive frame rate is
// valid and disables pacing.
func (c *EngineConfig) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

// Validate checks that the fleet fits the board and that every timing is positive.
func (c *BattleshipConfig) Validate() error {
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 || b.TileSize <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d tiles of %dpx", b.Width, b.Height, b.TileSize)
	}
	if len(c.Fleet) == 0 {
		return errors.New("fleet is empty")
	}

	cells := 0
	for _, ship := range c.Fleet {
		if ship.Length <= 0 || (ship.Length > b.Width && ship.Length > b.Height) {
			return fmt.Errorf("ship %q of length %d does not fit a %dx%d board", ship.Name, ship.Length, b.Width, b.Height)
		}
		cells += ship.Length
	}
	if cells > b.Width*b.Height {
		return fmt.Errorf("fleet needs %d cells, board has %d", cells, b.Width*b.Height)
	}

	t := c.Timings
	for name, ms := range map[string]float64{
		"fadeMs":        t.FadeMs,
		"buttonSlideMs": t.ButtonSlideMs,
		"waterFrameMs":  t.WaterFrameMs,
		"labelHoldMs":   t.LabelHoldMs,
		"labelRiseMs":   t.LabelRiseMs,
		"scoreCountMs":  t.ScoreCountMs,
	} {
		if ms <= 0 {
			return fmt.Errorf("timing %s must be positive, got %v", name, ms)
		}
	}

	if c.Score.MaxShots <= c.Score.PerfectShots {
		return fmt.Errorf("score maxShots (%d) must exceed perfectShots (%d)", c.Score.MaxShots, c.Score.PerfectShots)
	}
	return nil
}

// FleetCells returns the number of board cells the fleet occupies.
func (c *BattleshipConfig) FleetCells() int {
	n := 0
	for _, ship := range c.Fleet {
		n += ship.Length
	}
	return n
}
