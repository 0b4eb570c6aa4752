package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64
	// Hold lists keys kept pressed for the whole run.
	Hold []KeyCode
	// Realtime paces ticks with a wall-clock ticker; otherwise the loop runs
	// as fast as it can. The virtual clock advances one period per tick
	// either way. A run without a tick limit is always paced.
	Realtime bool
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, logger *zap.Logger, newApp func(HAL) (func() error, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	if cfg.Ticks == 0 {
		cfg.Realtime = true
	}

	h := newHost(cfg.Width, cfg.Height, logger, true)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	for _, code := range cfg.Hold {
		h.kbd.set(code, true)
	}

	var pace <-chan time.Time
	if cfg.Realtime {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var tick uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.step(d)
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
