package hal

import (
	"context"
	"fmt"
	"time"

	"softcube/frame"
)

// scriptEvents replays a fixed input list, then reports no input.
type scriptEvents struct {
	script []frame.Input
}

func (s *scriptEvents) Poll() frame.Input {
	if len(s.script) == 0 {
		return frame.Input{}
	}
	in := s.script[0]
	s.script = s.script[1:]
	return in
}

// RunHeadless drives o from a ticker without opening a window. Every frame
// advances time by exactly one tick period. ctx is checked between frames.
func RunHeadless(ctx context.Context, o *frame.Orchestrator, cfg HeadlessConfig) error {
	log := loggerOr(cfg.Logger)
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	ev := &scriptEvents{script: cfg.Script}
	clk := frame.FixedClock(d)
	out := withHUD(cfg.HUD, o, func() float64 { return float64(cfg.Hz) }, nil)

	t := time.NewTicker(d)
	defer t.Stop()

	log.Info("headless start", "hz", cfg.Hz, "frames", cfg.Frames)
	var n uint64
loop:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			quit, err := o.Cycle(ev, clk, out)
			if err != nil {
				return err
			}
			if quit {
				break loop
			}
			n++
			if cfg.Frames > 0 && n >= cfg.Frames {
				break loop
			}
		}
	}
	log.Info("headless stop", "frames", n)

	if cfg.Snapshot != "" {
		if err := WriteSnapshot(cfg.Snapshot, o.Framebuffer()); err != nil {
			return err
		}
		log.Info("snapshot written", "path", cfg.Snapshot)
	}
	return nil
}
