// Package hal connects the frame loop to the host: an ebiten window with
// captured mouse and keyboard, a headless ticker runner, a monotonic clock
// and image snapshots.
package hal

import (
	"errors"
	"log/slog"

	"softcube/frame"
	"softcube/hud"
	"softcube/raster"
)

var (
	ErrNoWindow          = errors.New("window unavailable")
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Scale  int // window pixels per framebuffer pixel
	TPS    int
	HUD    bool
	Logger *slog.Logger
}

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // 0 runs until quit or cancel

	// Script is fed to the loop one entry per frame, then zero input.
	Script []frame.Input

	Snapshot string // written after the last frame when set
	HUD      bool
	Logger   *slog.Logger
}

// hudPresenter draws the status overlay before passing the frame on.
type hudPresenter struct {
	o       *frame.Orchestrator
	overlay *hud.Overlay
	fps     func() float64
	next    frame.Presenter
}

func (p *hudPresenter) Present(fb *raster.Framebuffer) error {
	p.overlay.Draw(fb, hud.StatusLines(p.fps(), p.o.Camera(), p.o.Stats())...)
	if p.next == nil {
		return nil
	}
	return p.next.Present(fb)
}

func withHUD(on bool, o *frame.Orchestrator, fps func() float64, next frame.Presenter) frame.Presenter {
	if !on {
		return next
	}
	return &hudPresenter{o: o, overlay: hud.New(), fps: fps, next: next}
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
