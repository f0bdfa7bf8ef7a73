//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"softcube/frame"
	"softcube/internal/buildinfo"
)

// RunWindow opens a desktop window, captures the cursor and runs o until
// Escape is pressed or the window is closed. It blocks until then.
func RunWindow(o *frame.Orchestrator, cfg WindowConfig) error {
	log := loggerOr(cfg.Logger)
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "softcube (" + buildinfo.Short() + ")"
	}

	g := &game{
		o:       o,
		in:      &ebitenInput{},
		clk:     NewMonoClock(),
		capture: &Capture{},
	}
	g.out = withHUD(cfg.HUD, o, ebiten.ActualFPS, g.capture)

	fb := o.Framebuffer()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(fb.W*cfg.Scale, fb.H*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	log.Info("window open", "width", fb.W, "height", fb.H, "scale", cfg.Scale)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	log.Info("window closed", "frames", o.Stats().Frame)
	return err
}

type game struct {
	o       *frame.Orchestrator
	in      *ebitenInput
	clk     *MonoClock
	capture *Capture
	out     frame.Presenter

	img *ebiten.Image
	pix []byte
}

func (g *game) Update() error {
	quit, err := g.o.Cycle(g.in, g.clk, g.out)
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.o.Framebuffer()
	if g.img == nil {
		g.img = ebiten.NewImage(fb.W, fb.H)
		g.pix = make([]byte, fb.W*fb.H*4)
	}
	if !g.capture.CopyPix(g.pix) {
		return
	}
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.o.Framebuffer()
	return fb.W, fb.H
}
