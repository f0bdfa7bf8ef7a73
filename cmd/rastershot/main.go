// Command rastershot renders a single frame of the spinning cube to an image
// file without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"softcube/frame"
	"softcube/hal"
	"softcube/hud"
	"softcube/internal/config"
	"softcube/math3d"
)

type shot struct {
	out        string
	pos        string
	yaw, pitch float64
	at         time.Duration
}

func main() {
	var s shot
	cfg, err := config.ParseWith("rastershot", os.Args[1:], os.Stderr, func(fs *flag.FlagSet) {
		fs.StringVar(&s.out, "out", "", "Output image (.png or .bmp).")
		fs.StringVar(&s.pos, "pos", "0,0,5", "Camera position as x,y,z.")
		fs.Float64Var(&s.yaw, "yaw", 0, "Camera yaw in degrees.")
		fs.Float64Var(&s.pitch, "pitch", 0, "Camera pitch in degrees.")
		fs.DurationVar(&s.at, "at", 0, "Elapsed time; the cube has spun for this long.")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatalf("%v", err)
	}
	if s.out == "" {
		fatalf("usage: rastershot -out frame.png [-pos x,y,z] [-yaw deg] [-pitch deg] [-at 1.5s] [-hud] [-config softcube.toml]")
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := render(cfg, s, log); err != nil {
		fatalf("rastershot: %v", err)
	}
}

func render(cfg config.Config, s shot, log *slog.Logger) error {
	p, err := config.ParseVec3(s.pos)
	if err != nil {
		return err
	}
	o := frame.New(cfg.Options(log))
	limit := o.Options().PitchLimit
	o.SetCamera(frame.Camera{
		Position: math3d.V3(float32(p[0]), float32(p[1]), float32(p[2])),
		Yaw:      math3d.DegToRad(float32(s.yaw)),
		Pitch:    math3d.Clamp(math3d.DegToRad(float32(s.pitch)), -limit, limit),
	})
	st := o.Step(frame.Input{}, s.at)

	fb := o.Framebuffer()
	if cfg.HUD {
		hud.New().Draw(fb, hud.StatusLines(0, o.Camera(), o.Stats())...)
	}
	if err := hal.WriteSnapshot(s.out, fb); err != nil {
		return err
	}
	log.Info("frame written", "path", s.out, "triangles", st.Triangles-st.Culled, "pixels", st.Pixels)
	return nil
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
