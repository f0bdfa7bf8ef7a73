package frame

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"softcube/math3d"
	"softcube/pipeline"
	"softcube/raster"
)

// Stats describes the most recent frame.
type Stats struct {
	Frame uint64
	DT    time.Duration
	pipeline.Stats
}

// Orchestrator owns the camera, the model angle and the framebuffer.
// It is not safe for concurrent use.
type Orchestrator struct {
	opts  Options
	log   *slog.Logger
	fb    *raster.Framebuffer
	mesh  pipeline.Mesh
	stage pipeline.Stage
	proj  math3d.Mat4

	cam   Camera
	angle float32
	stats Stats
}

func New(opts Options) *Orchestrator {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	shade := opts.Shader
	if shade == nil {
		shade = pipeline.Lambert(opts.Ambient)
	}
	light := math3d.Normalize(opts.Light)
	if light == (math3d.Vec3{}) {
		light = pipeline.DefaultLight()
	}
	o := &Orchestrator{
		opts:  opts,
		log:   log,
		fb:    raster.NewFramebuffer(opts.Width, opts.Height),
		mesh:  pipeline.Cube(),
		stage: pipeline.Stage{Light: light, Shade: shade},
		cam:   Camera{Position: opts.Start},
	}
	aspect := float32(1)
	if opts.Height > 0 {
		aspect = float32(opts.Width) / float32(opts.Height)
	}
	o.proj = math3d.Mat4Perspective(opts.FovY, aspect, opts.Near, opts.Far)
	o.fb.Clear(opts.Background)
	return o
}

func (o *Orchestrator) Framebuffer() *raster.Framebuffer { return o.fb }
func (o *Orchestrator) Camera() Camera                   { return o.cam }
func (o *Orchestrator) SetCamera(c Camera)               { o.cam = c }
func (o *Orchestrator) Angle() float32                   { return o.angle }
func (o *Orchestrator) Stats() Stats                     { return o.stats }
func (o *Orchestrator) Options() Options                 { return o.opts }

// Model returns the model matrix for the current angle.
func (o *Orchestrator) Model() math3d.Mat4 {
	return math3d.Mat4Mul(math3d.Mat4RotateY(o.angle), math3d.Mat4RotateX(o.angle*o.opts.TiltRatio))
}

// Step advances the state by dt using in and renders one frame into the
// framebuffer. in.Quit is ignored.
func (o *Orchestrator) Step(in Input, dt time.Duration) pipeline.Stats {
	sec := float32(dt.Seconds())

	if in.DX != 0 || in.DY != 0 {
		o.cam.Look(in.DX, in.DY, o.opts.MouseSensitivity, o.opts.PitchLimit)
	}
	o.cam.Move(in.Held, o.opts.MoveSpeed*sec)
	o.angle += sec * o.opts.SpinRate

	model := o.Model()
	mvp := math3d.Mat4Mul(o.proj, math3d.Mat4Mul(o.cam.View(), model))

	o.fb.Clear(o.opts.Background)
	st := o.stage.Draw(o.fb, model, mvp, o.mesh)

	o.stats.Frame++
	o.stats.DT = dt
	o.stats.Stats = st
	o.log.Debug("frame",
		"n", o.stats.Frame,
		"dt", dt,
		"triangles", st.Triangles,
		"culled", st.Culled,
		"pixels", st.Pixels)
	return st
}

// Cycle runs one frame: tick the clock, poll input, render and present.
// It reports quit without rendering when the input asks for it.
func (o *Orchestrator) Cycle(ev Events, clk Clock, out Presenter) (quit bool, err error) {
	dt := clk.Tick()
	in := ev.Poll()
	if in.Quit {
		return true, nil
	}
	o.Step(in, dt)
	if out == nil {
		return false, nil
	}
	if err := out.Present(o.fb); err != nil {
		return false, fmt.Errorf("present frame %d: %w", o.stats.Frame, err)
	}
	return false, nil
}

// Run repeats Cycle until quit, a present error or ctx is done. ctx is only
// checked between cycles.
func Run(ctx context.Context, o *Orchestrator, ev Events, clk Clock, out Presenter) error {
	o.log.Info("render loop start", "width", o.fb.W, "height", o.fb.H)
	for {
		if err := ctx.Err(); err != nil {
			o.log.Info("render loop canceled", "frames", o.stats.Frame)
			return err
		}
		quit, err := o.Cycle(ev, clk, out)
		if err != nil {
			return err
		}
		if quit {
			o.log.Info("render loop quit", "frames", o.stats.Frame)
			return nil
		}
	}
}
