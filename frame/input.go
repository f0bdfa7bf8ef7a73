package frame

import (
	"time"

	"softcube/raster"
)

// Keys is the set of held movement keys.
type Keys uint8

const (
	KeyForward Keys = 1 << iota // W
	KeyBack                     // S
	KeyLeft                     // A
	KeyRight                    // D
	KeyDown                     // Q
	KeyUp                       // E
)

func (k Keys) Has(o Keys) bool { return k&o != 0 }

func (k Keys) String() string {
	const names = "WSADQE"
	b := make([]byte, 0, len(names))
	for i := 0; i < len(names); i++ {
		if k&(1<<i) != 0 {
			b = append(b, names[i])
		}
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// Input is everything the cycle reads from the user in one frame.
// DX and DY are relative pointer motion in pixels since the last poll.
type Input struct {
	Quit   bool
	DX, DY float32
	Held   Keys
}

// Events yields the input accumulated since the previous poll.
type Events interface {
	Poll() Input
}

// Clock returns the time elapsed since the previous tick.
type Clock interface {
	Tick() time.Duration
}

// Presenter receives each finished frame. The framebuffer is only valid for
// the duration of the call.
type Presenter interface {
	Present(fb *raster.Framebuffer) error
}

// EventsFunc adapts a function to Events.
type EventsFunc func() Input

func (f EventsFunc) Poll() Input { return f() }

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(fb *raster.Framebuffer) error

func (f PresenterFunc) Present(fb *raster.Framebuffer) error { return f(fb) }

// FixedClock reports the same step on every tick.
type FixedClock time.Duration

func (c FixedClock) Tick() time.Duration { return time.Duration(c) }
