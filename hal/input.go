//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"softcube/frame"
)

var movementKeys = [...]struct {
	key  ebiten.Key
	held frame.Keys
}{
	{ebiten.KeyW, frame.KeyForward},
	{ebiten.KeyS, frame.KeyBack},
	{ebiten.KeyA, frame.KeyLeft},
	{ebiten.KeyD, frame.KeyRight},
	{ebiten.KeyQ, frame.KeyDown},
	{ebiten.KeyE, frame.KeyUp},
}

// ebitenInput polls ebiten once per Update. With a captured cursor the
// reported position keeps moving past the window edge, so deltas between
// polls are relative mouse motion.
type ebitenInput struct {
	x, y   int
	primed bool
}

func (in *ebitenInput) Poll() frame.Input {
	var r frame.Input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		r.Quit = true
	}

	x, y := ebiten.CursorPosition()
	if in.primed {
		r.DX = float32(x - in.x)
		r.DY = float32(y - in.y)
	}
	in.x, in.y, in.primed = x, y, true

	for _, k := range movementKeys {
		if ebiten.IsKeyPressed(k.key) {
			r.Held |= k.held
		}
	}
	return r
}
