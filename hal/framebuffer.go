package hal

import (
	"image"
	"sync"

	"softcube/raster"
)

// Capture is a Presenter that keeps an RGBA copy of the last frame.
type Capture struct {
	mu     sync.Mutex
	img    *image.RGBA
	frames uint64
}

func (c *Capture) Present(fb *raster.Framebuffer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.img = fb.Snapshot(c.img)
	c.frames++
	return nil
}

// Frames returns how many frames have been presented.
func (c *Capture) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// CopyPix copies the last frame's RGBA bytes into dst and reports whether a
// frame was available.
func (c *Capture) CopyPix(dst []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil {
		return false
	}
	copy(dst, c.img.Pix)
	return true
}

// Image returns the last frame or nil. The image is reused by the next
// Present.
func (c *Capture) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.img
}
