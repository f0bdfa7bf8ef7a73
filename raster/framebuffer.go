package raster

import (
	"image"

	"github.com/chewxy/math32"
)

// FarDepth is the depth every pixel holds right after Clear.
const FarDepth float32 = math32.MaxFloat32

// Framebuffer is a row-major color buffer with a matching depth buffer.
//
// After Clear, Depth[i] is the smallest depth written to pixel i and Color[i]
// the color written with it.
type Framebuffer struct {
	W, H  int
	Color []uint32
	Depth []float32
}

func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{
		W:     w,
		H:     h,
		Color: make([]uint32, w*h),
		Depth: make([]float32, w*h),
	}
}

func (fb *Framebuffer) Size() (w, h int) { return fb.W, fb.H }

func (fb *Framebuffer) Clear(bg uint32) {
	for i := range fb.Color {
		fb.Color[i] = bg
	}
	for i := range fb.Depth {
		fb.Depth[i] = FarDepth
	}
}

// Set writes c at (x, y) if depth is strictly less than the stored depth.
// Out-of-bounds writes are dropped.
func (fb *Framebuffer) Set(x, y int, depth float32, c uint32) bool {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return false
	}
	idx := y*fb.W + x
	if !(depth < fb.Depth[idx]) {
		return false
	}
	fb.Depth[idx] = depth
	fb.Color[idx] = c
	return true
}

// SetColor writes c at (x, y) without touching the depth buffer. Overlays
// drawn after rasterization use it.
func (fb *Framebuffer) SetColor(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	fb.Color[y*fb.W+x] = c
}

func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return 0
	}
	return fb.Color[y*fb.W+x]
}

func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return FarDepth
	}
	return fb.Depth[y*fb.W+x]
}

// Snapshot converts the color buffer to RGBA. dst is reused when it has the
// right bounds, otherwise a new image is allocated.
func (fb *Framebuffer) Snapshot(dst *image.RGBA) *image.RGBA {
	r := image.Rect(0, 0, fb.W, fb.H)
	if dst == nil || dst.Bounds() != r {
		dst = image.NewRGBA(r)
	}
	for y := 0; y < fb.H; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < fb.W; x++ {
			a, rr, g, b := Unpack(fb.Color[y*fb.W+x])
			j := x * 4
			row[j+0] = rr
			row[j+1] = g
			row[j+2] = b
			row[j+3] = a
		}
	}
	return dst
}
