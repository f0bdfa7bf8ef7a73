package raster

import (
	"testing"

	"softcube/math3d"
)

func flat(x, y float32, depth float32, c uint32) Vertex {
	return Vertex{Pos: math3d.V3(x, y, 0), Depth: depth, Color: c}
}

func TestEdgeAndBarycentric(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	c := Point{0, 10}
	if got := Edge(a, b, c); got != 100 {
		t.Fatalf("area: got %v want 100", got)
	}
	w0, w1, w2, ok := Barycentric(a, b, c, Point{2, 2})
	if !ok {
		t.Fatalf("point should be inside")
	}
	if w0 < 0 || w1 < 0 || w2 < 0 {
		t.Fatalf("negative weight inside: %v %v %v", w0, w1, w2)
	}
	if s := w0 + w1 + w2; s < 0.99999 || s > 1.00001 {
		t.Fatalf("weights sum to %v", s)
	}
	if _, _, _, ok := Barycentric(a, b, c, Point{20, 20}); ok {
		t.Fatalf("point outside reported inside")
	}
	if _, _, _, ok := Barycentric(a, c, b, Point{2, 2}); ok {
		t.Fatalf("negative-area triangle reported inside")
	}
}

func TestToScreenFlipsY(t *testing.T) {
	p := ToScreen(math3d.V3(-1, 1, 0), 100, 50)
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("top-left: got %+v", p)
	}
	p = ToScreen(math3d.V3(1, -1, 0), 100, 50)
	if p.X != 100 || p.Y != 50 {
		t.Fatalf("bottom-right: got %+v", p)
	}
}

func TestBackFacingDrawsNothing(t *testing.T) {
	fb := NewFramebuffer(100, 100)
	fb.Clear(0xFF000000)
	c := uint32(0xFFFF0000)

	n := DrawTriangle(fb, flat(-.5, -.5, .5, c), flat(.5, -.5, .5, c), flat(.5, .5, .5, c))
	if n != 0 {
		t.Fatalf("back-facing wrote %d pixels", n)
	}
	for i, px := range fb.Color {
		if px != 0xFF000000 {
			t.Fatalf("pixel %d modified: %08x", i, px)
		}
	}

	n = DrawTriangle(fb, flat(-.5, -.5, .5, c), flat(.5, .5, .5, c), flat(.5, -.5, .5, c))
	if n == 0 || n > 2500 {
		t.Fatalf("front-facing wrote %d pixels", n)
	}
}

func TestDegenerateDrawsNothing(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.Clear(0)
	c := uint32(0xFFFFFFFF)
	if n := DrawTriangle(fb, flat(0, 0, 0, c), flat(.5, .5, 0, c), flat(1, 1, 0, c)); n != 0 {
		t.Fatalf("collinear wrote %d pixels", n)
	}
}

// fullScreen covers every pixel center of the viewport.
func fullScreen(depth float32, c uint32) (Vertex, Vertex, Vertex) {
	return flat(-1, -1, depth, c), flat(-1, 3, depth, c), flat(3, -1, depth, c)
}

func TestOversizedTriangleClipsToViewport(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.Clear(0)
	v0, v1, v2 := fullScreen(.5, 0xFF112233)
	if n := DrawTriangle(fb, v0, v1, v2); n != 48 {
		t.Fatalf("got %d pixels want 48", n)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := fb.At(x, y); got != 0xFF112233 {
				t.Fatalf("(%d,%d) = %08x", x, y, got)
			}
			if got := fb.DepthAt(x, y); got != .5 {
				t.Fatalf("(%d,%d) depth = %v", x, y, got)
			}
		}
	}
}

func TestDepthIsStrict(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.Clear(0)
	v0, v1, v2 := fullScreen(.5, 0xFFAA0000)
	DrawTriangle(fb, v0, v1, v2)
	if n := DrawTriangle(fb, v0, v1, v2); n != 0 {
		t.Fatalf("equal depth overwrote %d pixels", n)
	}

	v0, v1, v2 = fullScreen(.7, 0xFF00AA00)
	if n := DrawTriangle(fb, v0, v1, v2); n != 0 {
		t.Fatalf("farther triangle wrote %d pixels", n)
	}

	v0, v1, v2 = fullScreen(.2, 0xFF0000AA)
	if n := DrawTriangle(fb, v0, v1, v2); n != 48 {
		t.Fatalf("nearer triangle wrote %d pixels", n)
	}
	if got := fb.At(3, 3); got != 0xFF0000AA {
		t.Fatalf("nearer color not stored: %08x", got)
	}
}

func TestColorInterpolation(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	fb.Clear(0)
	v0 := flat(-1, -1, 0, RGB(0, 0, 0))
	v1 := flat(-1, 3, 0, RGB(0, 0, 0))
	v2 := flat(3, -1, 0, RGB(200, 0, 0))
	DrawTriangle(fb, v0, v1, v2)

	// Red grows left to right and stays within the vertex range.
	_, left, _, _ := Unpack(fb.At(0, 32))
	_, right, _, _ := Unpack(fb.At(63, 32))
	if left >= right {
		t.Fatalf("red not increasing: left=%d right=%d", left, right)
	}
	if right > 200 {
		t.Fatalf("red overshoot: %d", right)
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Set(1, 1, 0, 0xFFFFFFFF)
	fb.Clear(0xFF1A1A2E)
	for i := range fb.Color {
		if fb.Color[i] != 0xFF1A1A2E {
			t.Fatalf("color %d = %08x", i, fb.Color[i])
		}
		if fb.Depth[i] != FarDepth {
			t.Fatalf("depth %d = %v", i, fb.Depth[i])
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(0)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if fb.Set(p[0], p[1], 0, 0xFFFFFFFF) {
			t.Fatalf("out-of-bounds write at %v accepted", p)
		}
	}
	for i, c := range fb.Color {
		if c != 0 {
			t.Fatalf("pixel %d modified", i)
		}
	}
}

func TestEmptyFramebuffer(t *testing.T) {
	fb := NewFramebuffer(0, 0)
	v0, v1, v2 := fullScreen(0, 0xFFFFFFFF)
	if n := DrawTriangle(fb, v0, v1, v2); n != 0 {
		t.Fatalf("empty framebuffer wrote %d pixels", n)
	}
}

func TestSnapshot(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Color[0] = ARGB(0xFF, 0x11, 0x22, 0x33)
	fb.Color[1] = ARGB(0x80, 0x44, 0x55, 0x66)
	img := fb.Snapshot(nil)
	want := []uint8{0x11, 0x22, 0x33, 0xFF, 0x44, 0x55, 0x66, 0x80}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Fatalf("pix[%d] = %02x want %02x", i, img.Pix[i], b)
		}
	}
	if again := fb.Snapshot(img); again != img {
		t.Fatalf("snapshot did not reuse destination")
	}
}
