package raster

import (
	"github.com/chewxy/math32"

	"softcube/math3d"
)

// Vertex is a rasterizer input: NDC position, the depth used for the depth
// test, and a packed ARGB color.
type Vertex struct {
	Pos   math3d.Vec3
	Depth float32
	Color uint32
}

// Point is a 2D screen-space position in pixels.
type Point struct {
	X, Y float32
}

// Edge is the 2D edge function: positive when p lies to the left of a→b in a
// y-up frame. Edge(a, b, c) is twice the signed area of triangle abc.
func Edge(a, b, p Point) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Barycentric returns the weights of p with respect to triangle abc, each edge
// value divided by the signed area. ok is false for triangles with area <= 0
// and for points outside the triangle.
func Barycentric(a, b, c, p Point) (w0, w1, w2 float32, ok bool) {
	area := Edge(a, b, c)
	if !(area > 0) {
		return 0, 0, 0, false
	}
	w0 = Edge(b, c, p)
	w1 = Edge(c, a, p)
	w2 = Edge(a, b, p)
	ok = w0 >= 0 && w1 >= 0 && w2 >= 0
	return w0 / area, w1 / area, w2 / area, ok
}

// ToScreen maps an NDC position to pixel coordinates. NDC y grows upward,
// screen rows grow downward.
func ToScreen(ndc math3d.Vec3, w, h int) Point {
	return Point{
		X: (ndc.X*0.5 + 0.5) * float32(w),
		Y: (-ndc.Y*0.5 + 0.5) * float32(h),
	}
}

// DrawTriangle rasterizes one triangle into fb and returns the number of
// pixels that passed the depth test.
//
// Triangles with non-positive screen-space area are back-facing or
// degenerate and produce nothing.
func DrawTriangle(fb *Framebuffer, v0, v1, v2 Vertex) int {
	if fb == nil || fb.W <= 0 || fb.H <= 0 {
		return 0
	}
	s0 := ToScreen(v0.Pos, fb.W, fb.H)
	s1 := ToScreen(v1.Pos, fb.W, fb.H)
	s2 := ToScreen(v2.Pos, fb.W, fb.H)

	area := Edge(s0, s1, s2)
	if !(area > 0) {
		return 0
	}
	invArea := 1 / area

	minX := clampPixel(min3(s0.X, s1.X, s2.X), fb.W)
	maxX := clampPixel(max3(s0.X, s1.X, s2.X), fb.W)
	minY := clampPixel(min3(s0.Y, s1.Y, s2.Y), fb.H)
	maxY := clampPixel(max3(s0.Y, s1.Y, s2.Y), fb.H)

	_, r0, g0, b0 := Unpack(v0.Color)
	_, r1, g1, b1 := Unpack(v1.Color)
	_, r2, g2, b2 := Unpack(v2.Color)

	written := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0 := Edge(s1, s2, p)
			w1 := Edge(s2, s0, p)
			w2 := Edge(s0, s1, p)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			depth := w0*v0.Depth + w1*v1.Depth + w2*v2.Depth
			c := RGB(
				lerpChannel(w0, w1, w2, r0, r1, r2),
				lerpChannel(w0, w1, w2, g0, g1, g2),
				lerpChannel(w0, w1, w2, b0, b1, b2),
			)
			if fb.Set(x, y, depth, c) {
				written++
			}
		}
	}
	return written
}

func lerpChannel(w0, w1, w2 float32, c0, c1, c2 uint8) uint8 {
	v := w0*float32(c0) + w1*float32(c1) + w2*float32(c2)
	return uint8(math3d.Clamp(v+0.5, 0, 255))
}

// clampPixel floors v and clamps it to [0, n-1].
func clampPixel(v float32, n int) int {
	v = math3d.Clamp(math32.Floor(v), 0, float32(n-1))
	return int(v)
}

func min3(a, b, c float32) float32 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

// ScreenArea returns twice the signed pixel-space area of a triangle on a
// w×h target. Front faces are positive.
func ScreenArea(v0, v1, v2 Vertex, w, h int) float32 {
	return Edge(ToScreen(v0.Pos, w, h), ToScreen(v1.Pos, w, h), ToScreen(v2.Pos, w, h))
}
