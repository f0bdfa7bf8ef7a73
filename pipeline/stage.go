package pipeline

import (
	"softcube/math3d"
	"softcube/raster"
)

// Triangle is one projected, shaded triangle.
//
// Behind is set when any vertex has clip w <= 0. Such triangles are dropped
// whole; there is no near-plane clipping.
type Triangle struct {
	V      [3]raster.Vertex
	Behind bool
}

// Stats counts the work done by one Draw call.
type Stats struct {
	Faces     int
	Triangles int
	Culled    int
	Pixels    int
}

func (s *Stats) Add(o Stats) {
	s.Faces += o.Faces
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Pixels += o.Pixels
}

// Stage shades and projects mesh faces. Light is the unit direction towards
// the light in world space.
type Stage struct {
	Light math3d.Vec3
	Shade Shader
}

// DefaultLight is normalize(1, 2, 3).
func DefaultLight() math3d.Vec3 { return math3d.Normalize(math3d.V3(1, 2, 3)) }

func NewStage() Stage {
	return Stage{Light: DefaultLight(), Shade: Lambert(DefaultAmbient)}
}

// FaceNormal returns the world-space unit normal of f: the first three
// vertices are transformed by model and the normal is
// normalize((v2-v0) × (v1-v0)).
func FaceNormal(model math3d.Mat4, m Mesh, f Face) math3d.Vec3 {
	v0 := math3d.Mat4MulPoint(model, m.Vertices[f.Idx[0]])
	v1 := math3d.Mat4MulPoint(model, m.Vertices[f.Idx[1]])
	v2 := math3d.Mat4MulPoint(model, m.Vertices[f.Idx[2]])
	return math3d.Normalize(math3d.Cross(v2.Sub(v0), v1.Sub(v0)))
}

// Project transforms p by mvp with w = 1, divides by w and returns the
// rasterizer vertex with Depth = z/w. The color is left zero.
func Project(mvp math3d.Mat4, p math3d.Vec3) raster.Vertex {
	v, _ := project(mvp, p)
	return v
}

func project(mvp math3d.Mat4, p math3d.Vec3) (raster.Vertex, bool) {
	c := math3d.Mat4MulV4(mvp, math3d.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	inv := 1 / c.W
	ndc := math3d.V3(c.X*inv, c.Y*inv, c.Z*inv)
	return raster.Vertex{Pos: ndc, Depth: ndc.Z}, c.W > 0
}

// Face shades face i of m and returns its two fan triangles.
func (s Stage) Face(model, mvp math3d.Mat4, m Mesh, i int) [2]Triangle {
	f := m.Faces[i]
	shade := s.Shade
	if shade == nil {
		shade = Unlit
	}
	c := shade(FaceNormal(model, m, f), s.Light, f.Color)

	var q [4]raster.Vertex
	behind := false
	for k, idx := range f.Idx {
		v, ok := project(mvp, m.Vertices[idx])
		v.Color = c
		q[k] = v
		if !ok {
			behind = true
		}
	}
	return [2]Triangle{
		{V: [3]raster.Vertex{q[0], q[1], q[2]}, Behind: behind},
		{V: [3]raster.Vertex{q[0], q[2], q[3]}, Behind: behind},
	}
}

// Draw rasterizes every face of m into fb.
func (s Stage) Draw(fb *raster.Framebuffer, model, mvp math3d.Mat4, m Mesh) Stats {
	var st Stats
	for i := range m.Faces {
		st.Faces++
		for _, t := range s.Face(model, mvp, m, i) {
			st.Triangles++
			if t.Behind || !(raster.ScreenArea(t.V[0], t.V[1], t.V[2], fb.W, fb.H) > 0) {
				st.Culled++
				continue
			}
			st.Pixels += raster.DrawTriangle(fb, t.V[0], t.V[1], t.V[2])
		}
	}
	return st
}
