package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"softcube/math3d"
	"softcube/raster"
)

const background uint32 = 0xFF1A1A2E

func TestCubeNormalsPointOutward(t *testing.T) {
	m := Cube()
	want := []math3d.Vec3{
		{Z: -1}, {Z: 1}, {X: -1}, {X: 1}, {Y: -1}, {Y: 1},
	}
	require.Len(t, m.Faces, len(want))
	for i, f := range m.Faces {
		n := FaceNormal(math3d.Mat4Identity(), m, f)
		assert.InDelta(t, want[i].X, n.X, 1e-6, "face %d", i)
		assert.InDelta(t, want[i].Y, n.Y, 1e-6, "face %d", i)
		assert.InDelta(t, want[i].Z, n.Z, 1e-6, "face %d", i)
	}
}

func TestFaceNormalFollowsModel(t *testing.T) {
	m := Cube()
	model := math3d.Mat4Mul(math3d.Mat4Translate(math3d.V3(4, -2, 7)), math3d.Mat4RotateY(math3d.DegToRad(90)))
	// +Z rotated a quarter turn about Y points along +X.
	n := FaceNormal(model, m, m.Faces[1])
	assert.InDelta(t, 1, n.X, 1e-5)
	assert.InDelta(t, 0, n.Y, 1e-5)
	assert.InDelta(t, 0, n.Z, 1e-5)
}

// Seen from outside along its own normal, every face is front-facing.
func TestCubeFacesFrontFacingFromOutside(t *testing.T) {
	m := Cube()
	proj := math3d.Mat4Perspective(1.0472, 1, 0.1, 100)
	s := Stage{Light: DefaultLight(), Shade: Unlit}
	for i, f := range m.Faces {
		n := FaceNormal(math3d.Mat4Identity(), m, f)
		up := math3d.V3(0, 1, 0)
		if n.Y != 0 {
			up = math3d.V3(0, 0, 1)
		}
		view := math3d.Mat4LookAt(n.Mul(5), math3d.Vec3{}, up)
		mvp := math3d.Mat4Mul(proj, view)
		for k, tri := range s.Face(math3d.Mat4Identity(), mvp, m, i) {
			require.False(t, tri.Behind)
			area := raster.ScreenArea(tri.V[0], tri.V[1], tri.V[2], 64, 64)
			assert.Greater(t, area, float32(0), "face %d triangle %d", i, k)
		}
	}
}

func TestLambert(t *testing.T) {
	shade := Lambert(DefaultAmbient)
	z := math3d.V3(0, 0, 1)

	assert.Equal(t, uint32(0xFF3498DB), shade(z, z, 0xFF3498DB), "full intensity keeps base")

	k := DefaultAmbient
	floor := raster.RGB(uint8(float32(0x34)*k), uint8(float32(0x98)*k), uint8(float32(0xDB)*k))
	assert.Equal(t, floor, shade(z.Mul(-1), z, 0xFF3498DB), "facing away uses the ambient floor")
	assert.Equal(t, floor, shade(math3d.V3(1, 0, 0), z, 0xFF3498DB), "grazing light uses the ambient floor")

	assert.Equal(t, uint32(0xFF000000), shade(z, z, 0x00000000), "alpha forced opaque")
}

func TestProjectDepth(t *testing.T) {
	view := math3d.Mat4LookAt(math3d.V3(0, 0, 5), math3d.Vec3{}, math3d.V3(0, 1, 0))
	proj := math3d.Mat4Perspective(1.0472, 1, 0.1, 100)
	mvp := math3d.Mat4Mul(proj, view)

	near := Project(mvp, math3d.V3(0, 0, 1))
	far := Project(mvp, math3d.V3(0, 0, -1))
	assert.InDelta(t, 0, near.Pos.X, 1e-6)
	assert.InDelta(t, 0, near.Pos.Y, 1e-6)
	assert.Equal(t, near.Pos.Z, near.Depth)
	assert.Less(t, near.Depth, far.Depth)
}

func TestBehindCameraDropped(t *testing.T) {
	m := Cube()
	view := math3d.Mat4LookAt(math3d.V3(0, 0, 0.5), math3d.V3(0, 0, 5), math3d.V3(0, 1, 0))
	proj := math3d.Mat4Perspective(1.0472, 1, 0.1, 100)
	fb := raster.NewFramebuffer(32, 32)
	fb.Clear(background)

	st := NewStage().Draw(fb, math3d.Mat4Identity(), math3d.Mat4Mul(proj, view), m)
	assert.Equal(t, 12, st.Triangles)
	assert.Equal(t, 12, st.Culled, "every face has a vertex behind the eye or faces away")
	assert.Zero(t, st.Pixels)
}

func cubeScene(t *testing.T, w, h int) (*raster.Framebuffer, Stats) {
	t.Helper()
	view := math3d.Mat4LookAt(math3d.V3(0, 0, 5), math3d.Vec3{}, math3d.V3(0, 1, 0))
	proj := math3d.Mat4Perspective(1.0472, float32(w)/float32(h), 0.1, 100)
	model := math3d.Mat4Identity()
	mvp := math3d.Mat4Mul(proj, math3d.Mat4Mul(view, model))

	fb := raster.NewFramebuffer(w, h)
	fb.Clear(background)
	return fb, NewStage().Draw(fb, model, mvp, Cube())
}

func TestCubeSceneEndToEnd(t *testing.T) {
	const w, h = 160, 90
	fb, st := cubeScene(t, w, h)

	assert.Equal(t, 6, st.Faces)
	assert.Equal(t, 12, st.Triangles)
	assert.Equal(t, 10, st.Culled, "only the +Z face is visible")
	assert.Positive(t, st.Pixels)

	want := Lambert(DefaultAmbient)(math3d.V3(0, 0, 1), DefaultLight(), 0xFF3498DB)
	assert.Equal(t, want, fb.At(w/2, h/2), "center pixel is the shaded +Z color")

	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.At(x, y) == background {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	require.GreaterOrEqual(t, maxX, 0, "nothing drawn")
	assert.Greater(t, minX, 0)
	assert.Greater(t, minY, 0)
	assert.Less(t, maxX, w-1)
	assert.Less(t, maxY, h-1)
	assert.InDelta(t, float64(w-1)/2, float64(minX+maxX)/2, 1)
	assert.InDelta(t, float64(h-1)/2, float64(minY+maxY)/2, 1)
}

func TestDrawIsDepthIdempotent(t *testing.T) {
	const w, h = 64, 48
	fb, _ := cubeScene(t, w, h)
	before := append([]uint32(nil), fb.Color...)

	view := math3d.Mat4LookAt(math3d.V3(0, 0, 5), math3d.Vec3{}, math3d.V3(0, 1, 0))
	proj := math3d.Mat4Perspective(1.0472, float32(w)/float32(h), 0.1, 100)
	st := NewStage().Draw(fb, math3d.Mat4Identity(), math3d.Mat4Mul(proj, view), Cube())

	assert.Zero(t, st.Pixels, "redrawing at equal depth writes nothing")
	assert.Equal(t, before, fb.Color)
}
