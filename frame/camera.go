package frame

import (
	"github.com/chewxy/math32"

	"softcube/math3d"
)

// Camera is a free-fly camera. Yaw and Pitch are in radians; yaw 0 and
// pitch 0 look down -Z.
type Camera struct {
	Position math3d.Vec3
	Yaw      float32
	Pitch    float32
}

// Look turns the camera by pointer motion. Both angles decrease as the
// pointer moves right or down. Pitch is clamped to ±limit.
func (c *Camera) Look(dx, dy, sensitivity, limit float32) {
	c.Yaw -= dx * sensitivity
	c.Pitch -= dy * sensitivity
	c.Pitch = math3d.Clamp(c.Pitch, -limit, limit)
}

// Basis returns the unit forward, right and up vectors.
func (c Camera) Basis() (forward, right, up math3d.Vec3) {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	forward = math3d.V3(sy*cp, -sp, -cy*cp)
	right = math3d.V3(cy, 0, sy)
	up = math3d.V3(0, 1, 0)
	return forward, right, up
}

// Move translates the camera along its basis for every held key.
func (c *Camera) Move(held Keys, dist float32) {
	if held == 0 || dist == 0 {
		return
	}
	f, r, u := c.Basis()
	if held.Has(KeyForward) {
		c.Position.AddInPlace(f.Mul(dist))
	}
	if held.Has(KeyBack) {
		c.Position.AddInPlace(f.Mul(-dist))
	}
	if held.Has(KeyLeft) {
		c.Position.AddInPlace(r.Mul(-dist))
	}
	if held.Has(KeyRight) {
		c.Position.AddInPlace(r.Mul(dist))
	}
	if held.Has(KeyDown) {
		c.Position.AddInPlace(u.Mul(-dist))
	}
	if held.Has(KeyUp) {
		c.Position.AddInPlace(u.Mul(dist))
	}
}

// View returns the view matrix looking one unit ahead.
func (c Camera) View() math3d.Mat4 {
	f, _, u := c.Basis()
	return math3d.Mat4LookAt(c.Position, c.Position.Add(f), u)
}
