package pipeline

import (
	"softcube/math3d"
	"softcube/raster"
)

// DefaultAmbient is the lowest intensity a face is shaded with.
const DefaultAmbient float32 = 0.15

// Shader maps a unit face normal, a unit light direction and a base ARGB
// color to the final face color.
type Shader func(normal, lightDir math3d.Vec3, base uint32) uint32

// Lambert returns a diffuse shader: intensity is max(ambient, n·l), each RGB
// channel is scaled and truncated, alpha is forced opaque.
func Lambert(ambient float32) Shader {
	return func(normal, lightDir math3d.Vec3, base uint32) uint32 {
		k := math3d.Clamp(math3d.Dot(normal, lightDir), ambient, 1)
		_, r, g, b := raster.Unpack(base)
		return raster.RGB(scale(r, k), scale(g, k), scale(b, k))
	}
}

func scale(ch uint8, k float32) uint8 {
	return uint8(float32(ch) * k)
}

// Unlit returns the base color unchanged.
func Unlit(_, _ math3d.Vec3, base uint32) uint32 { return base }
