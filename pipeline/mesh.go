package pipeline

import "softcube/math3d"

// Face is a quad of vertex indices with one flat color.
type Face struct {
	Idx   [4]int
	Color uint32
}

// Mesh is a fixed set of vertices and quad faces.
type Mesh struct {
	Vertices []math3d.Vec3
	Faces    []Face
}

// Cube returns the test mesh: an axis-aligned cube with half-extent 1.
//
// Every quad is wound clockwise seen from outside so that the face normal
// points outward and front faces have positive screen area.
func Cube() Mesh {
	return Mesh{
		Vertices: []math3d.Vec3{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		Faces: []Face{
			{Idx: [4]int{0, 1, 2, 3}, Color: 0xFFE74C3C}, // -Z
			{Idx: [4]int{4, 7, 6, 5}, Color: 0xFF3498DB}, // +Z
			{Idx: [4]int{0, 3, 7, 4}, Color: 0xFF2ECC71}, // -X
			{Idx: [4]int{1, 5, 6, 2}, Color: 0xFFE67E22}, // +X
			{Idx: [4]int{0, 4, 5, 1}, Color: 0xFFECF0F1}, // -Y
			{Idx: [4]int{3, 2, 6, 7}, Color: 0xFF9B59B6}, // +Y
		},
	}
}
