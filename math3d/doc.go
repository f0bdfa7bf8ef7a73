// Package math3d is the vector and matrix layer of the software renderer.
//
// All values are float32 and all operations are pure value computations.
//
// Matrices are column-major, matching the conventional OpenGL layout:
//
//	m[col*4+row]
//
// Transforms compose right to left, so Projection × View × Model maps a
// model-space point into clip space.
package math3d
