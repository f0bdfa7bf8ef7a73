// Package pipeline turns a mesh and its transforms into shaded triangles for
// the rasterizer.
//
// Per face it computes one world-space normal, shades the face color once,
// projects each vertex to normalized device coordinates and emits the quad as
// two triangles (0,1,2) and (0,2,3).
package pipeline
