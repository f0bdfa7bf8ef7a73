// Package raster fills triangles into a color and depth buffer.
//
// Input vertices are already in normalized device coordinates. Each triangle
// is mapped to pixels, culled by the sign of its screen-space area, covered
// with edge functions, and written through a strict less-than depth test.
//
// Interpolation is linear in screen space and is not perspective-correct.
// No top-left fill rule is applied, so a pixel center lying exactly on an edge
// shared by two triangles may be shaded by both or by neither.
package raster
