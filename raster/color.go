package raster

// Colors are packed 32-bit ARGB: alpha in the most significant byte, then
// red, green and blue.

func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func RGB(r, g, b uint8) uint32 { return ARGB(0xFF, r, g, b) }

func Unpack(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}
