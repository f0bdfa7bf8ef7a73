// Package hud draws status text over a rendered frame.
package hud

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"softcube/frame"
	"softcube/raster"
)

// Overlay draws lines of text in the top-left corner of a framebuffer.
type Overlay struct {
	Font       tinyfont.Fonter
	Color      color.RGBA
	Backdrop   uint32 // ARGB fill behind the text, 0 for none
	Margin     int16
	LineHeight int16
}

func New() *Overlay {
	return &Overlay{
		Font:       &tinyfont.TomThumb,
		Color:      color.RGBA{R: 0xEC, G: 0xF0, B: 0xF1, A: 0xFF},
		Backdrop:   0xFF000000,
		Margin:     2,
		LineHeight: 7,
	}
}

// Draw writes lines onto fb, one per row, ignoring the depth buffer.
func (o *Overlay) Draw(fb *raster.Framebuffer, lines ...string) {
	if o == nil || fb == nil || len(lines) == 0 {
		return
	}
	d := &displayer{fb: fb}

	if o.Backdrop != 0 {
		var w uint32
		for _, s := range lines {
			if _, ow := tinyfont.LineWidth(o.Font, s); ow > w {
				w = ow
			}
		}
		h := int(o.LineHeight)*len(lines) + 2*int(o.Margin)
		fill(fb, 0, 0, int(w)+2*int(o.Margin), h, o.Backdrop)
	}

	y := o.Margin
	for _, s := range lines {
		y += o.LineHeight
		tinyfont.WriteLine(d, o.Font, o.Margin, y-1, s, o.Color)
	}
}

// StatusLines formats the frame rate, camera and last frame's counters.
func StatusLines(fps float64, cam frame.Camera, st frame.Stats) []string {
	p := cam.Position
	return []string{
		fmt.Sprintf("FPS %.1f  FRAME %d", fps, st.Frame),
		fmt.Sprintf("POS %.2f %.2f %.2f", p.X, p.Y, p.Z),
		fmt.Sprintf("YAW %.2f PITCH %.2f", cam.Yaw, cam.Pitch),
		fmt.Sprintf("TRI %d CULL %d PX %d", st.Triangles-st.Culled, st.Culled, st.Pixels),
	}
}

func fill(fb *raster.Framebuffer, x0, y0, w, h int, c uint32) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			fb.SetColor(x, y, c)
		}
	}
}

// displayer lets tinyfont draw straight into a framebuffer.
type displayer struct {
	fb *raster.Framebuffer
}

var _ drivers.Displayer = (*displayer)(nil)

func (d *displayer) Size() (x, y int16) {
	return int16(d.fb.W), int16(d.fb.H)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetColor(int(x), int(y), raster.RGB(c.R, c.G, c.B))
}

func (d *displayer) Display() error { return nil }
