package render

import (
	"image/color"
	"math"

	"kirkle/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Canvas draws shapes and text straight into an RGB565 framebuffer.
// It also satisfies drivers.Displayer so tinyfont can render onto it.
type Canvas struct {
	fb hal.Framebuffer

	font       tinyfont.Fonter
	lineHeight int
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas wraps fb; text uses the proggy TinySZ 8pt font.
func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{
		fb:         fb,
		font:       &proggy.TinySZ8pt7b,
		lineHeight: 12,
	}
}

func (c *Canvas) ok() bool {
	return c.fb != nil && c.fb.Format() == hal.PixelFormatRGB565 && c.fb.Buffer() != nil
}

// Width is the framebuffer width, 0 without one.
func (c *Canvas) Width() int {
	if c.fb == nil {
		return 0
	}
	return c.fb.Width()
}

// Height is the framebuffer height, 0 without one.
func (c *Canvas) Height() int {
	if c.fb == nil {
		return 0
	}
	return c.fb.Height()
}

// Clear fills the whole framebuffer with col.
func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

// FillCircle fills one horizontal span per row of the disc.
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if !c.ok() || r < 0 {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	for dy := -r; dy <= r; dy++ {
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		c.hline(cx-dx, cx+dx, cy+dy, pixel)
	}
}

// StrokeCircle plots segments points around the circumference.
func (c *Canvas) StrokeCircle(cx, cy, r, segments int, col color.RGBA) {
	if !c.ok() || r < 0 {
		return
	}
	if segments <= 0 {
		segments = 360
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	for i := 0; i < segments; i++ {
		theta := float64(i) * (2 * math.Pi / float64(segments))
		x := cx + int(float64(r)*math.Cos(theta))
		y := cy + int(float64(r)*math.Sin(theta))
		c.put(x, y, pixel)
	}
}

// FillRect fills the w x h rectangle at (x, y), clipped to the framebuffer.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if !c.ok() || w <= 0 || h <= 0 {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	for py := y; py < y+h; py++ {
		c.hline(x, x+w-1, py, pixel)
	}
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	if !c.ok() {
		return
	}
	tinyfont.WriteLine(c, c.font, int16(x), int16(y+c.lineHeight-3), s, col)
}

// LineHeight is the vertical advance between Text lines.
func (c *Canvas) LineHeight() int { return c.lineHeight }

// hline fills [x0, x1] on row y, clipped to the framebuffer.
func (c *Canvas) hline(x0, x1, y int, pixel uint16) {
	w, h := c.fb.Width(), c.fb.Height()
	if y < 0 || y >= h {
		return
	}
	x0 = clampInt(x0, 0, w-1)
	x1 = clampInt(x1, 0, w-1)
	if x0 > x1 {
		return
	}

	buf := c.fb.Buffer()
	lo, hi := byte(pixel), byte(pixel>>8)
	row := y * c.fb.StrideBytes()
	for px := x0; px <= x1; px++ {
		off := row + px*2
		if off < 0 || off+1 >= len(buf) {
			continue
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

func (c *Canvas) put(x, y int, pixel uint16) {
	if x < 0 || y < 0 || x >= c.fb.Width() || y >= c.fb.Height() {
		return
	}
	buf := c.fb.Buffer()
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// at reads back the colour at (x, y), expanded to 8 bits per channel.
func (c *Canvas) at(x, y int) (color.RGBA, bool) {
	if !c.ok() || x < 0 || y < 0 || x >= c.fb.Width() || y >= c.fb.Height() {
		return color.RGBA{}, false
	}
	buf := c.fb.Buffer()
	off := y*c.fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return color.RGBA{}, false
	}
	r, g, b := hal.RGB888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}

// Size, SetPixel, Display and SetRotation make Canvas a drivers.Displayer
// for tinyfont.
func (c *Canvas) Size() (x, y int16) {
	if c.fb == nil {
		return 0, 0
	}
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if !c.ok() {
		return
	}
	c.put(int(x), int(y), hal.RGB565(col.R, col.G, col.B))
}

// Display presents the framebuffer.
func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
