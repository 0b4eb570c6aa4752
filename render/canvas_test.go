package render

import (
	"image/color"
	"testing"

	"kirkle/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

// quantized returns c as it reads back from an RGB565 buffer.
func quantized(c color.RGBA) color.RGBA {
	r, g, b := hal.RGB888From565(hal.RGB565(c.R, c.G, c.B))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func pixel(t *testing.T, c *Canvas, x, y int) color.RGBA {
	t.Helper()
	p, ok := c.at(x, y)
	require.True(t, ok, "pixel (%d,%d) out of range", x, y)
	return p
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(newTestFB(11, 11))
	c.Clear(black)

	c.FillCircle(5, 5, 3, white)

	assert.Equal(t, white, pixel(t, c, 5, 5))
	assert.Equal(t, white, pixel(t, c, 5, 2), "top row")
	assert.Equal(t, white, pixel(t, c, 8, 5), "right edge")
	assert.Equal(t, black, pixel(t, c, 9, 5))
	assert.Equal(t, black, pixel(t, c, 2, 2), "corner outside the disc")
}

func TestFillCircleClipped(t *testing.T) {
	c := NewCanvas(newTestFB(10, 10))
	c.Clear(black)

	c.FillCircle(0, 0, 4, white)
	c.FillCircle(100, 100, 4, white)

	assert.Equal(t, white, pixel(t, c, 0, 0))
	assert.Equal(t, white, pixel(t, c, 3, 0))
	assert.Equal(t, black, pixel(t, c, 9, 9))
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(newTestFB(10, 10))
	c.Clear(black)

	c.FillRect(-2, 7, 5, 10, white)

	assert.Equal(t, white, pixel(t, c, 0, 7))
	assert.Equal(t, white, pixel(t, c, 2, 9))
	assert.Equal(t, black, pixel(t, c, 3, 9))
	assert.Equal(t, black, pixel(t, c, 0, 6))

	c.FillRect(1, 1, 0, 5, white)
	assert.Equal(t, black, pixel(t, c, 1, 1), "zero width draws nothing")
}

func TestStrokeCircle(t *testing.T) {
	c := NewCanvas(newTestFB(21, 21))
	c.Clear(black)

	c.StrokeCircle(10, 10, 8, 0, white)

	assert.Equal(t, white, pixel(t, c, 18, 10))
	assert.Equal(t, black, pixel(t, c, 10, 10), "outline only")
}

func TestText(t *testing.T) {
	fb := newTestFB(64, 16)
	c := NewCanvas(fb)
	c.Clear(black)

	c.Text(0, 0, "HI", white)

	lit := 0
	for y := 0; y < fb.h; y++ {
		for x := 0; x < fb.w; x++ {
			if pixel(t, c, x, y) == white {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
}

func TestCanvasNilFramebuffer(t *testing.T) {
	c := NewCanvas(nil)
	c.Clear(white)
	c.FillCircle(1, 1, 1, white)
	c.Text(0, 0, "x", white)
	x, y := c.Size()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.NoError(t, c.Display())
}
