package render

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

// DrawPanic paints a white screen with the panic value and as much of the
// stack as fits.
func DrawPanic(c *Canvas, value any, stack []byte) {
	if c == nil || !c.ok() {
		return
	}
	c.Clear(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	lines := []string{
		"kirkle panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}
	lh := c.LineHeight()
	cols := c.Width() / 6
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > c.Height() {
				_ = c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(0, y, chunk, fg)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Display()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
