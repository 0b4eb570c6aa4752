// Package render draws the playfield into a framebuffer in immediate mode:
// clear, filled circle, filled square, optional HUD text, present.
package render
