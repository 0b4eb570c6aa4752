package render

import (
	"fmt"
	"image/color"

	"kirkle/physics"
)

// Palette is the set of colours a Scene draws with.
type Palette struct {
	Background color.RGBA
	Circle     color.RGBA
	Square     color.RGBA
	Text       color.RGBA
	Accent     color.RGBA
}

// DefaultPalette is white on black with a red square.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
		Circle:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Square:     color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF},
		Text:       color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
		Accent:     color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF},
	}
}

// HUD is the overlay state for one frame.
type HUD struct {
	// Enabled shows the text lines.
	Enabled bool
	Paused  bool
	Build   string
	// Contact rings the circle while it touches the square, with or
	// without the text.
	Contact bool
}

// contactRingGap is the distance between the circle edge and its ring.
const contactRingGap = 4

// Scene draws a World with a fixed palette.
type Scene struct {
	Palette Palette
}

// Draw clears the canvas, draws both bodies and the HUD, then presents.
func (s *Scene) Draw(c *Canvas, w *physics.World, hud HUD) error {
	p := s.Palette
	c.Clear(p.Background)

	c.FillCircle(int(w.Circle.Pos.X), int(w.Circle.Pos.Y), int(w.Circle.Radius), p.Circle)

	sq := &w.Square
	half := int(sq.Half)
	c.FillRect(int(sq.Pos.X-sq.Half), int(sq.Pos.Y-sq.Half), half*2, half*2, p.Square)

	if hud.Contact {
		c.StrokeCircle(int(w.Circle.Pos.X), int(w.Circle.Pos.Y), int(w.Circle.Radius)+contactRingGap, 360, p.Accent)
	}
	if hud.Enabled {
		s.drawHUD(c, w, hud)
	}
	return c.Display()
}

func (s *Scene) drawHUD(c *Canvas, w *physics.World, hud HUD) {
	p := s.Palette
	lh := c.LineHeight()

	lines := []string{
		fmt.Sprintf("kirkle %s  step=%d  E=%.0f", hud.Build, w.Steps, w.Energy()),
		fmt.Sprintf("circle pos=(%.0f,%.0f) vel=(%.0f,%.0f)", w.Circle.Pos.X, w.Circle.Pos.Y, w.Circle.Vel.X, w.Circle.Vel.Y),
		fmt.Sprintf("square pos=(%.0f,%.0f) vel=(%.0f,%.0f)", w.Square.Pos.X, w.Square.Pos.Y, w.Square.Vel.X, w.Square.Vel.Y),
		"arrows circle | wasd square | r reset | p pause | f1 hud | esc quit",
	}
	for i, line := range lines {
		c.Text(2, 2+i*lh, line, p.Text)
	}

	msg := ""
	switch {
	case hud.Paused:
		msg = "PAUSED"
	case hud.Contact:
		msg = "CONTACT"
	}
	if msg != "" {
		c.Text(2, c.Height()-lh-2, msg, p.Accent)
	}
}
