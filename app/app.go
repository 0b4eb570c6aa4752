package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"kirkle/hal"
	"kirkle/physics"
	"kirkle/render"
)

// ErrQuit is returned by Step once the user asks to leave.
var ErrQuit = hal.ErrQuit

// Config is the run-time tuning handed to New.
type Config struct {
	Params  physics.Params
	Palette render.Palette
	HUD     bool
	Build   string
	// LogEvery emits a state line every N simulated steps (0 disables it).
	LogEvery uint64
}

// Game is the simulate-then-render loop over the two bodies.
type Game struct {
	log    *zap.Logger
	kbd    hal.Keyboard
	clock  hal.Clock
	canvas *render.Canvas
	scene  render.Scene
	world  *physics.World

	cfg     Config
	last    time.Duration
	paused  bool
	hud     bool
	crashed bool
	contact bool
}

// New builds a Game over the HAL framebuffer. The playfield is the
// framebuffer size.
func New(h hal.HAL, cfg Config) (*Game, error) {
	if h == nil {
		return nil, fmt.Errorf("app: nil HAL")
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d: %w", fb.Format(), hal.ErrNotImplemented)
	}

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}

	log := h.Logger()
	if log == nil {
		log = zap.NewNop()
	}

	bounds := physics.Bounds{W: float64(fb.Width()), H: float64(fb.Height())}
	g := &Game{
		log:    log.Named("app"),
		kbd:    kbd,
		clock:  h.Clock(),
		canvas: render.NewCanvas(fb),
		scene:  render.Scene{Palette: cfg.Palette},
		world:  physics.NewWorld(bounds, cfg.Params),
		cfg:    cfg,
		hud:    cfg.HUD,
	}
	if g.clock != nil {
		g.last = g.clock.Now()
	}

	g.log.Info("world ready",
		zap.Float64("width", bounds.W),
		zap.Float64("height", bounds.H),
		zap.Float64("radius", g.world.Circle.Radius),
		zap.Float64("half", g.world.Square.Half),
	)
	return g, nil
}

// Factory adapts New to the HAL runners.
func Factory(cfg Config) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		g, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return g.Step, nil
	}
}

// Step runs one frame: input, physics, draw.
func (g *Game) Step() (err error) {
	if quit := g.drainKeys(); quit {
		g.log.Info("quit requested", zap.Uint64("steps", g.world.Steps))
		return ErrQuit
	}
	if g.crashed {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			g.crashed = true
			stack := debug.Stack()
			g.log.Error("frame panicked", zap.Any("panic", r), zap.ByteString("stack", stack))
			g.drawPanic(r, stack)
			err = nil
		}
	}()

	dt := g.frameDelta()
	if !g.paused {
		circleIn, squareIn := g.controls()
		res := g.world.Step(dt, circleIn, squareIn)
		g.observe(res)
	}

	return g.scene.Draw(g.canvas, g.world, render.HUD{
		Enabled: g.hud,
		Paused:  g.paused,
		Build:   g.cfg.Build,
		Contact: g.contact,
	})
}

// drainKeys handles edge-triggered keys and reports whether to quit.
// drawPanic shows the crash screen. A framebuffer that panics again is
// logged and left as is.
func (g *Game) drawPanic(value any, stack []byte) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("panic screen failed", zap.Any("panic", r))
		}
	}()
	render.DrawPanic(g.canvas, value, stack)
}

func (g *Game) drainKeys() bool {
	if g.kbd == nil {
		return false
	}
	for {
		select {
		case ev := <-g.kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				return true
			case hal.KeyR:
				if g.crashed {
					continue
				}
				g.world.Reset()
				g.log.Info("world reset")
			case hal.KeyP:
				g.paused = !g.paused
				g.log.Info("pause toggled", zap.Bool("paused", g.paused))
			case hal.KeyF1:
				g.hud = !g.hud
			}
		default:
			return false
		}
	}
}

func (g *Game) frameDelta() float64 {
	if g.clock == nil {
		return 0
	}
	now := g.clock.Now()
	d := now - g.last
	g.last = now
	return d.Seconds()
}

func (g *Game) controls() (circle, square physics.Control) {
	if g.kbd == nil {
		return
	}
	held := g.kbd.Held
	circle = physics.Control{
		Left:  held(hal.KeyLeft),
		Right: held(hal.KeyRight),
		Up:    held(hal.KeyUp),
		Down:  held(hal.KeyDown),
	}
	square = physics.Control{
		Left:  held(hal.KeyA),
		Right: held(hal.KeyD),
		Up:    held(hal.KeyW),
		Down:  held(hal.KeyS),
	}
	return circle, square
}

func (g *Game) observe(res physics.StepResult) {
	if res.Contact.Hit && !g.contact {
		g.log.Debug("contact",
			zap.Float64("depth", res.Contact.Depth),
			zap.Float64("impulse", res.Contact.Impulse),
			zap.Float64("nx", res.Contact.Normal.X),
			zap.Float64("ny", res.Contact.Normal.Y),
		)
	}
	g.contact = res.Contact.Hit

	if res.CircleWalls != 0 || res.SquareWalls != 0 {
		if ce := g.log.Check(zap.DebugLevel, "wall"); ce != nil {
			ce.Write(
				zap.Stringer("circle", res.CircleWalls),
				zap.Stringer("square", res.SquareWalls),
			)
		}
	}

	w := g.world
	if g.cfg.LogEvery > 0 && w.Steps%g.cfg.LogEvery == 0 {
		g.log.Info("state",
			zap.Uint64("step", w.Steps),
			zap.Float64("dt", res.Dt),
			zap.Float64("circle_x", w.Circle.Pos.X),
			zap.Float64("circle_y", w.Circle.Pos.Y),
			zap.Float64("circle_vx", w.Circle.Vel.X),
			zap.Float64("circle_vy", w.Circle.Vel.Y),
			zap.Float64("square_x", w.Square.Pos.X),
			zap.Float64("square_y", w.Square.Pos.Y),
			zap.Float64("square_vx", w.Square.Vel.X),
			zap.Float64("square_vy", w.Square.Vel.Y),
			zap.Float64("energy", w.Energy()),
		)
	}
}
