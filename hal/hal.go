package hal

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNotImplemented marks a platform feature missing from this build.
var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by an app step to end the run loop without error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

// Keys the host can report. KeyUnknown is never emitted.
const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyR
	KeyP
	KeyF1

	keyCount
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides edge events plus the held state used for continuous
// controls.
type Keyboard interface {
	Events() <-chan KeyEvent
	Held(code KeyCode) bool
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clock reports time elapsed since the run started. The value is latched
// once per frame so every reader in a frame sees the same instant.
type Clock interface {
	Now() time.Duration
}

// HAL is the only contact point between the app and the outside world.
type HAL interface {
	Logger() *zap.Logger
	Display() Display
	Input() Input
	Clock() Clock
}
