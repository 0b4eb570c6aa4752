package hal

import "go.uber.org/zap"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  float64
	TPS    int
}

type hostHAL struct {
	logger *zap.Logger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

func newHost(width, height int, logger *zap.Logger, virtual bool) *hostHAL {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(virtual),
	}
}

func (h *hostHAL) Logger() *zap.Logger { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input        { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock        { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
