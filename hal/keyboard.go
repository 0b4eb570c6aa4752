package hal

import (
	"fmt"
	"strings"
	"sync"
)

type hostKeyboard struct {
	mu   sync.Mutex
	ch   chan KeyEvent
	held [keyCount]bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) Held(code KeyCode) bool {
	if code >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.held[code]
}

// setHeld records the held state and reports whether it changed.
func (k *hostKeyboard) setHeld(code KeyCode, down bool) bool {
	if code == KeyUnknown || code >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	changed := k.held[code] != down
	k.held[code] = down
	return changed
}

func (k *hostKeyboard) emit(code KeyCode, press bool) {
	if code == KeyUnknown || code >= keyCount {
		return
	}
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

// set drives a key without a window backend (headless Hold): the held state
// changes and the matching edge is emitted.
func (k *hostKeyboard) set(code KeyCode, down bool) {
	if k.setHeld(code, down) {
		k.emit(code, down)
	}
}

var keyNames = map[KeyCode]string{
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyW:      "w",
	KeyA:      "a",
	KeyS:      "s",
	KeyD:      "d",
	KeyEscape: "escape",
	KeyR:      "r",
	KeyP:      "p",
	KeyF1:     "f1",
}

func (c KeyCode) String() string {
	if s, ok := keyNames[c]; ok {
		return s
	}
	return fmt.Sprintf("key(%d)", uint16(c))
}

// ParseKeyCode maps a key name ("left", "w", "f1", ...) to its code.
func ParseKeyCode(name string) (KeyCode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "esc" {
		return KeyEscape, nil
	}
	for code, s := range keyNames {
		if s == name {
			return code, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
