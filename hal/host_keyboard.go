//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Arrows and WASD are read every frame for continuous control; the rest only
// matter on their press edge.
var ebitenKeys = [...]struct {
	code KeyCode
	keys []ebiten.Key
}{
	{KeyUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{KeyDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{KeyRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{KeyW, []ebiten.Key{ebiten.KeyW}},
	{KeyA, []ebiten.Key{ebiten.KeyA}},
	{KeyS, []ebiten.Key{ebiten.KeyS}},
	{KeyD, []ebiten.Key{ebiten.KeyD}},
	{KeyEscape, []ebiten.Key{ebiten.KeyEscape}},
	{KeyR, []ebiten.Key{ebiten.KeyR}},
	{KeyP, []ebiten.Key{ebiten.KeyP, ebiten.KeySpace}},
	{KeyF1, []ebiten.Key{ebiten.KeyF1}},
}

func (k *hostKeyboard) poll() {
	for _, m := range ebitenKeys {
		down := false
		for _, key := range m.keys {
			if inpututil.IsKeyJustPressed(key) {
				k.emit(m.code, true)
			}
			if inpututil.IsKeyJustReleased(key) {
				k.emit(m.code, false)
			}
			if ebiten.IsKeyPressed(key) {
				down = true
			}
		}
		k.setHeld(m.code, down)
	}
}
