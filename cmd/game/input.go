// cmd/game/input.go
package main

import (
	"pixel-war/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[input.Key]ebiten.Key{
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyLeft:   ebiten.KeyArrowLeft,
	input.KeyRight:  ebiten.KeyArrowRight,
	input.KeyW:      ebiten.KeyW,
	input.KeyA:      ebiten.KeyA,
	input.KeyS:      ebiten.KeyS,
	input.KeyD:      ebiten.KeyD,
	input.KeySpace:  ebiten.KeySpace,
	input.KeyEnter:  ebiten.KeyEnter,
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyP:      ebiten.KeyP,
	input.KeyO:      ebiten.KeyO,
	input.KeyR:      ebiten.KeyR,
	input.KeyM:      ebiten.KeyM,
	input.KeyC:      ebiten.KeyC,
	input.KeyL:      ebiten.KeyL,
	input.KeyQ:      ebiten.KeyQ,
	input.KeyI:      ebiten.KeyI,
	input.KeyJ:      ebiten.KeyJ,
	input.KeyK:      ebiten.KeyK,
	input.KeyT:      ebiten.KeyT,
	input.KeyE:      ebiten.KeyE,
	input.KeyF3:     ebiten.KeyF3,
	input.Key1:      ebiten.Key1,
	input.Key2:      ebiten.Key2,
	input.Key3:      ebiten.Key3,
	input.Key4:      ebiten.Key4,
	input.Key5:      ebiten.Key5,
	input.Key6:      ebiten.Key6,
}

// keyboard — снимок клавиатуры ebiten на текущий кадр.
type keyboard struct{}

func (keyboard) Pressed(k input.Key) bool {
	key, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (keyboard) JustPressed(k input.Key) bool {
	key, ok := keyMap[k]
	return ok && inpututil.IsKeyJustPressed(key)
}

func (keyboard) JustReleased(k input.Key) bool {
	key, ok := keyMap[k]
	return ok && inpututil.IsKeyJustReleased(key)
}

func (kb keyboard) AnyJustPressed() bool {
	for _, k := range input.AllKeys() {
		if kb.JustPressed(k) {
			return true
		}
	}
	return false
}
