package backend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kdriscoll/driftline/internal/input"
)

// keyTable maps Ebitengine keys to router keys. Keys absent from the
// table are not reported.
var keyTable = map[ebiten.Key]input.Key{
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeyEnter:     input.KeyEnter,
	ebiten.KeyTab:       input.KeyTab,
	ebiten.KeyBackspace: input.KeyBackspace,
	ebiten.KeyDelete:    input.KeyDelete,
	ebiten.KeyInsert:    input.KeyInsert,
	ebiten.KeyHome:      input.KeyHome,
	ebiten.KeyEnd:       input.KeyEnd,
	ebiten.KeyPageUp:    input.KeyPageUp,
	ebiten.KeyPageDown:  input.KeyPageDown,
	ebiten.KeyArrowUp:   input.KeyUp,
	ebiten.KeyArrowDown: input.KeyArrowDown,
	ebiten.KeyArrowLeft: input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeySpace:     input.KeySpace,
	ebiten.KeyMinus:     input.Key('-'),
	ebiten.KeyEqual:     input.Key('='),
	ebiten.KeyComma:     input.Key(','),
	ebiten.KeyPeriod:    input.Key('.'),
	ebiten.KeySlash:     input.Key('/'),
	ebiten.KeyF1:        input.KeyF1,
	ebiten.KeyF2:        input.KeyF2,
	ebiten.KeyF3:        input.KeyF3,
	ebiten.KeyF4:        input.KeyF4,
	ebiten.KeyF5:        input.KeyF5,
	ebiten.KeyF6:        input.KeyF6,
	ebiten.KeyF7:        input.KeyF7,
	ebiten.KeyF8:        input.KeyF8,
	ebiten.KeyF9:        input.KeyF9,
	ebiten.KeyF10:       input.KeyF10,
	ebiten.KeyF11:       input.KeyF11,
	ebiten.KeyF12:       input.KeyF12,
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keyTable[k] = input.Key('a' + rune(k-ebiten.KeyA))
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		keyTable[k] = input.Key('0' + rune(k-ebiten.KeyDigit0))
	}
}

// translateKey converts an Ebitengine key, returning false for keys the
// router does not model.
func translateKey(k ebiten.Key) (input.Key, bool) {
	key, ok := keyTable[k]
	return key, ok
}

// pressedModifiers reads the current modifier key state.
func pressedModifiers() input.Modifier {
	mods := input.ModNone
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods = mods.With(input.ModShift)
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods = mods.With(input.ModCtrl)
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods = mods.With(input.ModAlt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods = mods.With(input.ModMeta)
	}
	return mods
}
