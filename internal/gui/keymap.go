package gui

import (
	"github.com/appengine-ltd/pretender/internal/command"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AsAlphanumeric maps letter and digit keys, keypad digits included, to the
// lower-case character they type.
func AsAlphanumeric(key int32) (rune, bool) {
	switch {
	case key >= rl.KeyA && key <= rl.KeyZ:
		return 'a' + rune(key-rl.KeyA), true
	case key >= rl.KeyZero && key <= rl.KeyNine:
		return '0' + rune(key-rl.KeyZero), true
	case key >= rl.KeyKp0 && key <= rl.KeyKp9:
		return '0' + rune(key-rl.KeyKp0), true
	}
	return 0, false
}

func IsConfirmation(key int32) command.Confirm {
	switch key {
	case rl.KeyEscape:
		return command.ConfirmNo
	case rl.KeyEnter, rl.KeyKpEnter, rl.KeySpace, rl.KeyTab:
		return command.ConfirmYes
	}
	return command.ConfirmNone
}

// asNumberPunct maps the keys that can appear in a typed coordinate besides
// digits.
func asNumberPunct(key int32) (rune, bool) {
	switch key {
	case rl.KeyMinus, rl.KeyKpSubtract:
		return '-', true
	case rl.KeyPeriod, rl.KeyKpDecimal:
		return '.', true
	}
	return 0, false
}

// KeyEvent turns a pressed key into an editor event. Keys that neither type
// nor confirm are dropped.
func KeyEvent(key int32) (command.Event, bool) {
	switch IsConfirmation(key) {
	case command.ConfirmYes:
		return command.ConfirmEvent(), true
	case command.ConfirmNo:
		return command.CancelEvent(), true
	}
	if r, ok := AsAlphanumeric(key); ok {
		return command.CharEvent(r), true
	}
	if r, ok := asNumberPunct(key); ok {
		return command.CharEvent(r), true
	}
	return command.Event{}, false
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}
