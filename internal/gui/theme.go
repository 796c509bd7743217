package gui

import (
	"github.com/appengine-ltd/pretender/internal/sketch"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background  rl.Color
	PromptPanel rl.Color
	PromptText  rl.Color
	Caret       rl.Color
}

var AppTheme = Theme{
	Background:  rl.NewColor(236, 236, 232, 255),
	PromptPanel: rl.NewColor(32, 34, 38, 255),
	PromptText:  rl.NewColor(232, 230, 222, 255),
	Caret:       rl.NewColor(234, 65, 212, 255),
}

const (
	promptHeight   = 32
	promptFontSize = 20
	pointRadius    = 3
)

func toColor(c sketch.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
