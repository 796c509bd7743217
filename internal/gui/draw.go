package gui

import (
	"time"

	"github.com/appengine-ltd/pretender/internal/editor"
	"github.com/appengine-ltd/pretender/internal/sketch"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// dashUnit is the on-screen length, in pixels, of one line type pattern unit.
const dashUnit = 8.0

// textDisplay is the prompt line under the drawing. It remembers when the text
// last changed so the caret stays solid while typing.
type textDisplay struct {
	editor.TextBuffer
	changed time.Time
}

func newTextDisplay() *textDisplay {
	d := &textDisplay{}
	d.OnChange = func(string) { d.changed = time.Now() }
	return d
}

func (d *textDisplay) caretVisible(now time.Time) bool {
	since := now.Sub(d.changed)
	return since < time.Second || since%time.Second < 500*time.Millisecond
}

func drawDocument(doc *sketch.Document) {
	doc.Entities.Each(func(_ sketch.EntityID, e *sketch.Entity) bool {
		if !doc.Visible(e) {
			return true
		}
		color := toColor(e.Color)
		if e.Kind == sketch.KindPoint {
			rl.DrawCircleV(vec(e.Start), pointRadius, color)
			return true
		}
		lt := sketch.LineType{}
		if l, ok := doc.Layers.Get(e.Layer); ok {
			if t, ok := doc.LineTypes.Get(l.LineType); ok {
				lt = *t
			}
		}
		weight := float32(e.Weight)
		if weight <= 0 {
			weight = 1
		}
		for _, run := range inkedRuns(e.Start, e.End, lt, e.Scale) {
			rl.DrawLineEx(vec(run[0]), vec(run[1]), weight, color)
		}
		return true
	})
}

func drawPrompt(d *textDisplay, width, height int32, now time.Time) {
	top := height - promptHeight
	rl.DrawRectangle(0, top, width, promptHeight, AppTheme.PromptPanel)
	text := "> " + d.String()
	x, y := int32(10), top+(promptHeight-promptFontSize)/2
	rl.DrawText(text, x, y, promptFontSize, AppTheme.PromptText)
	if d.caretVisible(now) {
		cx := x + rl.MeasureText(text, promptFontSize) + 2
		rl.DrawRectangle(cx, y, 2, promptFontSize, AppTheme.Caret)
	}
}

// inkedRuns splits the segment a-b into the sub-segments lt inks, walking it
// one pixel at a time.
func inkedRuns(a, b sketch.Point, lt sketch.LineType, scale float64) [][2]sketch.Point {
	length := a.Dist(b)
	if length == 0 {
		return [][2]sketch.Point{{a, b}}
	}
	at := func(d float64) sketch.Point {
		t := d / length
		return sketch.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
	}
	var runs [][2]sketch.Point
	start := -1.0
	for d := 0.0; d < length; d++ {
		if lt.Draws(d/dashUnit, scale) {
			if start < 0 {
				start = d
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, [2]sketch.Point{at(start), at(d)})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]sketch.Point{at(start), b})
	}
	return runs
}

func vec(p sketch.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
