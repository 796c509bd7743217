package gui

import (
	"math"

	"github.com/appengine-ltd/pretender/internal/sketch"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minZoom  = 0.1
	maxZoom  = 20
	zoomStep = 1.1
)

// view maps window pixels to document coordinates. Middle-drag pans, the wheel
// zooms about the pointer.
type view struct {
	cam rl.Camera2D
}

func newView() *view {
	return &view{cam: rl.Camera2D{Zoom: 1}}
}

func (v *view) toWorld(screen rl.Vector2) sketch.Point {
	return sketch.Point{
		X: float64((screen.X-v.cam.Offset.X)/v.cam.Zoom + v.cam.Target.X),
		Y: float64((screen.Y-v.cam.Offset.Y)/v.cam.Zoom + v.cam.Target.Y),
	}
}

// pan shifts the view so the content under the pointer follows a drag of
// delta pixels.
func (v *view) pan(delta rl.Vector2) {
	v.cam.Target.X -= delta.X / v.cam.Zoom
	v.cam.Target.Y -= delta.Y / v.cam.Zoom
}

// zoomAt scales by zoomStep per wheel notch, keeping the document point under
// screen fixed.
func (v *view) zoomAt(screen rl.Vector2, wheel float32) {
	if wheel == 0 {
		return
	}
	anchor := v.toWorld(screen)
	zoom := float64(v.cam.Zoom) * math.Pow(zoomStep, float64(wheel))
	zoom = math.Max(minZoom, math.Min(maxZoom, zoom))

	v.cam.Offset = screen
	v.cam.Target = vec(anchor)
	v.cam.Zoom = float32(zoom)
}

func (v *view) update() {
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		v.pan(rl.GetMouseDelta())
	}
	v.zoomAt(rl.GetMousePosition(), rl.GetMouseWheelMove())
}
