// Package gui hosts an editing session in a raylib window.
package gui

import (
	"time"

	"github.com/appengine-ltd/pretender/internal/command"
	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/appengine-ltd/pretender/internal/editor"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type AppConfig struct {
	Version string
	Config  config.Config
	Log     *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	cfg := a.cfg.Config
	log := a.cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	display := newTextDisplay()
	session := editor.NewSession(cfg, log, display)
	queue := newEventQueue(0)
	viewport := newView()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	log.Info("window opened",
		zap.String("version", a.cfg.Version),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	for session.Running() {
		if rl.WindowShouldClose() {
			session.Dispatch(command.CloseEvent())
			break
		}
		viewport.update()
		pollInput(session, queue, viewport, cfg.Editor.PickTolerance)
		if n := queue.TakeDropped(); n > 0 {
			log.Warn("input dropped", zap.Int("events", n))
		}
		for ev, ok := queue.Dequeue(); ok; ev, ok = queue.Dequeue() {
			if !session.Dispatch(ev) {
				break
			}
		}
		if !session.Running() {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		rl.BeginMode2D(viewport.cam)
		drawDocument(session.Doc)
		rl.EndMode2D()
		drawPrompt(display, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), time.Now())
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

// pollInput queues this frame's key presses and clicks, the latter in document
// coordinates. Shift-click picks the entity nearest the pointer instead of
// sending the raw position; the tolerance stays constant in pixels.
func pollInput(session *editor.Session, sink EventSink, v *view, tolerance float64) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := KeyEvent(key); ok {
			sink.Enqueue(ev)
		}
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	p := v.toWorld(rl.GetMousePosition())
	click := command.ClickEvent(p.X, p.Y)
	if shiftDown() {
		if id, ok := session.Doc.Nearest(p, tolerance/float64(v.cam.Zoom)); ok {
			sink.Enqueue(command.PickEvent(id))
			return
		}
	}
	sink.Enqueue(click)
}
