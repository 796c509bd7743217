package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/appengine-ltd/pretender/internal/editor"
	"github.com/appengine-ltd/pretender/internal/sketch"
	"go.uber.org/zap"
)

func setup(configPath string) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	log.Debug("config loaded", zap.String("path", configPath))
	return cfg, log, nil
}

// runScript plays a recorded event script against a fresh session and writes
// what ended up in the document to out.
func runScript(cfg config.Config, log *zap.Logger, script io.Reader, out io.Writer) error {
	events, err := editor.ParseScript(script)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	display := &editor.TextBuffer{}
	session := editor.NewSession(cfg, log, display)
	played := session.Play(events)

	fmt.Fprintf(out, "session %s: played %d/%d events, running=%t\n",
		session.ID, played, len(events), session.Running())
	if text := display.String(); text != "" {
		fmt.Fprintf(out, "prompt: %s\n", text)
	}
	writeDocument(out, session.Doc)
	return nil
}

func writeDocument(out io.Writer, doc *sketch.Document) {
	layers := map[sketch.LayerID]string{}
	doc.Layers.Each(func(id sketch.LayerID, l *sketch.Layer) bool {
		layers[id] = l.Name
		state := "shown"
		if l.Hidden {
			state = "hidden"
		}
		fmt.Fprintf(out, "layer %s %q %s\n", id, l.Name, state)
		return true
	})

	var lines []string
	doc.Entities.Each(func(id sketch.EntityID, e *sketch.Entity) bool {
		switch e.Kind {
		case sketch.KindPoint:
			lines = append(lines, fmt.Sprintf("%s %s layer=%q (%g,%g)",
				e.Kind, id, layers[e.Layer], e.Start.X, e.Start.Y))
		default:
			lines = append(lines, fmt.Sprintf("%s %s layer=%q (%g,%g)-(%g,%g)",
				e.Kind, id, layers[e.Layer], e.Start.X, e.Start.Y, e.End.X, e.End.Y))
		}
		return true
	})
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}
