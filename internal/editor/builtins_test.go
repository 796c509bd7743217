package editor

import (
	"testing"

	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/appengine-ltd/pretender/internal/sketch"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const baseLine = `
type l
enter
click 0 0
click 10 0
`

func TestLockRefusesEditsUntilUnlocked(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewSession(config.Default(), zap.New(core), nil)
	play(t, s, baseLine+`
type lk
enter
pick 0 0
type l
enter
click 0 5
click 5 5
type m
enter
pick 0 0
click 0 0
click 3 3
`)
	_, e := onlyEntity(t, s)
	if e.Start != (sketch.Point{}) {
		t.Fatalf("locked entity moved: %+v", e)
	}
	if n := len(logs.FilterMessage("line not drawn").All()); n != 1 {
		t.Fatalf("expected refused line to be logged, got %d", n)
	}
	if n := len(logs.FilterMessage("move failed").All()); n != 1 {
		t.Fatalf("expected refused move to be logged, got %d", n)
	}

	play(t, s, "type lock\nenter\npick 0 0\ntype m\nenter\npick 0 0\nclick 0 0\nclick 3 3\n")
	_, e = onlyEntity(t, s)
	if e.Start != (sketch.Point{X: 3, Y: 3}) {
		t.Fatalf("unlocked entity should move, got %+v", e)
	}
}

func TestHideThenShowRestoresPicking(t *testing.T) {
	s, _ := testSession(t)
	play(t, s, baseLine+`
type h
enter
click 5 0
`)
	id, e := onlyEntity(t, s)
	if s.Doc.Visible(e) {
		t.Fatalf("expected line hidden")
	}
	if _, ok := s.Doc.Nearest(sketch.Point{X: 5}, 1); ok {
		t.Fatalf("hidden line must not be hit")
	}

	play(t, s, "type show\nenter\n")
	if !s.Doc.Visible(e) {
		t.Fatalf("expected line shown again")
	}
	if got, ok := s.Doc.Nearest(sketch.Point{X: 5}, 1); !ok || got != id {
		t.Fatalf("expected line pickable again, got %v %v", got, ok)
	}
}

func TestFreezeThenUnhide(t *testing.T) {
	s, _ := testSession(t)
	play(t, s, baseLine+"type fr\nenter\nclick 5 0\n")
	_, e := onlyEntity(t, s)
	l, _ := s.Doc.Layers.Get(e.Layer)
	if !l.Frozen || s.Doc.Visible(e) {
		t.Fatalf("expected layer frozen and invisible, got %+v", l)
	}
	play(t, s, "type unhide\nenter\n")
	if l.Frozen || !s.Doc.Visible(e) {
		t.Fatalf("expected layer thawed, got %+v", l)
	}
}

func TestLayerDelete(t *testing.T) {
	s, _ := testSession(t)
	play(t, s, baseLine+`
type la
enter
type l
enter
click 0 20
click 10 20
type ld
enter
pick 1 0
`)
	if n := s.Doc.Entities.Count(); n != 2 {
		t.Fatalf("current layer must not be deleted, got %d entities", n)
	}

	play(t, s, "type layerdel\nenter\npick 0 0\n")
	id, e := onlyEntity(t, s)
	if id.Index() != 1 || e.Layer != s.Doc.CurrentLayer() {
		t.Fatalf("expected only the current layer's line left, got %v %+v", id, e)
	}
	if n := s.Doc.Layers.Count(); n != 1 {
		t.Fatalf("expected 1 layer left, got %d", n)
	}
}

func TestChangeMovesEntityToCurrentLayer(t *testing.T) {
	s, _ := testSession(t)
	play(t, s, baseLine+`
type la
enter
type ch
enter
pick 0 0
`)
	id, e := onlyEntity(t, s)
	if id.Index() != 0 || id.Generation() != 1 {
		t.Fatalf("expected slot 0 at generation 1, got %v", id)
	}
	if e.Layer != s.Doc.CurrentLayer() {
		t.Fatalf("expected entity on the new current layer")
	}

	play(t, s, "type e\nenter\npick 0 0\nenter\n")
	if s.Doc.Entities.Count() != 1 {
		t.Fatalf("old handle must no longer select the entity")
	}
}
