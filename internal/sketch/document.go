// Package sketch holds the long-lived objects of an editing session. Layers,
// line types and drawn entities each live in their own slot table and refer to
// one another by handle.
package sketch

import (
	"errors"
	"fmt"
	"math"

	"github.com/appengine-ltd/pretender/internal/slot"
)

var (
	ErrNoLayer      = errors.New("layer no longer exists")
	ErrLayerLocked  = errors.New("layer is locked")
	ErrNoEntity     = errors.New("entity no longer exists")
	ErrCurrentLayer = errors.New("cannot remove the current layer")
)

type Document struct {
	Layers    *slot.Table[Layer]
	LineTypes *slot.Table[LineType]
	Entities  *slot.Table[Entity]

	current LayerID

	ContinuousLine LineTypeID
	HiddenLine     LineTypeID
}

// NewDocument seeds the two built-in line types and layer "0".
func NewDocument() *Document {
	d := &Document{
		Layers:    slot.New[Layer](),
		LineTypes: slot.New[LineType](),
		Entities:  slot.New[Entity](),
	}
	d.ContinuousLine = d.LineTypes.Push(LineType{Name: "continuous", Pattern: Continuous})
	d.HiddenLine = d.LineTypes.Push(LineType{Name: "hidden", Pattern: Hidden})
	d.current = d.Layers.Push(Layer{
		Name:     "0",
		Color:    Black,
		LineType: d.ContinuousLine,
	})
	return d
}

func (d *Document) CurrentLayer() LayerID { return d.current }

func (d *Document) SetCurrentLayer(id LayerID) error {
	if !d.Layers.Contains(id) {
		return ErrNoLayer
	}
	d.current = id
	return nil
}

func (d *Document) AddLayer(name string, c Color) LayerID {
	return d.Layers.Push(Layer{Name: name, Color: c, LineType: d.ContinuousLine})
}

// RemoveLayer drops a layer together with every entity drawn on it. The
// current layer cannot be removed.
func (d *Document) RemoveLayer(id LayerID) (int, error) {
	if !d.Layers.Contains(id) {
		return 0, ErrNoLayer
	}
	if id == d.current {
		return 0, ErrCurrentLayer
	}
	var doomed []EntityID
	d.Entities.Each(func(h EntityID, e *Entity) bool {
		if e.Layer == id {
			doomed = append(doomed, h)
		}
		return true
	})
	d.Layers.Remove(id)
	return d.Erase(doomed), nil
}

func (d *Document) writableLayer() (LayerID, *Layer, error) {
	l, ok := d.Layers.Get(d.current)
	if !ok {
		return LayerID{}, nil, ErrNoLayer
	}
	if l.Locked {
		return LayerID{}, nil, fmt.Errorf("%s: %w", l.Name, ErrLayerLocked)
	}
	return d.current, l, nil
}

func (d *Document) AddLine(a, b Point, c Color, weight float64) (EntityID, error) {
	id, _, err := d.writableLayer()
	if err != nil {
		return EntityID{}, err
	}
	return d.Entities.Push(Entity{
		Kind:   KindLine,
		Start:  a,
		End:    b,
		Layer:  id,
		Color:  c,
		Weight: weight,
		Scale:  1,
	}), nil
}

func (d *Document) AddPoint(p Point, c Color) (EntityID, error) {
	id, _, err := d.writableLayer()
	if err != nil {
		return EntityID{}, err
	}
	return d.Entities.Push(Entity{
		Kind:   KindPoint,
		Start:  p,
		End:    p,
		Layer:  id,
		Color:  c,
		Weight: 1,
		Scale:  1,
	}), nil
}

// Erase removes the entities that are still valid and reports how many went.
func (d *Document) Erase(ids []EntityID) int {
	n := 0
	for _, id := range ids {
		if _, ok := d.Entities.Remove(id); ok {
			n++
		}
	}
	return n
}

func (d *Document) Move(id EntityID, dx, dy float64) error {
	e, ok := d.Entities.Get(id)
	if !ok {
		return ErrNoEntity
	}
	if l, ok := d.Layers.Get(e.Layer); ok && l.Locked {
		return fmt.Errorf("%s: %w", l.Name, ErrLayerLocked)
	}
	e.Start = e.Start.Add(dx, dy)
	e.End = e.End.Add(dx, dy)
	return nil
}

// ToggleHidden flips the visibility of the layer id is drawn on and returns the
// new hidden state.
func (d *Document) ToggleHidden(id EntityID) (bool, error) {
	l, err := d.layerOf(id)
	if err != nil {
		return false, err
	}
	l.Hidden = !l.Hidden
	return l.Hidden, nil
}

// ToggleFrozen flips whether the layer id is drawn on is frozen. Frozen layers
// are neither drawn nor hit by Nearest.
func (d *Document) ToggleFrozen(id EntityID) (bool, error) {
	l, err := d.layerOf(id)
	if err != nil {
		return false, err
	}
	l.Frozen = !l.Frozen
	return l.Frozen, nil
}

// ToggleLocked flips whether the layer id is drawn on accepts edits.
func (d *Document) ToggleLocked(id EntityID) (bool, error) {
	l, err := d.layerOf(id)
	if err != nil {
		return false, err
	}
	l.Locked = !l.Locked
	return l.Locked, nil
}

// ShowAll clears Hidden and Frozen on every layer and reports how many changed.
func (d *Document) ShowAll() int {
	n := 0
	d.Layers.Each(func(_ LayerID, l *Layer) bool {
		if l.Hidden || l.Frozen {
			l.Hidden, l.Frozen = false, false
			n++
		}
		return true
	})
	return n
}

// Relayer puts the entity onto the current layer. The entity is stored again
// under a new generation, so id stops resolving and the returned handle
// replaces it.
func (d *Document) Relayer(id EntityID) (EntityID, error) {
	e, ok := d.Entities.Get(id)
	if !ok {
		return EntityID{}, ErrNoEntity
	}
	if l, ok := d.Layers.Get(e.Layer); ok && l.Locked {
		return EntityID{}, fmt.Errorf("%s: %w", l.Name, ErrLayerLocked)
	}
	target, _, err := d.writableLayer()
	if err != nil {
		return EntityID{}, err
	}
	moved := *e
	moved.Layer = target
	next, ok := d.Entities.Replace(id, moved)
	if !ok {
		return EntityID{}, ErrNoEntity
	}
	return next, nil
}

func (d *Document) layerOf(id EntityID) (*Layer, error) {
	e, ok := d.Entities.Get(id)
	if !ok {
		return nil, ErrNoEntity
	}
	l, ok := d.Layers.Get(e.Layer)
	if !ok {
		return nil, ErrNoLayer
	}
	return l, nil
}

// Visible reports whether e sits on a layer that exists and is shown.
func (d *Document) Visible(e *Entity) bool {
	l, ok := d.Layers.Get(e.Layer)
	return ok && !l.Hidden && !l.Frozen
}

// Nearest returns the visible entity closest to p, if any lies within tol.
func (d *Document) Nearest(p Point, tol float64) (EntityID, bool) {
	var (
		best     EntityID
		found    bool
		bestDist = math.Inf(1)
	)
	d.Entities.Each(func(h EntityID, e *Entity) bool {
		if !d.Visible(e) {
			return true
		}
		dist := segmentDistance(p, e.Start, e.End)
		if dist <= tol && dist < bestDist {
			best, bestDist, found = h, dist, true
		}
		return true
	})
	return best, found
}

func segmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Dist(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
