package command

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/appengine-ltd/pretender/internal/sketch"
	"go.uber.org/zap"
)

// Collector gathers a command's declared arguments one at a time, in order,
// and runs the handler once the last one is captured. Cancelling drops
// everything captured so far; the handler never sees a partial list.
//
// A point is taken from one click, or from two typed numbers (x, then y) each
// ended by a confirm. Typed numbers may be negative or fractional. A select
// takes one pick, or a click near an entity. A multiselect takes picks until a
// confirm ends it.
type Collector struct {
	desc     *Descriptor
	kinds    []ArgKind
	next     int
	captured []Captured

	typed []rune
	x     float64
	hasX  bool
	picks []sketch.EntityID
}

// NewCollector starts collection for d, which must declare at least one
// argument.
func NewCollector(d *Descriptor) *Collector {
	return &Collector{desc: d, kinds: d.Args()}
}

// Next reports the index of the argument being collected.
func (c *Collector) Next() int { return c.next }

func (c *Collector) Captured() []Captured {
	return append([]Captured(nil), c.captured...)
}

func (c *Collector) OnStart(env *Env) {
	c.prompt(env)
}

func (c *Collector) OnStop(env *Env) {
	env.display().SetText("")
}

func (c *Collector) HandleEvent(env *Env, ev Event) Trans {
	if ev.Kind == EventClose {
		return QuitApp()
	}
	if ev.Kind == EventKey && ev.Confirm == ConfirmNo {
		env.Logger().Debug("argument collection cancelled",
			zap.String("command", c.desc.Name()),
			zap.Int("captured", len(c.captured)),
		)
		c.captured = nil
		c.picks = nil
		return PopState()
	}
	if c.next >= len(c.kinds) {
		return c.complete(env)
	}

	switch c.kinds[c.next] {
	case ArgPoint:
		return c.handlePoint(env, ev)
	case ArgSelect:
		if id, ok := resolveEntity(env, ev); ok {
			return c.capture(env, SelectArg(id))
		}
	case ArgMultiselect:
		return c.handleMultiselect(env, ev)
	}
	return Stay()
}

func (c *Collector) handlePoint(env *Env, ev Event) Trans {
	switch ev.Kind {
	case EventClick:
		return c.capture(env, PointArg(ev.Point))
	case EventKey:
		if ev.Confirm == ConfirmYes {
			if len(c.typed) == 0 {
				return Stay()
			}
			v, err := strconv.ParseFloat(string(c.typed), 64)
			c.typed = c.typed[:0]
			if err != nil {
				c.prompt(env)
				return Stay()
			}
			if !c.hasX {
				c.x, c.hasX = v, true
				c.prompt(env)
				return Stay()
			}
			return c.capture(env, PointArg(sketch.Point{X: c.x, Y: v}))
		}
		if acceptsNumberRune(c.typed, ev.Char) {
			c.typed = append(c.typed, ev.Char)
			env.display().Append(ev.Char)
		}
	}
	return Stay()
}

func (c *Collector) handleMultiselect(env *Env, ev Event) Trans {
	if ev.Kind == EventKey && ev.Confirm == ConfirmYes {
		if len(c.picks) == 0 {
			return Stay()
		}
		picks := c.picks
		c.picks = nil
		return c.capture(env, MultiselectArg(picks))
	}
	id, ok := resolveEntity(env, ev)
	if !ok {
		return Stay()
	}
	for _, p := range c.picks {
		if p == id {
			return Stay()
		}
	}
	c.picks = append(c.picks, id)
	c.prompt(env)
	return Stay()
}

func (c *Collector) capture(env *Env, arg Captured) Trans {
	c.captured = append(c.captured, arg)
	c.next++
	c.typed = c.typed[:0]
	c.hasX = false
	env.Logger().Debug("argument captured",
		zap.String("command", c.desc.Name()),
		zap.Stringer("kind", arg.Kind),
		zap.Int("index", c.next-1),
	)
	if c.next < len(c.kinds) {
		c.prompt(env)
		return Stay()
	}
	return c.complete(env)
}

func (c *Collector) complete(env *Env) Trans {
	args := c.captured
	c.captured = nil
	env.Logger().Info("run command", zap.String("command", c.desc.Name()), zap.Int("args", len(args)))
	return finish(c.desc.Handler().Run(env, args))
}

func (c *Collector) prompt(env *Env) {
	if c.next >= len(c.kinds) {
		return
	}
	kind := c.kinds[c.next]
	text := fmt.Sprintf("%s: %s %d/%d", c.desc.Name(), kind, c.next+1, len(c.kinds))
	switch {
	case kind == ArgPoint && c.hasX:
		text += fmt.Sprintf(" x=%g y=", c.x)
	case kind == ArgPoint:
		text += " x="
	case kind == ArgMultiselect && len(c.picks) > 0:
		text += fmt.Sprintf(" (%d picked)", len(c.picks))
	}
	env.display().SetText(text)
}

// acceptsNumberRune reports whether r may extend typed as a decimal number: a
// leading minus, digits, and at most one point.
func acceptsNumberRune(typed []rune, r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '-':
		return len(typed) == 0
	case r == '.':
		return !slices.Contains(typed, '.')
	}
	return false
}

// resolveEntity turns a pick, or a click near something, into a valid entity
// handle. Stale picks resolve to nothing.
func resolveEntity(env *Env, ev Event) (sketch.EntityID, bool) {
	if env == nil || env.Doc == nil {
		return sketch.EntityID{}, false
	}
	switch ev.Kind {
	case EventPick:
		if env.Doc.Entities.Contains(ev.Entity) {
			return ev.Entity, true
		}
		env.Logger().Debug("stale pick ignored", zap.Stringer("entity", ev.Entity))
	case EventClick:
		return env.Doc.Nearest(ev.Point, env.PickTolerance)
	}
	return sketch.EntityID{}, false
}
