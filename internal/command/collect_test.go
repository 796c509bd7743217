package command

import (
	"testing"

	"github.com/appengine-ltd/pretender/internal/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollector(rec *recorder, kinds ...ArgKind) *Collector {
	return NewCollector(NewBuilder().Name("cmd").Args(kinds...).Handler(rec).Build())
}

func TestCollectPointThenSelect(t *testing.T) {
	env, _ := newTestEnv()
	target, err := env.Doc.AddLine(sketch.Point{X: 0, Y: 0}, sketch.Point{X: 10, Y: 0}, sketch.Black, 1)
	require.NoError(t, err)

	rec := &recorder{}
	c := newCollector(rec, ArgPoint, ArgSelect)

	tr := c.HandleEvent(env, ClickEvent(3, 4))
	assert.Equal(t, TransNone, tr.Kind)
	assert.Equal(t, 1, c.Next())
	assert.Empty(t, rec.calls)

	tr = c.HandleEvent(env, PickEvent(target))
	assert.Equal(t, TransPop, tr.Kind)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []Captured{
		PointArg(sketch.Point{X: 3, Y: 4}),
		SelectArg(target),
	}, rec.calls[0].args)
}

func TestCollectCancelMidway(t *testing.T) {
	env, _ := newTestEnv()
	rec := &recorder{}
	c := newCollector(rec, ArgPoint, ArgPoint)

	c.HandleEvent(env, ClickEvent(1, 1))
	require.Len(t, c.Captured(), 1)

	tr := c.HandleEvent(env, CancelEvent())
	assert.Equal(t, TransPop, tr.Kind)
	assert.Empty(t, c.Captured())
	assert.Empty(t, rec.calls)
}

func TestCollectCloseQuits(t *testing.T) {
	env, _ := newTestEnv()
	rec := &recorder{}
	c := newCollector(rec, ArgPoint)
	assert.Equal(t, TransQuit, c.HandleEvent(env, CloseEvent()).Kind)
	assert.Empty(t, rec.calls)
}

func TestCollectTypedPoint(t *testing.T) {
	env, disp := newTestEnv()
	rec := &recorder{}
	c := newCollector(rec, ArgPoint)
	c.OnStart(env)
	assert.Equal(t, "cmd: point 1/1 x=", disp.text)

	typeText(t, c, env, "12")
	assert.Equal(t, "cmd: point 1/1 x=12", disp.text)
	assert.Equal(t, TransNone, c.HandleEvent(env, ConfirmEvent()).Kind)
	assert.Equal(t, "cmd: point 1/1 x=12 y=", disp.text)

	// Letters are not coordinates.
	typeText(t, c, env, "a4b0")
	tr := c.HandleEvent(env, ConfirmEvent())
	assert.Equal(t, TransPop, tr.Kind)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []Captured{PointArg(sketch.Point{X: 12, Y: 40})}, rec.calls[0].args)
}

func TestCollectTypedNegativeAndFractionalPoint(t *testing.T) {
	env, disp := newTestEnv()
	rec := &recorder{}
	c := newCollector(rec, ArgPoint)
	c.OnStart(env)

	// A minus only leads, and a second point is dropped.
	typeText(t, c, env, "-2.5.-")
	assert.Equal(t, "cmd: point 1/1 x=-2.5", disp.text)
	c.HandleEvent(env, ConfirmEvent())

	typeText(t, c, env, ".75")
	require.Equal(t, TransPop, c.HandleEvent(env, ConfirmEvent()).Kind)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []Captured{PointArg(sketch.Point{X: -2.5, Y: 0.75})}, rec.calls[0].args)
}

func TestCollectLoneMinusIsRejected(t *testing.T) {
	env, disp := newTestEnv()
	rec := &recorder{}
	c := newCollector(rec, ArgPoint)
	c.OnStart(env)

	typeText(t, c, env, "-")
	assert.Equal(t, TransNone, c.HandleEvent(env, ConfirmEvent()).Kind)
	assert.Equal(t, "cmd: point 1/1 x=", disp.text)

	typeText(t, c, env, "-3")
	c.HandleEvent(env, ConfirmEvent())
	assert.Equal(t, "cmd: point 1/1 x=-3 y=", disp.text)
	assert.Empty(t, rec.calls)
}

func TestCollectEmptyConfirmDoesNothing(t *testing.T) {
	env, _ := newTestEnv()
	rec := &recorder{}
	c := newCollector(rec, ArgPoint, ArgMultiselect)

	assert.Equal(t, TransNone, c.HandleEvent(env, ConfirmEvent()).Kind)
	assert.Equal(t, 0, c.Next())

	c.HandleEvent(env, ClickEvent(0, 0))
	assert.Equal(t, TransNone, c.HandleEvent(env, ConfirmEvent()).Kind, "multiselect needs at least one pick")
	assert.Equal(t, 1, c.Next())
	assert.Empty(t, rec.calls)
}

func TestCollectSelectIgnoresStalePick(t *testing.T) {
	env, _ := newTestEnv()
	stale, _ := env.Doc.AddPoint(sketch.Point{X: 1, Y: 1}, sketch.Black)
	env.Doc.Erase([]sketch.EntityID{stale})
	fresh, _ := env.Doc.AddPoint(sketch.Point{X: 1, Y: 1}, sketch.Black)
	require.Equal(t, stale.Index(), fresh.Index())

	rec := &recorder{}
	c := newCollector(rec, ArgSelect)

	assert.Equal(t, TransNone, c.HandleEvent(env, PickEvent(stale)).Kind)
	assert.Equal(t, TransNone, c.HandleEvent(env, ClickEvent(500, 500)).Kind)
	assert.Empty(t, rec.calls)

	tr := c.HandleEvent(env, ClickEvent(2, 2))
	assert.Equal(t, TransPop, tr.Kind)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, fresh, rec.calls[0].args[0].Entity)
}

func TestCollectMultiselect(t *testing.T) {
	env, disp := newTestEnv()
	a, _ := env.Doc.AddPoint(sketch.Point{X: 0, Y: 0}, sketch.Black)
	b, _ := env.Doc.AddPoint(sketch.Point{X: 50, Y: 50}, sketch.Black)

	rec := &recorder{}
	c := newCollector(rec, ArgMultiselect)

	c.HandleEvent(env, PickEvent(a))
	c.HandleEvent(env, PickEvent(a))
	c.HandleEvent(env, ClickEvent(51, 49))
	assert.Equal(t, "cmd: multiselect 1/1 (2 picked)", disp.text)
	assert.Empty(t, rec.calls)

	tr := c.HandleEvent(env, ConfirmEvent())
	assert.Equal(t, TransPop, tr.Kind)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []Captured{MultiselectArg([]sketch.EntityID{a, b})}, rec.calls[0].args)
}

func TestCollectIgnoresWrongKindOfInput(t *testing.T) {
	env, _ := newTestEnv()
	id, _ := env.Doc.AddPoint(sketch.Point{X: 0, Y: 0}, sketch.Black)
	rec := &recorder{}
	c := newCollector(rec, ArgPoint)

	assert.Equal(t, TransNone, c.HandleEvent(env, PickEvent(id)).Kind)
	assert.Equal(t, 0, c.Next())
}

func TestCollectHandlerSignal(t *testing.T) {
	env, _ := newTestEnv()
	rec := &recorder{signal: Quit()}
	c := newCollector(rec, ArgPoint)
	assert.Equal(t, TransQuit, c.HandleEvent(env, ClickEvent(0, 0)).Kind)
	assert.Len(t, rec.calls, 1)
}
