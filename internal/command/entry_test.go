package command

import (
	"testing"

	"github.com/appengine-ltd/pretender/internal/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	text  string
	echos []rune
}

func (d *recordingDisplay) Append(r rune) {
	d.text += string(r)
	d.echos = append(d.echos, r)
}

func (d *recordingDisplay) SetText(s string) { d.text = s }

type call struct {
	args []Captured
}

type recorder struct {
	calls  []call
	signal Signal
}

func (r *recorder) Run(_ *Env, args []Captured) Signal {
	r.calls = append(r.calls, call{args: args})
	return r.signal
}

func newTestEnv() (*Env, *recordingDisplay) {
	disp := &recordingDisplay{}
	return &Env{Doc: sketch.NewDocument(), Display: disp, PickTolerance: 3}, disp
}

func typeText(t *testing.T, st State, env *Env, text string) {
	t.Helper()
	for _, r := range text {
		tr := st.HandleEvent(env, CharEvent(r))
		require.Equal(t, TransNone, tr.Kind)
	}
}

func TestEntryAccumulatesAndEchoes(t *testing.T) {
	env, disp := newTestEnv()
	e := NewEntry(NewRegistry(nil), "l")
	e.OnStart(env)
	assert.Equal(t, "l", disp.text)

	typeText(t, e, env, "ine2")
	assert.Equal(t, "line2", e.Text())
	assert.Equal(t, "line2", disp.text)
	assert.Equal(t, []rune("ine2"), disp.echos)
}

func TestEntryIgnoresNonAlphanumeric(t *testing.T) {
	env, disp := newTestEnv()
	e := NewEntry(NewRegistry(nil), "L-")
	for _, r := range []rune{'-', 'X', ' ', 0} {
		tr := e.HandleEvent(env, CharEvent(r))
		assert.Equal(t, TransNone, tr.Kind)
	}
	assert.Equal(t, "", e.Text())
	assert.Empty(t, disp.echos)
}

func TestEntryUnknownCommandPops(t *testing.T) {
	env, _ := newTestEnv()
	reg := NewRegistry(nil)
	rec := &recorder{}
	reg.Add("line", NewBuilder().Name("line").Handler(rec).Build())

	e := NewEntry(reg, "lnie")
	tr := e.HandleEvent(env, ConfirmEvent())
	assert.Equal(t, TransPop, tr.Kind)
	assert.Empty(t, rec.calls)
}

func TestEntryZeroArgumentDispatch(t *testing.T) {
	env, _ := newTestEnv()
	reg := NewRegistry(nil)
	rec := &recorder{signal: Continue()}
	reg.Register(NewBuilder().Name("layer").Handler(rec).Build(), "la")

	e := NewEntry(reg, "la")
	tr := e.HandleEvent(env, ConfirmEvent())

	assert.Equal(t, TransPop, tr.Kind, "handler runs and the entry terminates")
	require.Len(t, rec.calls, 1)
	assert.NotNil(t, rec.calls[0].args)
	assert.Empty(t, rec.calls[0].args)
}

func TestEntryHandsOffToCollector(t *testing.T) {
	env, _ := newTestEnv()
	reg := NewRegistry(nil)
	rec := &recorder{}
	reg.Add("line", NewBuilder().Name("line").Args(ArgPoint, ArgPoint).Handler(rec).Build())

	e := NewEntry(reg, "line")
	tr := e.HandleEvent(env, ConfirmEvent())

	require.Equal(t, TransReplace, tr.Kind)
	c, ok := tr.State.(*Collector)
	require.True(t, ok)
	assert.Equal(t, 0, c.Next())
	assert.Empty(t, rec.calls)
}

func TestEntryCancelAndClose(t *testing.T) {
	env, _ := newTestEnv()
	reg := NewRegistry(nil)
	rec := &recorder{}
	reg.Add("quit", NewBuilder().Name("quit").Handler(rec).Build())

	e := NewEntry(reg, "quit")
	assert.Equal(t, TransPop, e.HandleEvent(env, CancelEvent()).Kind)
	assert.Equal(t, TransQuit, e.HandleEvent(env, CloseEvent()).Kind)
	assert.Empty(t, rec.calls)
}

func TestEntryHandlerSignals(t *testing.T) {
	next := NewEntry(NewRegistry(nil), "")
	tests := []struct {
		name   string
		signal Signal
		want   TransKind
	}{
		{"continue", Continue(), TransPop},
		{"pop", Done(), TransPop},
		{"quit", Quit(), TransQuit},
		{"replace", ReplaceWith(next), TransReplace},
		{"replace nothing", ReplaceWith(nil), TransPop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, _ := newTestEnv()
			reg := NewRegistry(nil)
			reg.Add("go", NewBuilder().Name("go").Handler(&recorder{signal: tc.signal}).Build())
			tr := NewEntry(reg, "go").HandleEvent(env, ConfirmEvent())
			assert.Equal(t, tc.want, tr.Kind)
			if tc.want == TransReplace {
				assert.Same(t, next, tr.State)
			}
		})
	}
}
