package command

import (
	"github.com/appengine-ltd/pretender/internal/sketch"
	"go.uber.org/zap"
)

type EventKind int

const (
	EventKey EventKind = iota
	EventClick
	EventPick
	EventClose
)

type Confirm int

const (
	ConfirmNone Confirm = iota
	ConfirmYes
	ConfirmNo
)

// Event is one classified input from the host. For EventKey, Char is the
// alphanumeric character the key produced (0 if none) and Confirm says whether
// the key confirms or cancels.
type Event struct {
	Kind    EventKind
	Char    rune
	Confirm Confirm
	Point   sketch.Point
	Entity  sketch.EntityID
}

func CharEvent(c rune) Event             { return Event{Kind: EventKey, Char: c} }
func ConfirmEvent() Event                { return Event{Kind: EventKey, Confirm: ConfirmYes} }
func CancelEvent() Event                 { return Event{Kind: EventKey, Confirm: ConfirmNo} }
func ClickEvent(x, y float64) Event      { return Event{Kind: EventClick, Point: sketch.Point{X: x, Y: y}} }
func PickEvent(id sketch.EntityID) Event { return Event{Kind: EventPick, Entity: id} }
func CloseEvent() Event                  { return Event{Kind: EventClose} }

// Display is the text surface that echoes what the user is typing.
type Display interface {
	Append(r rune)
	SetText(s string)
}

type nopDisplay struct{}

func (nopDisplay) Append(rune)    {}
func (nopDisplay) SetText(string) {}

// Env is the per-session state handlers and interaction states work on.
type Env struct {
	Doc           *sketch.Document
	Log           *zap.Logger
	Display       Display
	PickTolerance float64
}

func (e *Env) display() Display {
	if e == nil || e.Display == nil {
		return nopDisplay{}
	}
	return e.Display
}

// Logger never returns nil.
func (e *Env) Logger() *zap.Logger {
	if e == nil || e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

type TransKind int

const (
	TransNone TransKind = iota
	TransPush
	TransReplace
	TransPop
	TransQuit
)

func (k TransKind) String() string {
	switch k {
	case TransNone:
		return "none"
	case TransPush:
		return "push"
	case TransReplace:
		return "replace"
	case TransPop:
		return "pop"
	case TransQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Trans is a state-stack operation requested by the active state.
type Trans struct {
	Kind  TransKind
	State State
}

func Stay() Trans                { return Trans{Kind: TransNone} }
func PushState(s State) Trans    { return Trans{Kind: TransPush, State: s} }
func ReplaceState(s State) Trans { return Trans{Kind: TransReplace, State: s} }
func PopState() Trans            { return Trans{Kind: TransPop} }
func QuitApp() Trans             { return Trans{Kind: TransQuit} }

// State is one interaction on the host's stack. Only the top state receives
// events.
type State interface {
	HandleEvent(env *Env, ev Event) Trans
}

// Starter is implemented by states that react to becoming active.
type Starter interface {
	OnStart(env *Env)
}

// Stopper is implemented by states that react to leaving the stack.
type Stopper interface {
	OnStop(env *Env)
}

// finish turns a handler's signal into the transition that ends the
// interaction that ran it.
func finish(sig Signal) Trans {
	switch sig.Kind {
	case SignalQuit:
		return QuitApp()
	case SignalReplace:
		if sig.Next != nil {
			return ReplaceState(sig.Next)
		}
	}
	return PopState()
}

// Stack is a host-side state stack. It delivers each event to the top state
// and applies the transition it returns.
type Stack struct {
	env    *Env
	states []State
	quit   bool
}

func NewStack(env *Env, root State) *Stack {
	s := &Stack{env: env}
	if root != nil {
		s.states = append(s.states, root)
		start(env, root)
	}
	return s
}

func (s *Stack) Running() bool { return !s.quit && len(s.states) > 0 }

func (s *Stack) Depth() int { return len(s.states) }

func (s *Stack) Top() State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

// Dispatch hands ev to the top state and reports whether the stack is still
// running afterwards.
func (s *Stack) Dispatch(ev Event) bool {
	top := s.Top()
	if s.quit || top == nil {
		return false
	}
	s.Apply(top.HandleEvent(s.env, ev))
	return s.Running()
}

func (s *Stack) Apply(t Trans) {
	switch t.Kind {
	case TransPush:
		if t.State == nil {
			return
		}
		s.states = append(s.states, t.State)
		start(s.env, t.State)
	case TransReplace:
		if t.State == nil {
			s.pop()
			return
		}
		if len(s.states) == 0 {
			s.states = append(s.states, t.State)
		} else {
			stop(s.env, s.Top())
			s.states[len(s.states)-1] = t.State
		}
		start(s.env, t.State)
	case TransPop:
		s.pop()
	case TransQuit:
		for len(s.states) > 0 {
			s.pop()
		}
		s.quit = true
	}
}

func (s *Stack) pop() {
	if len(s.states) == 0 {
		return
	}
	stop(s.env, s.Top())
	s.states[len(s.states)-1] = nil
	s.states = s.states[:len(s.states)-1]
}

func start(env *Env, st State) {
	if v, ok := st.(Starter); ok {
		v.OnStart(env)
	}
}

func stop(env *Env, st State) {
	if v, ok := st.(Stopper); ok {
		v.OnStop(env)
	}
}
