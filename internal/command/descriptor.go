package command

// SignalKind is what a handler asks the interaction to do once it has run.
type SignalKind int

const (
	SignalContinue SignalKind = iota
	SignalPop
	SignalReplace
	SignalQuit
)

type Signal struct {
	Kind SignalKind
	// Next is the interaction that takes over on SignalReplace.
	Next State
}

func Continue() Signal           { return Signal{Kind: SignalContinue} }
func Done() Signal               { return Signal{Kind: SignalPop} }
func ReplaceWith(s State) Signal { return Signal{Kind: SignalReplace, Next: s} }
func Quit() Signal               { return Signal{Kind: SignalQuit} }

// Handler runs a command once all of its declared arguments are captured.
type Handler interface {
	Run(env *Env, args []Captured) Signal
}

type HandlerFunc func(env *Env, args []Captured) Signal

func (f HandlerFunc) Run(env *Env, args []Captured) Signal { return f(env, args) }

// Descriptor is an immutable command definition. Build one with NewBuilder.
type Descriptor struct {
	name    string
	args    []ArgKind
	handler Handler
}

func (d *Descriptor) Name() string { return d.name }

// Args returns the declared argument kinds in the order they are collected.
func (d *Descriptor) Args() []ArgKind {
	return append([]ArgKind(nil), d.args...)
}

func (d *Descriptor) NumArgs() int { return len(d.args) }

func (d *Descriptor) Handler() Handler { return d.handler }

type Builder struct {
	name    string
	args    []ArgKind
	handler Handler
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Name(name string) *Builder {
	b.name = normaliseName(name)
	return b
}

func (b *Builder) Arg(kind ArgKind) *Builder {
	b.args = append(b.args, kind)
	return b
}

func (b *Builder) Args(kinds ...ArgKind) *Builder {
	b.args = append(b.args, kinds...)
	return b
}

func (b *Builder) Handler(h Handler) *Builder {
	b.handler = h
	return b
}

func (b *Builder) HandlerFunc(fn func(env *Env, args []Captured) Signal) *Builder {
	if fn == nil {
		b.handler = nil
		return b
	}
	return b.Handler(HandlerFunc(fn))
}

// Build panics when the name or the handler is missing; that is a mistake in
// command registration, not something a user can trigger.
func (b *Builder) Build() *Descriptor {
	if b.name == "" {
		panic("command: descriptor has no name")
	}
	if b.handler == nil {
		panic("command: descriptor " + b.name + " has no handler")
	}
	return &Descriptor{
		name:    b.name,
		args:    append([]ArgKind(nil), b.args...),
		handler: b.handler,
	}
}
