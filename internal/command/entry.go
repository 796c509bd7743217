package command

import (
	"go.uber.org/zap"
)

// Entry accumulates a typed command name. On confirm it either runs a
// command that takes no arguments or hands over to a Collector.
type Entry struct {
	registry *Registry
	text     []rune
}

func NewEntry(registry *Registry, initial string) *Entry {
	e := &Entry{registry: registry}
	for _, r := range initial {
		if IsCommandChar(r) {
			e.text = append(e.text, r)
		}
	}
	return e
}

func (e *Entry) Text() string { return string(e.text) }

func (e *Entry) OnStart(env *Env) {
	env.display().SetText(e.Text())
}

func (e *Entry) OnStop(env *Env) {
	env.display().SetText("")
}

func (e *Entry) HandleEvent(env *Env, ev Event) Trans {
	switch ev.Kind {
	case EventClose:
		return QuitApp()
	case EventKey:
		switch ev.Confirm {
		case ConfirmYes:
			return e.confirm(env)
		case ConfirmNo:
			env.Logger().Debug("command entry cancelled", zap.String("text", e.Text()))
			return PopState()
		}
		if IsCommandChar(ev.Char) {
			e.text = append(e.text, ev.Char)
			env.display().Append(ev.Char)
		}
	}
	return Stay()
}

func (e *Entry) confirm(env *Env) Trans {
	log := env.Logger()
	name := e.Text()
	desc, ok := e.registry.Get(name)
	if !ok {
		fields := []zap.Field{zap.String("text", name)}
		if s, found := e.registry.Suggest(name); found {
			fields = append(fields, zap.String("suggest", s))
		}
		log.Info("unknown command", fields...)
		return PopState()
	}
	if desc.NumArgs() == 0 {
		log.Info("run command", zap.String("command", desc.Name()))
		return finish(desc.Handler().Run(env, []Captured{}))
	}
	return ReplaceState(NewCollector(desc))
}

// IsCommandChar reports whether r can be part of a typed command name.
func IsCommandChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
