// Package editor wires the sketch document, the command registry and the
// interaction stack into one editing session.
package editor

import (
	"sort"

	"github.com/appengine-ltd/pretender/internal/command"
	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/appengine-ltd/pretender/internal/sketch"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Root is the bottom of the interaction stack. Typing a letter or digit opens
// command entry seeded with it; cancel or close ends the session.
type Root struct {
	registry *command.Registry
}

func NewRoot(reg *command.Registry) *Root {
	return &Root{registry: reg}
}

func (r *Root) HandleEvent(_ *command.Env, ev command.Event) command.Trans {
	switch ev.Kind {
	case command.EventClose:
		return command.QuitApp()
	case command.EventKey:
		if ev.Confirm == command.ConfirmNo {
			return command.QuitApp()
		}
		if command.IsCommandChar(ev.Char) {
			return command.PushState(command.NewEntry(r.registry, string(ev.Char)))
		}
	}
	return command.Stay()
}

type Session struct {
	ID       uuid.UUID
	Doc      *sketch.Document
	Registry *command.Registry

	env   *command.Env
	stack *command.Stack
	log   *zap.Logger
}

func NewSession(cfg config.Config, log *zap.Logger, display command.Display) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.New()
	log = log.With(zap.String("session", id.String()))

	reg := command.NewRegistry(log.Named("commands"))
	Register(reg, OptionsFrom(cfg.Editor))

	aliases := make([]string, 0, len(cfg.Editor.Aliases))
	for a := range cfg.Editor.Aliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		reg.Alias(a, cfg.Editor.Aliases[a])
	}

	s := &Session{
		ID:       id,
		Doc:      sketch.NewDocument(),
		Registry: reg,
		log:      log,
	}
	s.env = &command.Env{
		Doc:           s.Doc,
		Log:           log,
		Display:       display,
		PickTolerance: cfg.Editor.PickTolerance,
	}
	s.stack = command.NewStack(s.env, NewRoot(reg))
	log.Info("session started", zap.Strings("commands", reg.Names()))
	return s
}

// Dispatch delivers one event and reports whether the session is still running.
func (s *Session) Dispatch(ev command.Event) bool {
	running := s.stack.Dispatch(ev)
	if !running {
		s.log.Info("session ended")
	}
	return running
}

// Play dispatches events until they run out or the session ends, and returns
// how many were consumed.
func (s *Session) Play(events []command.Event) int {
	for i, ev := range events {
		if !s.Dispatch(ev) {
			return i + 1
		}
	}
	return len(events)
}

func (s *Session) Running() bool { return s.stack.Running() }

// Active is the interaction currently receiving events.
func (s *Session) Active() command.State { return s.stack.Top() }
