package editor

import (
	"fmt"

	"github.com/appengine-ltd/pretender/internal/command"
	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/appengine-ltd/pretender/internal/sketch"
	"go.uber.org/zap"
)

// Options carries the drawing defaults built-in commands apply to new entities.
type Options struct {
	LineColor  sketch.Color
	LineWeight float64
}

func OptionsFrom(c config.EditorConfig) Options {
	return Options{
		LineColor:  sketch.Color{R: c.LineColor.R, G: c.LineColor.G, B: c.LineColor.B},
		LineWeight: c.LineWeight,
	}
}

type builtin struct {
	desc    *command.Descriptor
	aliases []string
}

func builtins(opts Options) []builtin {
	return []builtin{
		{
			desc: command.NewBuilder().Name("quit").
				HandlerFunc(func(*command.Env, []command.Captured) command.Signal { return command.Quit() }).
				Build(),
			aliases: []string{"q", "exit"},
		},
		{
			desc: command.NewBuilder().Name("line").
				Args(command.ArgPoint, command.ArgPoint).
				HandlerFunc(opts.line).
				Build(),
			aliases: []string{"l"},
		},
		{
			desc: command.NewBuilder().Name("point").
				Arg(command.ArgPoint).
				HandlerFunc(opts.point).
				Build(),
			aliases: []string{"p", "po"},
		},
		{
			desc: command.NewBuilder().Name("erase").
				Arg(command.ArgMultiselect).
				HandlerFunc(erase).
				Build(),
			aliases: []string{"e", "del"},
		},
		{
			desc: command.NewBuilder().Name("move").
				Args(command.ArgSelect, command.ArgPoint, command.ArgPoint).
				HandlerFunc(move).
				Build(),
			aliases: []string{"m"},
		},
		{
			desc: command.NewBuilder().Name("hide").
				Arg(command.ArgSelect).
				HandlerFunc(hide).
				Build(),
			aliases: []string{"h"},
		},
		{
			desc: command.NewBuilder().Name("layer").
				HandlerFunc(newLayer).
				Build(),
			aliases: []string{"la"},
		},
		{
			desc: command.NewBuilder().Name("show").
				HandlerFunc(showAll).
				Build(),
			aliases: []string{"unhide", "sh"},
		},
		{
			desc: command.NewBuilder().Name("freeze").
				Arg(command.ArgSelect).
				HandlerFunc(freeze).
				Build(),
			aliases: []string{"fr"},
		},
		{
			desc: command.NewBuilder().Name("lock").
				Arg(command.ArgSelect).
				HandlerFunc(lock).
				Build(),
			aliases: []string{"lk"},
		},
		{
			desc: command.NewBuilder().Name("layerdel").
				Arg(command.ArgSelect).
				HandlerFunc(deleteLayer).
				Build(),
			aliases: []string{"ld"},
		},
		{
			desc: command.NewBuilder().Name("change").
				Arg(command.ArgSelect).
				HandlerFunc(change).
				Build(),
			aliases: []string{"ch"},
		},
	}
}

// Register installs the built-in commands and their aliases.
func Register(reg *command.Registry, opts Options) {
	for _, b := range builtins(opts) {
		reg.Register(b.desc, b.aliases...)
	}
}

func (o Options) line(env *command.Env, args []command.Captured) command.Signal {
	id, err := env.Doc.AddLine(args[0].Point, args[1].Point, o.LineColor, o.LineWeight)
	if err != nil {
		env.Logger().Warn("line not drawn", zap.Error(err))
		return command.Done()
	}
	env.Logger().Debug("line drawn", zap.Stringer("entity", id))
	return command.Done()
}

func (o Options) point(env *command.Env, args []command.Captured) command.Signal {
	if _, err := env.Doc.AddPoint(args[0].Point, o.LineColor); err != nil {
		env.Logger().Warn("point not drawn", zap.Error(err))
	}
	return command.Done()
}

func erase(env *command.Env, args []command.Captured) command.Signal {
	n := env.Doc.Erase(args[0].Entities)
	env.Logger().Info("erased", zap.Int("count", n), zap.Int("picked", len(args[0].Entities)))
	return command.Done()
}

// move translates the selected entity by the vector from the base point to
// the destination point.
func move(env *command.Env, args []command.Captured) command.Signal {
	from, to := args[1].Point, args[2].Point
	if err := env.Doc.Move(args[0].Entity, to.X-from.X, to.Y-from.Y); err != nil {
		env.Logger().Warn("move failed", zap.Error(err))
	}
	return command.Done()
}

func hide(env *command.Env, args []command.Captured) command.Signal {
	hidden, err := env.Doc.ToggleHidden(args[0].Entity)
	if err != nil {
		env.Logger().Warn("hide failed", zap.Error(err))
		return command.Done()
	}
	env.Logger().Info("layer visibility", zap.Bool("hidden", hidden))
	return command.Done()
}

func newLayer(env *command.Env, _ []command.Captured) command.Signal {
	name := fmt.Sprintf("layer%d", env.Doc.Layers.Len())
	id := env.Doc.AddLayer(name, sketch.Black)
	if err := env.Doc.SetCurrentLayer(id); err != nil {
		env.Logger().Warn("layer not made current", zap.Error(err))
		return command.Done()
	}
	env.Logger().Info("layer created", zap.String("name", name), zap.Stringer("layer", id))
	return command.Done()
}

func showAll(env *command.Env, _ []command.Captured) command.Signal {
	n := env.Doc.ShowAll()
	env.Logger().Info("layers shown", zap.Int("count", n))
	return command.Done()
}

func freeze(env *command.Env, args []command.Captured) command.Signal {
	frozen, err := env.Doc.ToggleFrozen(args[0].Entity)
	if err != nil {
		env.Logger().Warn("freeze failed", zap.Error(err))
		return command.Done()
	}
	env.Logger().Info("layer frozen", zap.Bool("frozen", frozen))
	return command.Done()
}

func lock(env *command.Env, args []command.Captured) command.Signal {
	locked, err := env.Doc.ToggleLocked(args[0].Entity)
	if err != nil {
		env.Logger().Warn("lock failed", zap.Error(err))
		return command.Done()
	}
	env.Logger().Info("layer locked", zap.Bool("locked", locked))
	return command.Done()
}

// deleteLayer drops the layer the selected entity is drawn on, with everything
// on it.
func deleteLayer(env *command.Env, args []command.Captured) command.Signal {
	e, ok := env.Doc.Entities.Get(args[0].Entity)
	if !ok {
		env.Logger().Warn("layer not deleted", zap.Error(sketch.ErrNoEntity))
		return command.Done()
	}
	layer := e.Layer
	n, err := env.Doc.RemoveLayer(layer)
	if err != nil {
		env.Logger().Warn("layer not deleted", zap.Error(err))
		return command.Done()
	}
	env.Logger().Info("layer deleted", zap.Stringer("layer", layer), zap.Int("erased", n))
	return command.Done()
}

// change moves the selected entity onto the current layer.
func change(env *command.Env, args []command.Captured) command.Signal {
	id, err := env.Doc.Relayer(args[0].Entity)
	if err != nil {
		env.Logger().Warn("change failed", zap.Error(err))
		return command.Done()
	}
	env.Logger().Info("entity changed", zap.Stringer("from", args[0].Entity), zap.Stringer("entity", id))
	return command.Done()
}
