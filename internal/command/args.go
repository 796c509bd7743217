package command

import "github.com/appengine-ltd/pretender/internal/sketch"

// ArgKind is the type of value a command asks the user for before it runs.
type ArgKind int

const (
	ArgPoint ArgKind = iota
	ArgSelect
	ArgMultiselect
)

func (k ArgKind) String() string {
	switch k {
	case ArgPoint:
		return "point"
	case ArgSelect:
		return "select"
	case ArgMultiselect:
		return "multiselect"
	default:
		return "unknown"
	}
}

// Captured is the value gathered for one declared argument. Only the field
// matching Kind is set.
type Captured struct {
	Kind     ArgKind
	Point    sketch.Point
	Entity   sketch.EntityID
	Entities []sketch.EntityID
}

func PointArg(p sketch.Point) Captured {
	return Captured{Kind: ArgPoint, Point: p}
}

func SelectArg(id sketch.EntityID) Captured {
	return Captured{Kind: ArgSelect, Entity: id}
}

func MultiselectArg(ids []sketch.EntityID) Captured {
	return Captured{Kind: ArgMultiselect, Entities: append([]sketch.EntityID(nil), ids...)}
}
