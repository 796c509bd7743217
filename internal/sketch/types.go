package sketch

import (
	"math"

	"github.com/appengine-ltd/pretender/internal/slot"
)

type (
	LayerID    = slot.Handle[Layer]
	LineTypeID = slot.Handle[LineType]
	EntityID   = slot.Handle[Entity]
)

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Magenta = Color{234, 65, 212}
)

// LineType decides, for a position along a line scaled by the line's scale,
// whether that position is inked.
type LineType struct {
	Name    string
	Pattern func(position, scale float64) bool
}

func (lt LineType) Draws(position, scale float64) bool {
	if lt.Pattern == nil {
		return true
	}
	return lt.Pattern(position, scale)
}

func Continuous(_, _ float64) bool { return true }

// Hidden alternates inked and blank unit runs.
func Hidden(position, scale float64) bool {
	return int(math.Floor(position*scale))%2 == 0
}

type Layer struct {
	Name     string
	Color    Color
	LineType LineTypeID
	Hidden   bool
	Frozen   bool
	Locked   bool
}

type EntityKind int

const (
	KindPoint EntityKind = iota
	KindLine
)

func (k EntityKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Entity is a drawn object. Points only use Start.
type Entity struct {
	Kind   EntityKind
	Start  Point
	End    Point
	Layer  LayerID
	Color  Color
	Weight float64
	Scale  float64
}
