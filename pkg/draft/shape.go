package draft

import (
	"math"

	"github.com/google/uuid"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// ID uniquely identifies a shape for its whole lifetime; edits replace
// the shape value but keep the ID.
type ID = uuid.UUID

// NewID returns a fresh shape identifier.
func NewID() ID {
	return uuid.New()
}

// Kind discriminates the shape variants.
type Kind int

const (
	KindLine Kind = iota
	KindRectangle
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Style carries stroke attributes. The geometry core treats it as
// opaque; only the renderer interprets it.
type Style struct {
	Stroke string
	Width  float64
	Dash   []float64
}

// DefaultStyle matches a fresh drawing session.
func DefaultStyle() Style {
	return Style{Stroke: "black", Width: 1}
}

// Shape is a tagged variant over line, rectangle, circle, and polygon.
// Shape values are never mutated in place; every edit produces a new
// value carrying the same ID, which is what makes undo a value swap.
type Shape struct {
	ID   ID
	Kind Kind

	// Line and rectangle extent. Rectangles are normalized so Start is
	// the min corner and End the max corner.
	Start geometry.Point
	End   geometry.Point

	// Circle geometry.
	Center geometry.Point
	Radius float64

	// Closed polygon vertices in drawing order. The slice is treated
	// as immutable; editing helpers copy it.
	Vertices []geometry.Point

	Style Style

	// Z is the insertion sequence assigned by the Set, used for
	// hit-test and snap tie-breaks.
	Z int
}

// NewLine builds a line shape with a fresh ID.
func NewLine(a, b geometry.Point, style Style) Shape {
	return Shape{ID: NewID(), Kind: KindLine, Start: a, End: b, Style: style}
}

// NewRectangle builds a rectangle from two opposite corners, given in
// any order.
func NewRectangle(a, b geometry.Point, style Style) Shape {
	return Shape{
		ID:    NewID(),
		Kind:  KindRectangle,
		Start: geometry.Pt(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		End:   geometry.Pt(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
		Style: style,
	}
}

// NewCircle builds a circle from its center and a point on the rim.
func NewCircle(center, rim geometry.Point, style Style) Shape {
	return Shape{
		ID:     NewID(),
		Kind:   KindCircle,
		Center: center,
		Radius: center.Distance(rim),
		Style:  style,
	}
}

// NewPolygon builds a closed polygon; the vertex slice is copied.
func NewPolygon(vertices []geometry.Point, style Style) Shape {
	vs := make([]geometry.Point, len(vertices))
	copy(vs, vertices)
	return Shape{ID: NewID(), Kind: KindPolygon, Vertices: vs, Style: style}
}

// Corners returns the rectangle corners clockwise from the min corner.
func (s Shape) Corners() []geometry.Point {
	return []geometry.Point{
		s.Start,
		geometry.Pt(s.End.X, s.Start.Y),
		s.End,
		geometry.Pt(s.Start.X, s.End.Y),
	}
}

// Endpoints returns the endpoint-kind snap targets of the shape: line
// ends, rectangle corners, polygon vertices, and the circle center.
func (s Shape) Endpoints() []geometry.Point {
	switch s.Kind {
	case KindLine:
		return []geometry.Point{s.Start, s.End}
	case KindRectangle:
		return s.Corners()
	case KindCircle:
		return []geometry.Point{s.Center}
	case KindPolygon:
		out := make([]geometry.Point, len(s.Vertices))
		copy(out, s.Vertices)
		return out
	default:
		return nil
	}
}

// Edges returns the segments making up the shape outline. Circles have
// none.
func (s Shape) Edges() []geometry.Segment {
	switch s.Kind {
	case KindLine:
		return []geometry.Segment{geometry.Seg(s.Start, s.End)}
	case KindRectangle:
		c := s.Corners()
		return []geometry.Segment{
			geometry.Seg(c[0], c[1]),
			geometry.Seg(c[1], c[2]),
			geometry.Seg(c[2], c[3]),
			geometry.Seg(c[3], c[0]),
		}
	case KindPolygon:
		n := len(s.Vertices)
		if n < 2 {
			return nil
		}
		edges := make([]geometry.Segment, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, geometry.Seg(s.Vertices[i], s.Vertices[(i+1)%n]))
		}
		return edges
	default:
		return nil
	}
}

// Midpoints returns the midpoint of every edge.
func (s Shape) Midpoints() []geometry.Point {
	edges := s.Edges()
	out := make([]geometry.Point, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Midpoint())
	}
	return out
}

// BBox returns the axis-aligned bounding box of the shape geometry.
func (s Shape) BBox() geometry.BBox {
	switch s.Kind {
	case KindCircle:
		return geometry.Circle{Center: s.Center, Radius: s.Radius}.BBox()
	case KindPolygon:
		if len(s.Vertices) == 0 {
			return geometry.BBox{}
		}
		box := geometry.BBox{Min: s.Vertices[0], Max: s.Vertices[0]}
		for _, v := range s.Vertices[1:] {
			box = box.Union(geometry.BBox{Min: v, Max: v})
		}
		return box
	default:
		return geometry.Seg(s.Start, s.End).BBox()
	}
}

// Translate returns a copy of the shape moved by (dx, dy), keeping the
// same ID.
func (s Shape) Translate(dx, dy float64) Shape {
	d := geometry.Pt(dx, dy)
	out := s
	switch s.Kind {
	case KindLine, KindRectangle:
		out.Start = s.Start.Add(d)
		out.End = s.End.Add(d)
	case KindCircle:
		out.Center = s.Center.Add(d)
	case KindPolygon:
		vs := make([]geometry.Point, len(s.Vertices))
		for i, v := range s.Vertices {
			vs[i] = v.Add(d)
		}
		out.Vertices = vs
	}
	return out
}

// WithStyle returns a copy of the shape with the given style.
func (s Shape) WithStyle(style Style) Shape {
	out := s
	out.Style = style
	return out
}

// DistanceTo returns the shortest distance from p to the shape
// outline, used for hit-testing.
func (s Shape) DistanceTo(p geometry.Point) float64 {
	if s.Kind == KindCircle {
		return math.Abs(s.Center.Distance(p) - s.Radius)
	}
	best := math.Inf(1)
	for _, e := range s.Edges() {
		if d := e.DistanceTo(p); d < best {
			best = d
		}
	}
	return best
}

// GeomEq reports whether two shapes have the same kind, geometry, and
// style within eps. IDs and Z are not compared.
func (s Shape) GeomEq(o Shape, eps float64) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KindCircle:
		if !s.Center.Eq(o.Center, eps) || !geometry.Eq(s.Radius, o.Radius, eps) {
			return false
		}
	case KindPolygon:
		if len(s.Vertices) != len(o.Vertices) {
			return false
		}
		for i := range s.Vertices {
			if !s.Vertices[i].Eq(o.Vertices[i], eps) {
				return false
			}
		}
	default:
		if !s.Start.Eq(o.Start, eps) || !s.End.Eq(o.End, eps) {
			return false
		}
	}
	return styleEq(s.Style, o.Style)
}

func styleEq(a, b Style) bool {
	if a.Stroke != b.Stroke || a.Width != b.Width || len(a.Dash) != len(b.Dash) {
		return false
	}
	for i := range a.Dash {
		if a.Dash[i] != b.Dash[i] {
			return false
		}
	}
	return true
}
