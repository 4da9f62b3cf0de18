// Package dimension derives measurement annotations (length, radius,
// angle) from shape geometry. All measurements are pure functions of
// their inputs; the cache in cache.go is an advisory memoization
// layer, never a source of truth.
package dimension

import (
	"fmt"
	"math"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// Kind classifies a measurement.
type Kind int

const (
	KindLength Kind = iota
	KindRadius
	KindAngle
)

func (k Kind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindRadius:
		return "radius"
	case KindAngle:
		return "angle"
	default:
		return "unknown"
	}
}

// Dimension is a derived measurement annotation. Anchors position the
// leader lines: two points for a length, center plus rim point for a
// radius, vertex plus one point per ray for an angle.
type Dimension struct {
	Kind    Kind
	Value   float64
	Anchors []geometry.Point
	Label   string
}

// Measure derives the dimensions of a single shape: length for a
// line, width and height for a rectangle, radius for a circle, edge
// lengths plus the perimeter for a polygon.
func Measure(s draft.Shape) []Dimension {
	switch s.Kind {
	case draft.KindLine:
		return []Dimension{Between(s.Start, s.End)}

	case draft.KindRectangle:
		w := s.End.X - s.Start.X
		h := s.End.Y - s.Start.Y
		return []Dimension{
			lengthDim(w, s.Start, geometry.Pt(s.End.X, s.Start.Y)),
			lengthDim(h, geometry.Pt(s.End.X, s.Start.Y), s.End),
		}

	case draft.KindCircle:
		rim := geometry.Pt(s.Center.X+s.Radius, s.Center.Y)
		return []Dimension{{
			Kind:    KindRadius,
			Value:   s.Radius,
			Anchors: []geometry.Point{s.Center, rim},
			Label:   fmt.Sprintf("R%.2f", s.Radius),
		}}

	case draft.KindPolygon:
		edges := s.Edges()
		if len(edges) == 0 {
			return nil
		}
		dims := make([]Dimension, 0, len(edges)+1)
		var perimeter float64
		for _, e := range edges {
			dims = append(dims, Between(e.A, e.B))
			perimeter += e.Length()
		}
		first := edges[0].A
		dims = append(dims, Dimension{
			Kind:    KindLength,
			Value:   perimeter,
			Anchors: []geometry.Point{first, first},
			Label:   fmt.Sprintf("P=%.2f", perimeter),
		})
		return dims

	default:
		return nil
	}
}

// Between measures the distance between two points, e.g. two snap
// candidates picked by the user.
func Between(a, b geometry.Point) Dimension {
	return lengthDim(a.Distance(b), a, b)
}

// Angle measures the angle at vertex between the rays toward a and b,
// in degrees within [0, 180]. A zero-length ray is degenerate and
// reports no result.
func Angle(vertex, a, b geometry.Point) (Dimension, bool) {
	ra := a.Sub(vertex)
	rb := b.Sub(vertex)
	la := math.Hypot(ra.X, ra.Y)
	lb := math.Hypot(rb.X, rb.Y)
	if geometry.Eq(la, 0, geometry.Epsilon) || geometry.Eq(lb, 0, geometry.Epsilon) {
		return Dimension{}, false
	}

	cos := (ra.X*rb.X + ra.Y*rb.Y) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	deg := math.Acos(cos) * 180 / math.Pi

	return Dimension{
		Kind:    KindAngle,
		Value:   deg,
		Anchors: []geometry.Point{vertex, a, b},
		Label:   fmt.Sprintf("%.1f°", deg),
	}, true
}

func lengthDim(v float64, a, b geometry.Point) Dimension {
	return Dimension{
		Kind:    KindLength,
		Value:   v,
		Anchors: []geometry.Point{a, b},
		Label:   fmt.Sprintf("%.2f", v),
	}
}
