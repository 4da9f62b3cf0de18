// Package snap resolves the geometrically significant point nearest
// the cursor: shape endpoints, edge midpoints, and pairwise
// intersections. Resolution is read-only and recomputed per query, so
// it is safe to call on every pointer move.
package snap

import (
	"math"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// Kind classifies a snap candidate. Order matters: lower values win
// exact-distance ties, endpoints being the most intentional targets.
type Kind int

const (
	KindEndpoint Kind = iota
	KindMidpoint
	KindIntersection
)

func (k Kind) String() string {
	switch k {
	case KindEndpoint:
		return "endpoint"
	case KindMidpoint:
		return "midpoint"
	case KindIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Candidate is an ephemeral snap target; it is recomputed per query
// and never persisted.
type Candidate struct {
	Point   geometry.Point
	Kind    Kind
	Sources []draft.ID
}

// Options controls which candidate kinds participate and the screen
// tolerance in pixels.
type Options struct {
	Tolerance     float64
	Endpoints     bool
	Midpoints     bool
	Intersections bool
}

// DefaultOptions enables all snap kinds with a 10 px tolerance.
func DefaultOptions() Options {
	return Options{Tolerance: 10, Endpoints: true, Midpoints: true, Intersections: true}
}

// Transform maps world coordinates to screen coordinates. The UI
// camera implements it; Identity serves world-space callers.
type Transform interface {
	WorldToScreen(p geometry.Point) geometry.Point
}

// Identity is the no-op transform: world and screen coincide.
var Identity Transform = identity{}

type identity struct{}

func (identity) WorldToScreen(p geometry.Point) geometry.Point { return p }

// Resolve returns the best snap candidate within opts.Tolerance screen
// pixels of cursor, or false if none qualifies. A candidate at exactly
// the tolerance distance is included.
//
// Candidates at the same world point collapse into one before any
// ranking: an endpoint keeps its kind, otherwise a corroborating
// intersection outranks a midpoint, and source ids merge. The kind
// tie-break (endpoint > midpoint > intersection), then the lower Z of
// the first contributing shape, applies only to distinct points at
// identical distance.
func Resolve(cursor geometry.Point, set *draft.Set, opts Options, view Transform) (Candidate, bool) {
	if view == nil {
		view = Identity
	}
	shapes := set.Shapes()
	screenCursor := view.WorldToScreen(cursor)

	type scored struct {
		cand Candidate
		dist float64
		z    int
	}
	var pool []scored

	add := func(c Candidate, z int) {
		d := view.WorldToScreen(c.Point).Distance(screenCursor)
		if d > opts.Tolerance {
			return
		}
		for i := range pool {
			if pool[i].cand.Point.Eq(c.Point, geometry.Epsilon) {
				pool[i].cand.Kind = mergeKinds(pool[i].cand.Kind, c.Kind)
				pool[i].cand.Sources = mergeSources(pool[i].cand.Sources, c.Sources)
				if z < pool[i].z {
					pool[i].z = z
				}
				return
			}
		}
		pool = append(pool, scored{cand: c, dist: d, z: z})
	}

	for _, shape := range shapes {
		if opts.Endpoints {
			for _, p := range shape.Endpoints() {
				add(Candidate{Point: p, Kind: KindEndpoint, Sources: []draft.ID{shape.ID}}, shape.Z)
			}
		}
		if opts.Midpoints {
			for _, p := range shape.Midpoints() {
				add(Candidate{Point: p, Kind: KindMidpoint, Sources: []draft.ID{shape.ID}}, shape.Z)
			}
		}
	}

	if opts.Intersections {
		worldTol := worldTolerance(opts.Tolerance, view)
		for i := 0; i < len(shapes); i++ {
			boxA := shapes[i].BBox().Expand(worldTol)
			for j := i + 1; j < len(shapes); j++ {
				if !boxA.Overlaps(shapes[j].BBox().Expand(worldTol)) {
					continue
				}
				z := shapes[i].Z
				if shapes[j].Z < z {
					z = shapes[j].Z
				}
				for _, p := range Intersections(shapes[i], shapes[j], geometry.Epsilon) {
					add(Candidate{
						Point:   p,
						Kind:    KindIntersection,
						Sources: []draft.ID{shapes[i].ID, shapes[j].ID},
					}, z)
				}
			}
		}
	}

	var best scored
	found := false
	for _, s := range pool {
		switch {
		case !found,
			s.dist < best.dist-distTieEps,
			math.Abs(s.dist-best.dist) <= distTieEps && (s.cand.Kind < best.cand.Kind ||
				(s.cand.Kind == best.cand.Kind && s.z < best.z)):
			best = s
			found = true
		}
	}
	return best.cand, found
}

// mergeKinds ranks coincident candidates: an endpoint is the most
// intentional target, and a point corroborated by an intersection
// outranks a plain midpoint.
func mergeKinds(a, b Kind) Kind {
	if a == KindEndpoint || b == KindEndpoint {
		return KindEndpoint
	}
	if a == KindIntersection || b == KindIntersection {
		return KindIntersection
	}
	return KindMidpoint
}

func mergeSources(dst, src []draft.ID) []draft.ID {
	for _, id := range src {
		seen := false
		for _, have := range dst {
			if have == id {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, id)
		}
	}
	return dst
}

// distTieEps separates genuinely closer candidates from exact ties in
// screen space.
const distTieEps = 1e-9

// worldTolerance converts the screen tolerance to world units by
// probing the transform's scale along one axis. Cameras scale
// uniformly, so one probe suffices.
func worldTolerance(screenTol float64, view Transform) float64 {
	a := view.WorldToScreen(geometry.Pt(0, 0))
	b := view.WorldToScreen(geometry.Pt(1, 0))
	scale := a.Distance(b)
	if scale <= 0 {
		return screenTol
	}
	return screenTol / scale
}

// Intersections returns all intersection points between two shapes.
// The result is symmetric in its arguments; degenerate configurations
// (coincident circles, zero-length edges) contribute nothing.
func Intersections(a, b draft.Shape, eps float64) []geometry.Point {
	var pts []geometry.Point

	switch {
	case a.Kind == draft.KindCircle && b.Kind == draft.KindCircle:
		circle := func(s draft.Shape) geometry.Circle {
			return geometry.Circle{Center: s.Center, Radius: s.Radius}
		}
		got, ok := geometry.CircleCircle(circle(a), circle(b), eps)
		if !ok {
			return nil
		}
		pts = got

	case a.Kind == draft.KindCircle:
		c := geometry.Circle{Center: a.Center, Radius: a.Radius}
		for _, e := range b.Edges() {
			pts = append(pts, geometry.SegmentCircle(e, c, eps)...)
		}

	case b.Kind == draft.KindCircle:
		return Intersections(b, a, eps)

	default:
		for _, ea := range a.Edges() {
			for _, eb := range b.Edges() {
				if p, ok := geometry.SegmentSegment(ea, eb, eps); ok {
					pts = append(pts, p)
				}
			}
		}
	}

	return dedup(pts, eps)
}

// dedup collapses near-identical points; adjacent polygon edges meet
// at shared vertices and would otherwise double-report.
func dedup(pts []geometry.Point, eps float64) []geometry.Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:0]
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Eq(q, eps) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
