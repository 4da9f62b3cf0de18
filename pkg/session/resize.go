package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/history"
)

// ErrNoHandle reports a handle index that does not exist on the shape.
var ErrNoHandle = errors.New("handle out of range")

// ResizeHandles returns the draggable grip points of a shape: line
// ends, rectangle corners, polygon vertices, and for circles the four
// compass points on the rim.
func ResizeHandles(s draft.Shape) []geometry.Point {
	if s.Kind == draft.KindCircle {
		return []geometry.Point{
			geometry.Pt(s.Center.X+s.Radius, s.Center.Y),
			geometry.Pt(s.Center.X, s.Center.Y+s.Radius),
			geometry.Pt(s.Center.X-s.Radius, s.Center.Y),
			geometry.Pt(s.Center.X, s.Center.Y-s.Radius),
		}
	}
	return s.Endpoints()
}

// HandleAt returns the selected shape and handle index under p, probed
// at the same screen tolerance as HitTest. Later selection entries are
// probed first so overlapping handles resolve to the most recent pick.
func (s *Session) HandleAt(p geometry.Point) (draft.ID, int, bool) {
	tol := s.worldHitTolerance()
	for i := len(s.selection) - 1; i >= 0; i-- {
		id := s.selection[i]
		shape, err := s.set.Get(id)
		if err != nil {
			continue
		}
		for h, grip := range ResizeHandles(shape) {
			if grip.Distance(p) <= tol {
				return id, h, true
			}
		}
	}
	return draft.ID{}, 0, false
}

// ResizeSelected drags one handle of a shape to the given point as a
// single undoable edit. Lines move the grabbed end, rectangles keep
// the opposite corner fixed and renormalize, circles take the new
// center-to-point distance as radius, and polygons move the grabbed
// vertex. Degenerate results leave the set untouched and report
// ErrDegenerateGeometry.
func (s *Session) ResizeSelected(id draft.ID, handle int, to geometry.Point) error {
	prior, err := s.set.Get(id)
	if err != nil {
		return err
	}
	next, err := resizeShape(prior, handle, to)
	if err != nil {
		return err
	}
	if err := s.history.Execute(history.ModifyShape{ID: id, Prior: prior, Next: next}); err != nil {
		return fmt.Errorf("resize %s: %w", id, err)
	}
	return nil
}

func resizeShape(prior draft.Shape, handle int, to geometry.Point) (draft.Shape, error) {
	next := prior
	switch prior.Kind {
	case draft.KindLine:
		switch handle {
		case 0:
			next.Start = to
		case 1:
			next.End = to
		default:
			return draft.Shape{}, ErrNoHandle
		}
		if next.Start.Eq(next.End, geometry.Epsilon) {
			return draft.Shape{}, ErrDegenerateGeometry
		}

	case draft.KindRectangle:
		corners := prior.Corners()
		if handle < 0 || handle >= len(corners) {
			return draft.Shape{}, ErrNoHandle
		}
		anchor := corners[(handle+2)%len(corners)]
		if geometry.Eq(anchor.X, to.X, geometry.Epsilon) ||
			geometry.Eq(anchor.Y, to.Y, geometry.Epsilon) {
			return draft.Shape{}, ErrDegenerateGeometry
		}
		next.Start = geometry.Pt(math.Min(anchor.X, to.X), math.Min(anchor.Y, to.Y))
		next.End = geometry.Pt(math.Max(anchor.X, to.X), math.Max(anchor.Y, to.Y))

	case draft.KindCircle:
		if handle < 0 || handle >= 4 {
			return draft.Shape{}, ErrNoHandle
		}
		r := prior.Center.Distance(to)
		if r <= geometry.Epsilon {
			return draft.Shape{}, ErrDegenerateGeometry
		}
		next.Radius = r

	case draft.KindPolygon:
		if handle < 0 || handle >= len(prior.Vertices) {
			return draft.Shape{}, ErrNoHandle
		}
		vs := make([]geometry.Point, len(prior.Vertices))
		copy(vs, prior.Vertices)
		vs[handle] = to
		next.Vertices = vs

	default:
		return draft.Shape{}, ErrNoHandle
	}
	return next, nil
}
