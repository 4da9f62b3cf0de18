package draft

import (
	"errors"
	"fmt"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// ErrNotFound reports an operation against a shape ID that is not in
// the set. It is a recoverable status, never fatal.
var ErrNotFound = errors.New("shape not found")

// Set is an insertion-ordered collection of shapes. It is owned by a
// single drawing session and is not safe for concurrent mutation.
type Set struct {
	byID     map[ID]int // index into order
	order    []Shape
	nextZ    int
	revision uint64
}

// NewSet returns an empty shape set.
func NewSet() *Set {
	return &Set{byID: make(map[ID]int)}
}

// Insert adds the shape, assigns the next Z order, and returns its
// ID. The order slice stays sorted by Z because new shapes always get
// the highest Z.
func (s *Set) Insert(shape Shape) ID {
	if _, exists := s.byID[shape.ID]; exists {
		// Same ID twice would corrupt the index; replace instead.
		_ = s.Replace(shape.ID, shape)
		return shape.ID
	}
	shape.Z = s.nextZ
	s.nextZ++
	s.byID[shape.ID] = len(s.order)
	s.order = append(s.order, shape)
	s.revision++
	return shape.ID
}

// Restore reinserts a previously removed shape keeping its Z order,
// so an undone removal puts the shape back where it was. Used by the
// command history.
func (s *Set) Restore(shape Shape) {
	if _, exists := s.byID[shape.ID]; exists {
		_ = s.Replace(shape.ID, shape)
		return
	}
	idx := len(s.order)
	for i, existing := range s.order {
		if existing.Z > shape.Z {
			idx = i
			break
		}
	}
	s.order = append(s.order, Shape{})
	copy(s.order[idx+1:], s.order[idx:])
	s.order[idx] = shape
	for i := idx; i < len(s.order); i++ {
		s.byID[s.order[i].ID] = i
	}
	if shape.Z >= s.nextZ {
		s.nextZ = shape.Z + 1
	}
	s.revision++
}

// Get returns the shape for id.
func (s *Set) Get(id ID) (Shape, error) {
	idx, ok := s.byID[id]
	if !ok {
		return Shape{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.order[idx], nil
}

// Replace swaps in a new value for an existing shape, preserving its
// position and Z order.
func (s *Set) Replace(id ID, shape Shape) error {
	idx, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("replace %s: %w", id, ErrNotFound)
	}
	shape.ID = id
	shape.Z = s.order[idx].Z
	s.order[idx] = shape
	s.revision++
	return nil
}

// Remove deletes the shape for id.
func (s *Set) Remove(id ID) error {
	idx, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	delete(s.byID, id)
	for i := idx; i < len(s.order); i++ {
		s.byID[s.order[i].ID] = i
	}
	s.revision++
	return nil
}

// Shapes returns the shapes in insertion order. The returned slice is
// a copy; the contained values are immutable by convention.
func (s *Set) Shapes() []Shape {
	out := make([]Shape, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of shapes.
func (s *Set) Len() int {
	return len(s.order)
}

// Revision returns a counter bumped on every successful mutation.
// Derived caches key on it.
func (s *Set) Revision() uint64 {
	return s.revision
}

// Clone returns an independent copy with the same shapes and Z
// assignments. The revision counter restarts.
func (s *Set) Clone() *Set {
	out := NewSet()
	out.order = make([]Shape, len(s.order))
	copy(out.order, s.order)
	for i, shape := range out.order {
		out.byID[shape.ID] = i
	}
	out.nextZ = s.nextZ
	return out
}

// Equal reports whether both sets hold the same shapes, in the same
// order, with geometry equal within eps.
func (s *Set) Equal(o *Set, eps float64) bool {
	if len(s.order) != len(o.order) {
		return false
	}
	for i := range s.order {
		a, b := s.order[i], o.order[i]
		if a.ID != b.ID || !a.GeomEq(b, eps) {
			return false
		}
	}
	return true
}

// BBox returns the union bounding box of all shapes; ok is false for
// an empty set.
func (s *Set) BBox() (geometry.BBox, bool) {
	if len(s.order) == 0 {
		return geometry.BBox{}, false
	}
	box := s.order[0].BBox()
	for _, shape := range s.order[1:] {
		box = box.Union(shape.BBox())
	}
	return box, true
}
