package session

import (
	"fmt"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/history"
)

// hitTolerance is the pick distance around a shape outline, in screen
// pixels.
const hitTolerance = 5.0

// duplicateOffset is the world-space shift applied to duplicated
// shapes so the copies are visibly apart from their originals.
const duplicateOffset = 20.0

// HitTest returns the topmost shape whose outline lies within the
// pick tolerance of p. Shapes are probed from highest z down, so
// overlapping shapes resolve to the one drawn last.
func (s *Session) HitTest(p geometry.Point) (draft.ID, bool) {
	tol := s.worldHitTolerance()
	shapes := s.set.Shapes()
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].DistanceTo(p) <= tol {
			return shapes[i].ID, true
		}
	}
	return draft.ID{}, false
}

// SelectAt replaces the selection with the shape under p, or clears
// it when nothing is hit. Reports whether a shape was selected.
func (s *Session) SelectAt(p geometry.Point) (draft.ID, bool) {
	id, ok := s.HitTest(p)
	if !ok {
		s.selection = nil
		return draft.ID{}, false
	}
	s.selection = []draft.ID{id}
	return id, true
}

// ToggleAt adds the shape under p to the selection, or removes it if
// already selected. A miss leaves the selection unchanged.
func (s *Session) ToggleAt(p geometry.Point) (draft.ID, bool) {
	id, ok := s.HitTest(p)
	if !ok {
		return draft.ID{}, false
	}
	for i, sel := range s.selection {
		if sel == id {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return id, true
		}
	}
	s.selection = append(s.selection, id)
	return id, true
}

// SelectAll selects every shape in z order.
func (s *Session) SelectAll() {
	shapes := s.set.Shapes()
	s.selection = make([]draft.ID, len(shapes))
	for i, shape := range shapes {
		s.selection[i] = shape.ID
	}
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection() {
	s.selection = nil
}

// Selected returns the selected ids in selection order.
func (s *Session) Selected() []draft.ID {
	return append([]draft.ID{}, s.selection...)
}

// IsSelected reports whether id is in the selection.
func (s *Session) IsSelected(id draft.ID) bool {
	for _, sel := range s.selection {
		if sel == id {
			return true
		}
	}
	return false
}

// DeleteSelected removes every selected shape through the history and
// returns the number removed.
func (s *Session) DeleteSelected() (int, error) {
	ids := append([]draft.ID{}, s.selection...)
	removed := 0
	for _, id := range ids {
		prior, err := s.set.Get(id)
		if err != nil {
			continue
		}
		if err := s.history.Execute(history.RemoveShape{ID: id, Prior: prior}); err != nil {
			return removed, fmt.Errorf("delete %s: %w", id, err)
		}
		removed++
	}
	s.selection = nil
	return removed, nil
}

// MoveSelected translates every selected shape by (dx, dy) through
// the history.
func (s *Session) MoveSelected(dx, dy float64) error {
	for _, id := range s.selection {
		prior, err := s.set.Get(id)
		if err != nil {
			continue
		}
		next := prior.Translate(dx, dy)
		if err := s.history.Execute(history.ModifyShape{ID: id, Prior: prior, Next: next}); err != nil {
			return fmt.Errorf("move %s: %w", id, err)
		}
	}
	return nil
}

// DuplicateSelected inserts an offset copy of every selected shape
// and moves the selection to the copies.
func (s *Session) DuplicateSelected() ([]draft.ID, error) {
	var copies []draft.ID
	for _, id := range s.selection {
		prior, err := s.set.Get(id)
		if err != nil {
			continue
		}
		dup := prior.Translate(duplicateOffset, duplicateOffset)
		dup.ID = draft.NewID()
		if err := s.history.Execute(history.AddShape{Shape: dup}); err != nil {
			return copies, fmt.Errorf("duplicate %s: %w", id, err)
		}
		copies = append(copies, dup.ID)
	}
	if len(copies) > 0 {
		s.selection = copies
	}
	return copies, nil
}

// SetStrokeColor applies the stroke color to the selection, or to the
// default style for new shapes when nothing is selected.
func (s *Session) SetStrokeColor(color string) error {
	return s.restyle(func(st *draft.Style) { st.Stroke = color })
}

// SetStrokeWidth applies the stroke width to the selection, or to the
// default style for new shapes when nothing is selected.
func (s *Session) SetStrokeWidth(width float64) error {
	return s.restyle(func(st *draft.Style) { st.Width = width })
}

// SetDash applies the dash pattern to the selection, or to the
// default style for new shapes when nothing is selected. An empty
// pattern means solid.
func (s *Session) SetDash(pattern []float64) error {
	dash := append([]float64{}, pattern...)
	return s.restyle(func(st *draft.Style) { st.Dash = dash })
}

func (s *Session) restyle(apply func(*draft.Style)) error {
	if len(s.selection) == 0 {
		apply(&s.style)
		return nil
	}
	for _, id := range s.selection {
		prior, err := s.set.Get(id)
		if err != nil {
			continue
		}
		style := prior.Style
		style.Dash = append([]float64{}, prior.Style.Dash...)
		apply(&style)
		next := prior.WithStyle(style)
		if err := s.history.Execute(history.ModifyShape{ID: id, Prior: prior, Next: next}); err != nil {
			return fmt.Errorf("restyle %s: %w", id, err)
		}
	}
	return nil
}

// worldHitTolerance converts the screen-space pick tolerance into
// world units by probing the view transform's scale.
func (s *Session) worldHitTolerance() float64 {
	a := s.view.WorldToScreen(geometry.Pt(0, 0))
	b := s.view.WorldToScreen(geometry.Pt(1, 0))
	scale := a.Distance(b)
	if scale <= geometry.Epsilon {
		return hitTolerance
	}
	return hitTolerance / scale
}
