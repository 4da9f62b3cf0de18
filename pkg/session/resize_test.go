package session

import (
	"errors"
	"testing"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

func drawRect(t *testing.T, s *Session, a, b geometry.Point) draft.ID {
	t.Helper()
	s.BeginDraw(ToolRectangle, a, false)
	s.UpdateDraw(b, false)
	id, err := s.CommitDraw()
	if err != nil {
		t.Fatalf("commit rect %v-%v: %v", a, b, err)
	}
	return id
}

func drawCircle(t *testing.T, s *Session, center, rim geometry.Point) draft.ID {
	t.Helper()
	s.BeginDraw(ToolCircle, center, false)
	s.UpdateDraw(rim, false)
	id, err := s.CommitDraw()
	if err != nil {
		t.Fatalf("commit circle %v: %v", center, err)
	}
	return id
}

func TestResizeLineEndpoint(t *testing.T) {
	s := New()
	id := drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))
	s.SelectAt(geometry.Pt(5, 0))

	if err := s.ResizeSelected(id, 1, geometry.Pt(20, 5)); err != nil {
		t.Fatalf("resize: %v", err)
	}
	shape, _ := s.Set().Get(id)
	if !shape.Start.Eq(geometry.Pt(0, 0), 1e-9) || !shape.End.Eq(geometry.Pt(20, 5), 1e-9) {
		t.Fatalf("resized line = %+v", shape)
	}

	s.Undo()
	shape, _ = s.Set().Get(id)
	if !shape.End.Eq(geometry.Pt(10, 0), 1e-9) {
		t.Fatalf("undo did not restore the endpoint: %+v", shape)
	}
	checkReplay(t, s)
}

func TestResizeRectangleKeepsOppositeCorner(t *testing.T) {
	s := New()
	id := drawRect(t, s, geometry.Pt(0, 0), geometry.Pt(10, 10))
	s.SelectAt(geometry.Pt(5, 0))

	// Dragging the min corner anchors the max corner.
	if err := s.ResizeSelected(id, 0, geometry.Pt(2, 3)); err != nil {
		t.Fatalf("resize: %v", err)
	}
	shape, _ := s.Set().Get(id)
	if !shape.Start.Eq(geometry.Pt(2, 3), 1e-9) || !shape.End.Eq(geometry.Pt(10, 10), 1e-9) {
		t.Fatalf("resized rect = %+v", shape)
	}

	// Dragging a corner past its anchor renormalizes min/max.
	if err := s.ResizeSelected(id, 2, geometry.Pt(-5, -4)); err != nil {
		t.Fatalf("resize across anchor: %v", err)
	}
	shape, _ = s.Set().Get(id)
	if !shape.Start.Eq(geometry.Pt(-5, -4), 1e-9) || !shape.End.Eq(geometry.Pt(2, 3), 1e-9) {
		t.Fatalf("crossed rect = %+v", shape)
	}
	checkReplay(t, s)
}

func TestResizeCircleRadius(t *testing.T) {
	s := New()
	id := drawCircle(t, s, geometry.Pt(5, 5), geometry.Pt(8, 5))
	s.SelectAt(geometry.Pt(8, 5))

	if err := s.ResizeSelected(id, 0, geometry.Pt(5, 10)); err != nil {
		t.Fatalf("resize: %v", err)
	}
	shape, _ := s.Set().Get(id)
	if !geometry.Eq(shape.Radius, 5, 1e-9) {
		t.Fatalf("radius = %v, want 5", shape.Radius)
	}
	if !shape.Center.Eq(geometry.Pt(5, 5), 1e-9) {
		t.Fatalf("center moved: %+v", shape.Center)
	}
	checkReplay(t, s)
}

func TestResizePolygonVertex(t *testing.T) {
	s := New()
	s.BeginDraw(ToolPolygon, geometry.Pt(0, 0), false)
	if err := s.AddVertex(geometry.Pt(4, 0), false); err != nil {
		t.Fatalf("add vertex: %v", err)
	}
	if err := s.AddVertex(geometry.Pt(4, 4), false); err != nil {
		t.Fatalf("add vertex: %v", err)
	}
	id, err := s.CommitDraw()
	if err != nil {
		t.Fatalf("commit polygon: %v", err)
	}
	s.SelectAt(geometry.Pt(4, 2))

	if err := s.ResizeSelected(id, 2, geometry.Pt(4, 8)); err != nil {
		t.Fatalf("resize: %v", err)
	}
	shape, _ := s.Set().Get(id)
	if !shape.Vertices[2].Eq(geometry.Pt(4, 8), 1e-9) {
		t.Fatalf("vertices = %+v", shape.Vertices)
	}
	if !shape.Vertices[0].Eq(geometry.Pt(0, 0), 1e-9) {
		t.Fatal("untouched vertex moved")
	}
	checkReplay(t, s)
}

func TestResizeDegenerateRejected(t *testing.T) {
	s := New()
	id := drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))
	s.SelectAt(geometry.Pt(5, 0))
	before := s.History().Len()

	// Collapsing the line onto its other end is rejected.
	if err := s.ResizeSelected(id, 1, geometry.Pt(0, 0)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("collapse: %v, want ErrDegenerateGeometry", err)
	}
	shape, _ := s.Set().Get(id)
	if !shape.End.Eq(geometry.Pt(10, 0), 1e-9) {
		t.Fatalf("rejected resize changed the shape: %+v", shape)
	}
	if s.History().Len() != before {
		t.Fatal("rejected resize recorded a history entry")
	}

	cid := drawCircle(t, s, geometry.Pt(20, 20), geometry.Pt(23, 20))
	s.SelectAt(geometry.Pt(23, 20))
	if err := s.ResizeSelected(cid, 0, geometry.Pt(20, 20)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("zero radius: %v, want ErrDegenerateGeometry", err)
	}

	if err := s.ResizeSelected(id, 7, geometry.Pt(1, 1)); !errors.Is(err, ErrNoHandle) {
		t.Fatalf("bad handle: %v, want ErrNoHandle", err)
	}
}

func TestHandleAtProbesSelectionOnly(t *testing.T) {
	s := New()
	a := drawRect(t, s, geometry.Pt(0, 0), geometry.Pt(10, 10))
	drawRect(t, s, geometry.Pt(30, 30), geometry.Pt(40, 40))

	// Nothing selected: no handle to grab.
	if _, _, ok := s.HandleAt(geometry.Pt(10, 10)); ok {
		t.Fatal("grabbed a handle with empty selection")
	}

	s.SelectAt(geometry.Pt(5, 0))
	id, handle, ok := s.HandleAt(geometry.Pt(9.6, 9.7))
	if !ok || id != a || handle != 2 {
		t.Fatalf("handle = %v/%d ok=%v, want corner 2 of %v", id, handle, ok, a)
	}
	// The unselected rectangle exposes no handles.
	if _, _, ok := s.HandleAt(geometry.Pt(40, 40)); ok {
		t.Fatal("grabbed a handle on an unselected shape")
	}
}

func TestResizeHandlesCircleRim(t *testing.T) {
	s := New()
	id := drawCircle(t, s, geometry.Pt(0, 0), geometry.Pt(4, 0))
	shape, _ := s.Set().Get(id)

	grips := ResizeHandles(shape)
	if len(grips) != 4 {
		t.Fatalf("circle handles = %d, want 4", len(grips))
	}
	for _, g := range grips {
		if !geometry.Eq(shape.Center.Distance(g), 4, 1e-9) {
			t.Fatalf("handle %+v off the rim", g)
		}
	}
}
