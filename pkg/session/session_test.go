package session

import (
	"errors"
	"testing"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/snap"
)

// drawLine runs a full line gesture without snapping.
func drawLine(t *testing.T, s *Session, a, b geometry.Point) draft.ID {
	t.Helper()
	s.BeginDraw(ToolLine, a, false)
	s.UpdateDraw(b, false)
	id, err := s.CommitDraw()
	if err != nil {
		t.Fatalf("commit line %v-%v: %v", a, b, err)
	}
	return id
}

func checkReplay(t *testing.T, s *Session) {
	t.Helper()
	replayed, err := s.History().Replay()
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !s.Set().Equal(replayed, geometry.Epsilon) {
		t.Fatal("set diverged from command replay")
	}
}

func TestDrawCommitAddsShape(t *testing.T) {
	s := New()
	id := drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))

	shape, err := s.Set().Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if shape.Kind != draft.KindLine {
		t.Fatalf("kind = %v, want line", shape.Kind)
	}
	if !s.CanUndo() {
		t.Fatal("commit did not record a history entry")
	}
	checkReplay(t, s)
}

func TestCommitWithoutGesture(t *testing.T) {
	s := New()
	if _, err := s.CommitDraw(); !errors.Is(err, ErrNoPreview) {
		t.Fatalf("commit with no gesture: %v, want ErrNoPreview", err)
	}
}

func TestDegenerateCommitLeavesSetUntouched(t *testing.T) {
	s := New()
	s.BeginDraw(ToolLine, geometry.Pt(5, 5), false)
	// Never moved: zero-length line.
	if _, err := s.CommitDraw(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("zero-length commit: %v, want ErrDegenerateGeometry", err)
	}
	if s.Set().Len() != 0 {
		t.Fatalf("set has %d shapes after degenerate commit", s.Set().Len())
	}
	if s.CanUndo() {
		t.Fatal("degenerate commit recorded a history entry")
	}
}

func TestCancelDrawDiscardsPreview(t *testing.T) {
	s := New()
	s.BeginDraw(ToolRectangle, geometry.Pt(0, 0), false)
	s.UpdateDraw(geometry.Pt(4, 3), false)
	if _, ok := s.Preview(); !ok {
		t.Fatal("no preview during gesture")
	}
	s.CancelDraw()
	if _, ok := s.Preview(); ok {
		t.Fatal("preview survived cancel")
	}
	if s.Set().Len() != 0 || s.CanUndo() {
		t.Fatal("cancel touched the set or the history")
	}
}

func TestPolygonVertexRule(t *testing.T) {
	s := New()
	s.BeginDraw(ToolPolygon, geometry.Pt(0, 0), false)
	if err := s.AddVertex(geometry.Pt(10, 0), false); err != nil {
		t.Fatalf("add vertex: %v", err)
	}

	// Two vertices cannot close a polygon.
	if _, err := s.CommitDraw(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("two-vertex commit: %v, want ErrDegenerateGeometry", err)
	}

	if err := s.AddVertex(geometry.Pt(5, 8), false); err != nil {
		t.Fatalf("add vertex: %v", err)
	}
	id, err := s.CommitDraw()
	if err != nil {
		t.Fatalf("three-vertex commit: %v", err)
	}
	shape, _ := s.Set().Get(id)
	if shape.Kind != draft.KindPolygon || len(shape.Vertices) != 3 {
		t.Fatalf("polygon = %+v, want 3 vertices", shape)
	}
	checkReplay(t, s)
}

func TestAddVertexOutsidePolygonTool(t *testing.T) {
	s := New()
	s.BeginDraw(ToolLine, geometry.Pt(0, 0), false)
	if err := s.AddVertex(geometry.Pt(1, 1), false); !errors.Is(err, ErrNoPreview) {
		t.Fatalf("vertex on line tool: %v, want ErrNoPreview", err)
	}
}

func TestDrawSnapsToExistingEndpoint(t *testing.T) {
	s := New()
	drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))

	// Starting a new line near (10,0) must land exactly on it.
	s.BeginDraw(ToolLine, geometry.Pt(10.4, 0.3), true)
	s.UpdateDraw(geometry.Pt(20, 5), false)
	id, err := s.CommitDraw()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	shape, _ := s.Set().Get(id)
	if !shape.Start.Eq(geometry.Pt(10, 0), 1e-9) {
		t.Fatalf("snapped start = %+v, want (10,0)", shape.Start)
	}
}

func TestSnapCandidateClearsWhenDisabled(t *testing.T) {
	s := New()
	drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))

	s.BeginDraw(ToolLine, geometry.Pt(30, 30), false)
	s.UpdateDraw(geometry.Pt(10.2, 0.1), true)
	if c, ok := s.SnapCandidate(); !ok || c.Kind != snap.KindEndpoint {
		t.Fatalf("snap candidate = %+v ok=%v, want endpoint", c, ok)
	}
	s.UpdateDraw(geometry.Pt(10.2, 0.1), false)
	if _, ok := s.SnapCandidate(); ok {
		t.Fatal("candidate survived a snap-disabled update")
	}
}

func TestSnapKindTogglesAffectDrawing(t *testing.T) {
	s := New()
	drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))

	opts := s.SnapOptions()
	opts.Endpoints = false
	opts.Midpoints = false
	opts.Intersections = false
	s.SetSnapOptions(opts)

	s.BeginDraw(ToolLine, geometry.Pt(30, 30), false)
	s.UpdateDraw(geometry.Pt(10.2, 0.1), true)
	if _, ok := s.SnapCandidate(); ok {
		t.Fatal("candidate resolved with every kind disabled")
	}

	opts.Endpoints = true
	s.SetSnapOptions(opts)
	s.UpdateDraw(geometry.Pt(10.2, 0.1), true)
	if c, ok := s.SnapCandidate(); !ok || c.Kind != snap.KindEndpoint {
		t.Fatalf("candidate = %+v ok=%v, want endpoint after re-enable", c, ok)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := New()
	a := drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))
	drawLine(t, s, geometry.Pt(0, 5), geometry.Pt(10, 5))

	if !s.Undo() {
		t.Fatal("undo failed")
	}
	if s.Set().Len() != 1 {
		t.Fatalf("after undo len = %d, want 1", s.Set().Len())
	}
	if _, err := s.Set().Get(a); err != nil {
		t.Fatal("undo removed the wrong shape")
	}
	if !s.Redo() {
		t.Fatal("redo failed")
	}
	if s.Set().Len() != 2 {
		t.Fatalf("after redo len = %d, want 2", s.Set().Len())
	}
	checkReplay(t, s)
}

func TestUndoPrunesSelection(t *testing.T) {
	s := New()
	drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))
	id := drawLine(t, s, geometry.Pt(0, 5), geometry.Pt(10, 5))

	s.SelectAt(geometry.Pt(5, 5))
	if !s.IsSelected(id) {
		t.Fatal("top line not selected")
	}
	s.Undo()
	if s.IsSelected(id) {
		t.Fatal("selection still holds an undone shape")
	}
}

func TestLoadResetsHistory(t *testing.T) {
	s := New()
	drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(10, 0))

	s.Load([]draft.Shape{
		draft.NewCircle(geometry.Pt(0, 0), geometry.Pt(3, 0), draft.DefaultStyle()),
	})
	if s.Set().Len() != 1 {
		t.Fatalf("loaded len = %d, want 1", s.Set().Len())
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatal("load kept stale history")
	}
}

func TestSnapshotContents(t *testing.T) {
	s := New()
	id := drawLine(t, s, geometry.Pt(0, 0), geometry.Pt(3, 4))
	s.BeginDraw(ToolCircle, geometry.Pt(20, 20), false)
	s.UpdateDraw(geometry.Pt(25, 20), false)

	state := s.Snapshot()
	if len(state.Shapes) != 1 {
		t.Fatalf("snapshot shapes = %d, want 1", len(state.Shapes))
	}
	if state.Preview == nil || state.Preview.Kind != draft.KindCircle {
		t.Fatalf("snapshot preview = %+v, want circle", state.Preview)
	}
	dims, ok := state.Dimensions[id]
	if !ok || len(dims) != 1 || !geometry.Eq(dims[0].Value, 5, 1e-9) {
		t.Fatalf("snapshot dims = %+v, want length 5", dims)
	}

	s.SetShowDimensions(false)
	if state := s.Snapshot(); state.Dimensions != nil {
		t.Fatal("dimensions present while hidden")
	}
}
