package history

import (
	"math/rand"
	"testing"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

func line(x float64) draft.Shape {
	return draft.NewLine(geometry.Pt(x, 0), geometry.Pt(x+1, 0), draft.DefaultStyle())
}

func checkReplay(t *testing.T, h *History) {
	t.Helper()
	replayed, err := h.Replay()
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !h.Set().Equal(replayed, geometry.Epsilon) {
		t.Fatalf("live set diverged from replay at cursor %d", h.Cursor())
	}
}

func TestExecuteUndoInverse(t *testing.T) {
	set := draft.NewSet()
	h := New(set)

	before := set.Clone()
	if err := h.Execute(AddShape{Shape: line(0)}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("len = %d, want 1", set.Len())
	}
	if !h.Undo() {
		t.Fatal("undo reported no-op")
	}
	if !set.Equal(before, geometry.Epsilon) {
		t.Fatal("undo did not restore the prior set")
	}
}

func TestUndoRedoBoundariesAreNoops(t *testing.T) {
	h := New(draft.NewSet())
	if h.Undo() {
		t.Fatal("undo on empty history should be a no-op")
	}
	if h.Redo() {
		t.Fatal("redo on empty history should be a no-op")
	}

	if err := h.Execute(AddShape{Shape: line(0)}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if h.Redo() {
		t.Fatal("redo with nothing undone should be a no-op")
	}
	if !h.Undo() || h.Undo() {
		t.Fatal("exactly one undo should be available")
	}
	if !h.CanRedo() || h.CanUndo() {
		t.Fatal("cursor state wrong after full undo")
	}
}

func TestExecuteAfterUndoDiscardsRedoTail(t *testing.T) {
	h := New(draft.NewSet())

	if err := h.Execute(AddShape{Shape: line(0)}); err != nil {
		t.Fatalf("execute c1: %v", err)
	}
	if !h.Undo() {
		t.Fatal("undo failed")
	}
	if err := h.Execute(AddShape{Shape: line(5)}); err != nil {
		t.Fatalf("execute c2: %v", err)
	}

	if h.Redo() {
		t.Fatal("redo after a new edit must be a no-op; the old branch is gone")
	}
	if h.Len() != 1 || h.Cursor() != 1 {
		t.Fatalf("len=%d cursor=%d, want 1/1", h.Len(), h.Cursor())
	}
	checkReplay(t, h)
}

func TestCursorWalk(t *testing.T) {
	h := New(draft.NewSet())
	second := line(1)
	for i, s := range []draft.Shape{line(0), second, line(2)} {
		if err := h.Execute(AddShape{Shape: s}); err != nil {
			t.Fatalf("execute %d: %v", i, err)
		}
	}

	h.Undo()
	h.Undo()
	if h.Cursor() != 1 {
		t.Fatalf("cursor = %d after two undos, want 1", h.Cursor())
	}
	if !h.Redo() {
		t.Fatal("redo failed")
	}
	if h.Cursor() != 2 {
		t.Fatalf("cursor = %d after redo, want 2", h.Cursor())
	}
	got, err := h.Set().Get(second.ID)
	if err != nil {
		t.Fatalf("second shape missing after redo: %v", err)
	}
	if !got.GeomEq(second, geometry.Epsilon) {
		t.Fatal("redo did not restore the second command's effect exactly")
	}
	checkReplay(t, h)
}

func TestModifyAndRemoveRoundTrip(t *testing.T) {
	h := New(draft.NewSet())
	shape := line(0)
	if err := h.Execute(AddShape{Shape: shape}); err != nil {
		t.Fatalf("add: %v", err)
	}

	prior, _ := h.Set().Get(shape.ID)
	next := prior.Translate(3, 4)
	if err := h.Execute(ModifyShape{ID: shape.ID, Prior: prior, Next: next}); err != nil {
		t.Fatalf("modify: %v", err)
	}
	got, _ := h.Set().Get(shape.ID)
	if !got.GeomEq(next, geometry.Epsilon) {
		t.Fatal("modify not applied")
	}

	h.Undo()
	got, _ = h.Set().Get(shape.ID)
	if !got.GeomEq(prior, geometry.Epsilon) {
		t.Fatal("modify undo did not restore prior value")
	}
	h.Redo()

	current, _ := h.Set().Get(shape.ID)
	if err := h.Execute(RemoveShape{ID: shape.ID, Prior: current}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if h.Set().Len() != 0 {
		t.Fatal("remove not applied")
	}
	h.Undo()
	got, err := h.Set().Get(shape.ID)
	if err != nil {
		t.Fatalf("remove undo lost the shape: %v", err)
	}
	if !got.GeomEq(next, geometry.Epsilon) {
		t.Fatal("remove undo restored the wrong value")
	}
	checkReplay(t, h)
}

func TestRemoveUnknownIsNotRecorded(t *testing.T) {
	h := New(draft.NewSet())
	if err := h.Execute(RemoveShape{ID: draft.NewID()}); err == nil {
		t.Fatal("removing an unknown shape should fail")
	}
	if h.Len() != 0 {
		t.Fatal("failed command was recorded")
	}
}

// The replay invariant must hold at every point of a random
// interleaving of execute, undo, and redo.
func TestReplayInvariantRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := New(draft.NewSet())
	var known []draft.ID

	for step := 0; step < 300; step++ {
		switch op := rng.Intn(10); {
		case op < 4:
			s := line(float64(step))
			if err := h.Execute(AddShape{Shape: s}); err != nil {
				t.Fatalf("step %d add: %v", step, err)
			}
			known = append(known, s.ID)
		case op < 6 && len(known) > 0:
			id := known[rng.Intn(len(known))]
			if prior, err := h.Set().Get(id); err == nil {
				if err := h.Execute(ModifyShape{ID: id, Prior: prior, Next: prior.Translate(1, 1)}); err != nil {
					t.Fatalf("step %d modify: %v", step, err)
				}
			}
		case op < 7 && len(known) > 0:
			id := known[rng.Intn(len(known))]
			if prior, err := h.Set().Get(id); err == nil {
				if err := h.Execute(RemoveShape{ID: id, Prior: prior}); err != nil {
					t.Fatalf("step %d remove: %v", step, err)
				}
			}
		case op < 9:
			h.Undo()
		default:
			h.Redo()
		}
		checkReplay(t, h)
	}
}
