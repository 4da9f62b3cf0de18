// Package session orchestrates the drafting core: it owns the shape
// set and its command history, tracks the in-progress draw gesture,
// and exposes the renderable state the shell paints each frame.
package session

import (
	"errors"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/dimension"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/history"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/snap"
)

// Tool selects the shape kind being drawn.
type Tool int

const (
	ToolLine Tool = iota
	ToolRectangle
	ToolCircle
	ToolPolygon
)

func (t Tool) String() string {
	switch t {
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

var (
	// ErrNoPreview reports a commit or vertex append without an active
	// draw gesture.
	ErrNoPreview = errors.New("no draw in progress")

	// ErrDegenerateGeometry reports a gesture that cannot produce a
	// valid shape, e.g. a zero-length line or a two-vertex polygon.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type preview struct {
	tool     Tool
	id       draft.ID
	start    geometry.Point
	current  geometry.Point
	vertices []geometry.Point
}

// Session is the single owner of all session state. It is not safe
// for concurrent use; a multi-threaded host must serialize calls.
type Session struct {
	set     *draft.Set
	history *history.History
	dims    *dimension.Cache

	style    draft.Style
	snapOpts snap.Options
	view     snap.Transform

	showDimensions bool

	pending   *preview
	snapHit   *snap.Candidate
	selection []draft.ID
}

// New returns an empty drawing session with default style and snap
// options.
func New() *Session {
	set := draft.NewSet()
	return &Session{
		set:            set,
		history:        history.New(set),
		dims:           dimension.NewCache(),
		style:          draft.DefaultStyle(),
		snapOpts:       snap.DefaultOptions(),
		view:           snap.Identity,
		showDimensions: true,
	}
}

// SetViewTransform installs the world-to-screen transform used for
// snap tolerance and hit-testing. Nil resets to identity.
func (s *Session) SetViewTransform(view snap.Transform) {
	if view == nil {
		view = snap.Identity
	}
	s.view = view
}

// SnapOptions returns the current snap configuration.
func (s *Session) SnapOptions() snap.Options {
	return s.snapOpts
}

// SetSnapOptions replaces the snap configuration.
func (s *Session) SetSnapOptions(opts snap.Options) {
	s.snapOpts = opts
}

// Style returns the stroke style applied to newly drawn shapes.
func (s *Session) Style() draft.Style {
	return s.style
}

// ShowDimensions reports whether snapshots include dimensions.
func (s *Session) ShowDimensions() bool {
	return s.showDimensions
}

// SetShowDimensions toggles dimension annotations in snapshots.
func (s *Session) SetShowDimensions(show bool) {
	s.showDimensions = show
}

// BeginDraw starts a draw gesture with the given tool at start. Any
// gesture already in progress is discarded. For polygons, start is
// the first vertex.
func (s *Session) BeginDraw(tool Tool, start geometry.Point, snapEnabled bool) {
	start = s.maybeSnap(start, snapEnabled)
	p := &preview{tool: tool, id: draft.NewID(), start: start, current: start}
	if tool == ToolPolygon {
		p.vertices = []geometry.Point{start}
	}
	s.pending = p
}

// UpdateDraw moves the rubber-band point of the gesture. With
// snapEnabled the point is resolved against the shape set first; the
// winning candidate stays available via SnapCandidate until the next
// update. UpdateDraw never touches the set or the history.
func (s *Session) UpdateDraw(p geometry.Point, snapEnabled bool) {
	p = s.maybeSnap(p, snapEnabled)
	if s.pending == nil {
		return
	}
	s.pending.current = p
}

// AddVertex fixes the rubber-band point as the next polygon vertex.
func (s *Session) AddVertex(p geometry.Point, snapEnabled bool) error {
	if s.pending == nil {
		return ErrNoPreview
	}
	if s.pending.tool != ToolPolygon {
		return ErrNoPreview
	}
	p = s.maybeSnap(p, snapEnabled)
	s.pending.vertices = append(s.pending.vertices, p)
	s.pending.current = p
	return nil
}

// CommitDraw materializes the preview as a real shape through the
// command history and ends the gesture. Degenerate gestures (no
// extent, polygons with fewer than three vertices) leave the set
// untouched and report ErrDegenerateGeometry.
func (s *Session) CommitDraw() (draft.ID, error) {
	if s.pending == nil {
		return draft.ID{}, ErrNoPreview
	}
	shape, err := s.previewShape()
	if err != nil {
		return draft.ID{}, err
	}
	s.pending = nil
	s.snapHit = nil
	if err := s.history.Execute(history.AddShape{Shape: shape}); err != nil {
		return draft.ID{}, err
	}
	return shape.ID, nil
}

// CancelDraw discards the in-progress gesture without a history
// entry.
func (s *Session) CancelDraw() {
	s.pending = nil
	s.snapHit = nil
}

// Preview returns the shape the current gesture would produce, for
// live rendering. Gestures too degenerate to render report false.
func (s *Session) Preview() (draft.Shape, bool) {
	if s.pending == nil {
		return draft.Shape{}, false
	}
	// Polygons render their fixed vertices plus the rubber-band point,
	// closable or not.
	if s.pending.tool == ToolPolygon {
		vs := append([]geometry.Point{}, s.pending.vertices...)
		if !s.pending.current.Eq(vs[len(vs)-1], geometry.Epsilon) {
			vs = append(vs, s.pending.current)
		}
		shape := draft.NewPolygon(vs, s.style)
		shape.ID = s.pending.id
		return shape, true
	}
	shape, err := s.previewShape()
	if err != nil {
		return draft.Shape{}, false
	}
	return shape, true
}

// SnapCandidate returns the candidate the last snapped update
// resolved, if any.
func (s *Session) SnapCandidate() (snap.Candidate, bool) {
	if s.snapHit == nil {
		return snap.Candidate{}, false
	}
	return *s.snapHit, true
}

// Undo reverts the latest edit. Selection entries for shapes that no
// longer exist are pruned.
func (s *Session) Undo() bool {
	ok := s.history.Undo()
	if ok {
		s.pruneSelection()
	}
	return ok
}

// Redo re-applies the latest undone edit.
func (s *Session) Redo() bool {
	ok := s.history.Redo()
	if ok {
		s.pruneSelection()
	}
	return ok
}

// CanUndo reports whether an edit is available to undo.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether an undone edit is available to redo.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// History exposes the underlying timeline, mainly for tests asserting
// the replay invariant.
func (s *Session) History() *history.History {
	return s.history
}

// Set exposes the live shape set for read-only use by shells.
func (s *Session) Set() *draft.Set {
	return s.set
}

// Shapes returns the current shapes in z order.
func (s *Session) Shapes() []draft.Shape {
	return s.set.Shapes()
}

// Dimensions returns the measurements for one shape, served from the
// revision cache.
func (s *Session) Dimensions(id draft.ID) ([]dimension.Dimension, error) {
	return s.dims.Measure(s.set, id)
}

// SelectedDimensions returns the measurements of every selected
// shape, in selection order.
func (s *Session) SelectedDimensions() []dimension.Dimension {
	var out []dimension.Dimension
	for _, id := range s.selection {
		dims, err := s.dims.Measure(s.set, id)
		if err != nil {
			continue
		}
		out = append(out, dims...)
	}
	return out
}

// MeasureBetween measures the distance between two points, typically
// two snap candidates.
func (s *Session) MeasureBetween(a, b geometry.Point) dimension.Dimension {
	return dimension.Between(a, b)
}

// MeasureAngle measures the angle at vertex between rays toward a and
// b; degenerate rays report false.
func (s *Session) MeasureAngle(vertex, a, b geometry.Point) (dimension.Dimension, bool) {
	return dimension.Angle(vertex, a, b)
}

// Load replaces the shape set with the given flat list and clears the
// history and selection. Used when the shell opens a file.
func (s *Session) Load(shapes []draft.Shape) {
	set := draft.NewSet()
	for _, shape := range shapes {
		set.Insert(shape)
	}
	s.set = set
	s.history = history.New(set)
	s.dims = dimension.NewCache()
	s.selection = nil
	s.pending = nil
	s.snapHit = nil
}

// Export returns the flat shape list for the shell to persist.
func (s *Session) Export() []draft.Shape {
	return s.set.Shapes()
}

// Snapshot is the renderable state handed to the shell each frame.
type Snapshot struct {
	Shapes     []draft.Shape
	Dimensions map[draft.ID][]dimension.Dimension
	Preview    *draft.Shape
	Snap       *snap.Candidate
	Selected   []draft.ID
}

// Snapshot assembles the current renderable state.
func (s *Session) Snapshot() Snapshot {
	state := Snapshot{Shapes: s.set.Shapes()}

	if s.showDimensions {
		state.Dimensions = make(map[draft.ID][]dimension.Dimension, len(state.Shapes))
		for _, shape := range state.Shapes {
			dims, err := s.dims.Measure(s.set, shape.ID)
			if err != nil || len(dims) == 0 {
				continue
			}
			state.Dimensions[shape.ID] = dims
		}
	}

	if shape, ok := s.Preview(); ok {
		state.Preview = &shape
	}
	if cand, ok := s.SnapCandidate(); ok {
		state.Snap = &cand
	}
	state.Selected = append([]draft.ID{}, s.selection...)
	return state
}

// maybeSnap resolves p against the shape set when enabled, recording
// the winning candidate for the marker overlay.
func (s *Session) maybeSnap(p geometry.Point, enabled bool) geometry.Point {
	if !enabled {
		s.snapHit = nil
		return p
	}
	cand, ok := snap.Resolve(p, s.set, s.snapOpts, s.view)
	if !ok {
		s.snapHit = nil
		return p
	}
	s.snapHit = &cand
	return cand.Point
}

// previewShape builds the shape the pending gesture would commit.
func (s *Session) previewShape() (draft.Shape, error) {
	p := s.pending
	var shape draft.Shape
	switch p.tool {
	case ToolLine:
		if p.start.Eq(p.current, geometry.Epsilon) {
			return draft.Shape{}, ErrDegenerateGeometry
		}
		shape = draft.NewLine(p.start, p.current, s.style)

	case ToolRectangle:
		if geometry.Eq(p.start.X, p.current.X, geometry.Epsilon) ||
			geometry.Eq(p.start.Y, p.current.Y, geometry.Epsilon) {
			return draft.Shape{}, ErrDegenerateGeometry
		}
		shape = draft.NewRectangle(p.start, p.current, s.style)

	case ToolCircle:
		if p.start.Eq(p.current, geometry.Epsilon) {
			return draft.Shape{}, ErrDegenerateGeometry
		}
		shape = draft.NewCircle(p.start, p.current, s.style)

	case ToolPolygon:
		if len(p.vertices) < 3 {
			return draft.Shape{}, ErrDegenerateGeometry
		}
		shape = draft.NewPolygon(p.vertices, s.style)

	default:
		return draft.Shape{}, ErrDegenerateGeometry
	}
	shape.ID = p.id
	return shape, nil
}

func (s *Session) pruneSelection() {
	kept := s.selection[:0]
	for _, id := range s.selection {
		if _, err := s.set.Get(id); err == nil {
			kept = append(kept, id)
		}
	}
	s.selection = kept
}
