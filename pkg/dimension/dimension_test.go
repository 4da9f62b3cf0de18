package dimension

import (
	"testing"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

func TestMeasureLine(t *testing.T) {
	line := draft.NewLine(geometry.Pt(0, 0), geometry.Pt(3, 4), draft.DefaultStyle())
	dims := Measure(line)
	if len(dims) != 1 {
		t.Fatalf("line dims = %d, want 1", len(dims))
	}
	d := dims[0]
	if d.Kind != KindLength || !geometry.Eq(d.Value, 5, geometry.Epsilon) {
		t.Fatalf("line dim = %+v, want length 5", d)
	}
	if d.Label != "5.00" {
		t.Fatalf("label = %q, want \"5.00\"", d.Label)
	}
	if len(d.Anchors) != 2 {
		t.Fatalf("anchors = %d, want 2", len(d.Anchors))
	}
}

func TestMeasureRectangleWidthHeight(t *testing.T) {
	rect := draft.NewRectangle(geometry.Pt(1, 1), geometry.Pt(5, 4), draft.DefaultStyle())
	dims := Measure(rect)
	if len(dims) != 2 {
		t.Fatalf("rect dims = %d, want 2", len(dims))
	}
	if !geometry.Eq(dims[0].Value, 4, geometry.Epsilon) {
		t.Fatalf("width = %v, want 4", dims[0].Value)
	}
	if !geometry.Eq(dims[1].Value, 3, geometry.Epsilon) {
		t.Fatalf("height = %v, want 3", dims[1].Value)
	}
}

func TestMeasureCircleRadius(t *testing.T) {
	circle := draft.NewCircle(geometry.Pt(0, 0), geometry.Pt(5, 0), draft.DefaultStyle())
	dims := Measure(circle)
	if len(dims) != 1 {
		t.Fatalf("circle dims = %d, want 1", len(dims))
	}
	d := dims[0]
	if d.Kind != KindRadius || !geometry.Eq(d.Value, 5, geometry.Epsilon) {
		t.Fatalf("circle dim = %+v, want radius 5", d)
	}
	if d.Label != "R5.00" {
		t.Fatalf("label = %q", d.Label)
	}
	if !d.Anchors[0].Eq(geometry.Pt(0, 0), geometry.Epsilon) {
		t.Fatalf("radius anchor = %+v, want center", d.Anchors[0])
	}
}

func TestMeasurePolygonEdgesAndPerimeter(t *testing.T) {
	poly := draft.NewPolygon([]geometry.Point{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4},
	}, draft.DefaultStyle())

	dims := Measure(poly)
	// Three edges plus the perimeter total.
	if len(dims) != 4 {
		t.Fatalf("polygon dims = %d, want 4", len(dims))
	}
	want := []float64{3, 4, 5, 12}
	for i, w := range want {
		if !geometry.Eq(dims[i].Value, w, geometry.Epsilon) {
			t.Fatalf("dim %d = %v, want %v", i, dims[i].Value, w)
		}
	}
	if dims[3].Label != "P=12.00" {
		t.Fatalf("perimeter label = %q", dims[3].Label)
	}
}

func TestBetween(t *testing.T) {
	d := Between(geometry.Pt(1, 1), geometry.Pt(4, 5))
	if d.Kind != KindLength || !geometry.Eq(d.Value, 5, geometry.Epsilon) {
		t.Fatalf("between = %+v, want length 5", d)
	}
}

func TestAngle(t *testing.T) {
	d, ok := Angle(geometry.Pt(0, 0), geometry.Pt(5, 0), geometry.Pt(0, 5))
	if !ok {
		t.Fatal("angle reported degenerate")
	}
	if d.Kind != KindAngle || !geometry.Eq(d.Value, 90, 1e-9) {
		t.Fatalf("angle = %+v, want 90", d)
	}
	if len(d.Anchors) != 3 {
		t.Fatalf("angle anchors = %d, want 3", len(d.Anchors))
	}

	// Collinear rays measure zero, not degenerate.
	d, ok = Angle(geometry.Pt(0, 0), geometry.Pt(5, 0), geometry.Pt(9, 0))
	if !ok || !geometry.Eq(d.Value, 0, 1e-9) {
		t.Fatalf("collinear angle = %+v ok=%v", d, ok)
	}

	// Zero-length ray is degenerate.
	if _, ok := Angle(geometry.Pt(0, 0), geometry.Pt(0, 0), geometry.Pt(5, 0)); ok {
		t.Fatal("zero-length ray should be degenerate")
	}
}

func TestCacheInvalidation(t *testing.T) {
	set := draft.NewSet()
	id := set.Insert(draft.NewCircle(geometry.Pt(0, 0), geometry.Pt(5, 0), draft.DefaultStyle()))
	cache := NewCache()

	dims, err := cache.Measure(set, id)
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if !geometry.Eq(dims[0].Value, 5, geometry.Epsilon) {
		t.Fatalf("radius = %v, want 5", dims[0].Value)
	}

	// Mutating the set must invalidate the cached value.
	shape, _ := set.Get(id)
	shape.Radius = 7
	if err := set.Replace(id, shape); err != nil {
		t.Fatalf("replace: %v", err)
	}
	dims, err = cache.Measure(set, id)
	if err != nil {
		t.Fatalf("measure after mutate: %v", err)
	}
	if !geometry.Eq(dims[0].Value, 7, geometry.Epsilon) {
		t.Fatalf("stale cache: radius = %v, want 7", dims[0].Value)
	}

	// Missing shapes are a status, not a fault.
	if _, err := cache.Measure(set, draft.NewID()); err == nil {
		t.Fatal("measuring an unknown shape should report not found")
	}
}
