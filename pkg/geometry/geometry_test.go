package geometry

import (
	"math"
	"testing"
)

func TestSegmentMidpointAndLength(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(10, 0))
	if got := s.Midpoint(); !got.Eq(Pt(5, 0), Epsilon) {
		t.Fatalf("midpoint = %+v, want (5,0)", got)
	}
	if got := s.Length(); !Eq(got, 10, Epsilon) {
		t.Fatalf("length = %v, want 10", got)
	}
}

func TestSegmentDistanceTo(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(10, 0))
	cases := []struct {
		name string
		p    Point
		want float64
	}{
		{"above middle", Pt(5, 3), 3},
		{"beyond end", Pt(13, 4), 5},
		{"on segment", Pt(7, 0), 0},
	}
	for _, tc := range cases {
		if got := s.DistanceTo(tc.p); !Eq(got, tc.want, 1e-12) {
			t.Fatalf("%s: distance = %v, want %v", tc.name, got, tc.want)
		}
	}

	// Zero-length segment degenerates to point distance.
	z := Seg(Pt(1, 1), Pt(1, 1))
	if got := z.DistanceTo(Pt(4, 5)); !Eq(got, 5, 1e-12) {
		t.Fatalf("degenerate distance = %v, want 5", got)
	}
}

func TestBBoxOverlapsAndExpand(t *testing.T) {
	a := Seg(Pt(0, 0), Pt(4, 4)).BBox()
	b := Seg(Pt(5, 5), Pt(8, 8)).BBox()

	if a.Overlaps(b) {
		t.Fatal("disjoint boxes reported as overlapping")
	}
	if !a.Expand(1).Overlaps(b) {
		t.Fatal("expanded boxes should overlap")
	}
	if !a.Union(b).Contains(Pt(4.5, 4.5)) {
		t.Fatal("union should contain the gap between the boxes")
	}
}

func TestCircleBBox(t *testing.T) {
	c := Circle{Center: Pt(2, -1), Radius: 3}
	box := c.BBox()
	if !box.Min.Eq(Pt(-1, -4), Epsilon) || !box.Max.Eq(Pt(5, 2), Epsilon) {
		t.Fatalf("circle bbox = %+v", box)
	}
	if !Eq(box.Width(), 6, Epsilon) || !Eq(box.Height(), 6, Epsilon) {
		t.Fatalf("circle bbox extent = %v x %v, want 6 x 6", box.Width(), box.Height())
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Sub(Pt(3, 4)); !got.Eq(Pt(0, 0), Epsilon) {
		t.Fatalf("sub = %+v", got)
	}
	if got := p.Distance(Pt(0, 0)); !Eq(got, 5, Epsilon) {
		t.Fatalf("distance = %v, want 5", got)
	}
	if got := p.Scale(2).Add(Pt(1, 0)); !got.Eq(Pt(7, 8), Epsilon) {
		t.Fatalf("scale+add = %+v", got)
	}
}

func TestPointAtClamping(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(2, 0))
	if got := s.PointAt(0.25); !got.Eq(Pt(0.5, 0), Epsilon) {
		t.Fatalf("PointAt(0.25) = %+v", got)
	}
	if got := s.PointAt(1); math.Abs(got.X-2) > Epsilon {
		t.Fatalf("PointAt(1) = %+v", got)
	}
}
