package geometry

import "math"

// Epsilon is the default tolerance for treating near-equal floating
// point world coordinates as equal.
const Epsilon = 1e-9

// Eq reports whether a and b are equal within eps.
func Eq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Point is a location in world coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is a shorthand constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Eq reports coordinate-wise equality within eps.
func (p Point) Eq(q Point, eps float64) bool {
	return Eq(p.X, q.X, eps) && Eq(p.Y, q.Y, eps)
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A Point
	B Point
}

// Seg is a shorthand constructor.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// PointAt returns A + t*(B-A).
func (s Segment) PointAt(t float64) Point {
	return Point{
		X: s.A.X + t*(s.B.X-s.A.X),
		Y: s.A.Y + t*(s.B.Y-s.A.Y),
	}
}

// DistanceTo returns the shortest distance from p to the segment,
// clamping the projection to the segment extent.
func (s Segment) DistanceTo(p Point) float64 {
	d := s.B.Sub(s.A)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return s.A.Distance(p)
	}
	t := ((p.X-s.A.X)*d.X + (p.Y-s.A.Y)*d.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return s.PointAt(t).Distance(p)
}

// BBox returns the axis-aligned bounding box of the segment.
func (s Segment) BBox() BBox {
	return BBox{
		Min: Point{X: math.Min(s.A.X, s.B.X), Y: math.Min(s.A.Y, s.B.Y)},
		Max: Point{X: math.Max(s.A.X, s.B.X), Y: math.Max(s.A.Y, s.B.Y)},
	}
}

// Circle is a center plus radius.
type Circle struct {
	Center Point
	Radius float64
}

// BBox returns the axis-aligned bounding box of the circle.
func (c Circle) BBox() BBox {
	return BBox{
		Min: Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min Point
	Max Point
}

// Expand grows the box by d on every side.
func (b BBox) Expand(d float64) BBox {
	return BBox{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Union returns the minimal box containing both boxes.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Point{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Overlaps reports whether the boxes intersect.
func (b BBox) Overlaps(o BBox) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Contains reports whether p lies inside the box.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b BBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}
