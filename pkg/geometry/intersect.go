package geometry

import "math"

// SegmentSegment computes the intersection of two line segments.
// Parallel segments and collinear overlaps report no intersection;
// the overlap case has no single meaningful point.
func SegmentSegment(a, b Segment, eps float64) (Point, bool) {
	x1, y1 := a.A.X, a.A.Y
	x2, y2 := a.B.X, a.B.Y
	x3, y3 := b.A.X, b.A.Y
	x4, y4 := b.B.X, b.B.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if Eq(den, 0, eps) {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den

	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return Point{}, false
	}
	return a.PointAt(clamp01(t)), true
}

// SegmentCircle computes the intersections of a segment and a circle.
// Returns zero, one (tangent), or two points.
func SegmentCircle(s Segment, c Circle, eps float64) []Point {
	// Solve |A + t(B-A) - C|^2 = r^2 for t in [0, 1].
	d := s.B.Sub(s.A)
	f := s.A.Sub(c.Center)

	qa := d.X*d.X + d.Y*d.Y
	if Eq(qa, 0, eps) {
		// Zero-length segment, degenerate.
		return nil
	}
	qb := 2 * (f.X*d.X + f.Y*d.Y)
	qc := f.X*f.X + f.Y*f.Y - c.Radius*c.Radius

	disc := qb*qb - 4*qa*qc
	if disc < -eps {
		return nil
	}
	if Eq(disc, 0, eps) {
		t := -qb / (2 * qa)
		if t >= -eps && t <= 1+eps {
			return []Point{s.PointAt(clamp01(t))}
		}
		return nil
	}

	root := math.Sqrt(disc)
	var pts []Point
	for _, t := range []float64{(-qb + root) / (2 * qa), (-qb - root) / (2 * qa)} {
		if t >= -eps && t <= 1+eps {
			pts = append(pts, s.PointAt(clamp01(t)))
		}
	}
	return pts
}

// CircleCircle computes the intersections of two circles. The second
// result is false for the coincident-circles case, which has no
// meaningful finite answer. Tangent circles yield a single point.
func CircleCircle(a, b Circle, eps float64) ([]Point, bool) {
	d := a.Center.Distance(b.Center)

	if Eq(d, 0, eps) && Eq(a.Radius, b.Radius, eps) {
		return nil, false
	}
	if d > a.Radius+b.Radius+eps {
		return nil, true
	}
	if d < math.Abs(a.Radius-b.Radius)-eps {
		return nil, true
	}

	base := math.Atan2(b.Center.Y-a.Center.Y, b.Center.X-a.Center.X)

	// External or internal tangency: single touch point along the
	// center line.
	if Eq(d, a.Radius+b.Radius, eps) || Eq(d, math.Abs(a.Radius-b.Radius), eps) {
		t := a.Radius / d
		if Eq(d, math.Abs(a.Radius-b.Radius), eps) && b.Radius > a.Radius {
			t = -t
		}
		return []Point{{
			X: a.Center.X + t*(b.Center.X-a.Center.X),
			Y: a.Center.Y + t*(b.Center.Y-a.Center.Y),
		}}, true
	}

	// Law of cosines for the half-angle at circle a's center.
	cos := (a.Radius*a.Radius + d*d - b.Radius*b.Radius) / (2 * a.Radius * d)
	cos = math.Max(-1, math.Min(1, cos))
	ang := math.Acos(cos)

	return []Point{
		{
			X: a.Center.X + a.Radius*math.Cos(base+ang),
			Y: a.Center.Y + a.Radius*math.Sin(base+ang),
		},
		{
			X: a.Center.X + a.Radius*math.Cos(base-ang),
			Y: a.Center.Y + a.Radius*math.Sin(base-ang),
		},
	}, true
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
