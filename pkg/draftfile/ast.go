package draftfile

import (
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// FormatVersion is the version emitted by the encoder. The parser
// accepts any version it knows how to read; today that is only 1.
const FormatVersion = 1

// File represents a complete .draft file: a version header followed
// by shape statements.
// Example:
//
//	draft 1
//	line (0,0) (10,0) stroke black width 1
//	circle (5,5) r 2.5
type File struct {
	Version int          `parser:"KwDraft @Number"`
	Shapes  []*ShapeStmt `parser:"@@*"`
}

// ShapeStmt is one shape statement of any kind.
type ShapeStmt struct {
	Line   *LineStmt   `parser:"  @@"`
	Rect   *RectStmt   `parser:"| @@"`
	Circle *CircleStmt `parser:"| @@"`
	Poly   *PolyStmt   `parser:"| @@"`
}

// LineStmt declares a line segment.
// Example: line (0,0) (10,5) stroke red width 2
type LineStmt struct {
	A     *PointLit  `parser:"KwLine @@"`
	B     *PointLit  `parser:"@@"`
	Style *StyleOpts `parser:"@@?"`
}

// RectStmt declares an axis-aligned rectangle by two corners.
type RectStmt struct {
	A     *PointLit  `parser:"KwRect @@"`
	B     *PointLit  `parser:"@@"`
	Style *StyleOpts `parser:"@@?"`
}

// CircleStmt declares a circle by center and radius.
// Example: circle (5,5) r 2.5
type CircleStmt struct {
	Center *PointLit  `parser:"KwCircle @@"`
	Radius float64    `parser:"KwR @Number"`
	Style  *StyleOpts `parser:"@@?"`
}

// PolyStmt declares a closed polygon; the grammar requires at least
// three vertices.
type PolyStmt struct {
	Vertices []*PointLit `parser:"KwPoly @@ @@ @@+"`
	Style    *StyleOpts  `parser:"@@?"`
}

// PointLit is a coordinate pair literal, e.g. (3.5,-2).
type PointLit struct {
	X float64 `parser:"LParen @Number Comma"`
	Y float64 `parser:"@Number RParen"`
}

// Point converts the literal to a geometry point.
func (p *PointLit) Point() geometry.Point {
	return geometry.Pt(p.X, p.Y)
}

// StyleOpts is the optional style tail of a shape statement. Clauses
// appear in fixed order; omitted clauses take the default style.
type StyleOpts struct {
	Stroke string    `parser:"(KwStroke @(Ident | Color))?"`
	Width  *float64  `parser:"(KwWidth @Number)?"`
	Dash   []float64 `parser:"(KwDash @Number (Comma @Number)*)?"`
}

// style folds the options over the default style.
func (o *StyleOpts) style() draft.Style {
	s := draft.DefaultStyle()
	if o == nil {
		return s
	}
	if o.Stroke != "" {
		s.Stroke = o.Stroke
	}
	if o.Width != nil {
		s.Width = *o.Width
	}
	if len(o.Dash) > 0 {
		s.Dash = append([]float64{}, o.Dash...)
	}
	return s
}
