// Package draftfile reads and writes the .draft interchange format, a
// small keyword-led text format for shape lists.
package draftfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// Parser parses .draft files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a .draft parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(DraftLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a .draft document from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if file.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported draft version %d", file.Version)
	}
	return file, nil
}

// ParseString parses a .draft document from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if file.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported draft version %d", file.Version)
	}
	return file, nil
}

// ParseFile parses a .draft document from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Decode converts the parsed document into shapes, assigning fresh
// ids in statement order.
func (f *File) Decode() ([]draft.Shape, error) {
	shapes := make([]draft.Shape, 0, len(f.Shapes))
	for i, stmt := range f.Shapes {
		shape, err := stmt.decode()
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i+1, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func (s *ShapeStmt) decode() (draft.Shape, error) {
	switch {
	case s.Line != nil:
		return draft.NewLine(s.Line.A.Point(), s.Line.B.Point(), s.Line.Style.style()), nil

	case s.Rect != nil:
		a, b := s.Rect.A.Point(), s.Rect.B.Point()
		if geometry.Eq(a.X, b.X, geometry.Epsilon) || geometry.Eq(a.Y, b.Y, geometry.Epsilon) {
			return draft.Shape{}, fmt.Errorf("rect has no extent")
		}
		return draft.NewRectangle(a, b, s.Rect.Style.style()), nil

	case s.Circle != nil:
		if s.Circle.Radius <= 0 {
			return draft.Shape{}, fmt.Errorf("circle radius %v must be positive", s.Circle.Radius)
		}
		c := s.Circle.Center.Point()
		rim := geometry.Pt(c.X+s.Circle.Radius, c.Y)
		return draft.NewCircle(c, rim, s.Circle.Style.style()), nil

	case s.Poly != nil:
		vs := make([]geometry.Point, len(s.Poly.Vertices))
		for i, v := range s.Poly.Vertices {
			vs[i] = v.Point()
		}
		return draft.NewPolygon(vs, s.Poly.Style.style()), nil

	default:
		return draft.Shape{}, fmt.Errorf("empty shape statement")
	}
}
