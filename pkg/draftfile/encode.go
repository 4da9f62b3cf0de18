package draftfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// Encode writes the shapes as a .draft document, one statement per
// line in the given order. Ids are not persisted; a later Decode
// assigns fresh ones.
func Encode(w io.Writer, shapes []draft.Shape) error {
	if _, err := fmt.Fprintf(w, "draft %d\n", FormatVersion); err != nil {
		return err
	}
	for _, s := range shapes {
		stmt, err := encodeShape(s)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, stmt+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// EncodeString renders the shapes as a .draft document string.
func EncodeString(shapes []draft.Shape) (string, error) {
	var b strings.Builder
	if err := Encode(&b, shapes); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteFile writes the shapes to path as a .draft document.
func WriteFile(path string, shapes []draft.Shape) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(f, shapes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeShape(s draft.Shape) (string, error) {
	var b strings.Builder
	switch s.Kind {
	case draft.KindLine:
		b.WriteString("line " + point(s.Start) + " " + point(s.End))
	case draft.KindRectangle:
		b.WriteString("rect " + point(s.Start) + " " + point(s.End))
	case draft.KindCircle:
		b.WriteString("circle " + point(s.Center) + " r " + num(s.Radius))
	case draft.KindPolygon:
		if len(s.Vertices) < 3 {
			return "", fmt.Errorf("polygon with %d vertices", len(s.Vertices))
		}
		b.WriteString("poly")
		for _, v := range s.Vertices {
			b.WriteString(" " + point(v))
		}
	default:
		return "", fmt.Errorf("unknown shape kind %v", s.Kind)
	}

	if s.Style.Stroke != "" {
		b.WriteString(" stroke " + s.Style.Stroke)
	}
	if s.Style.Width > 0 {
		b.WriteString(" width " + num(s.Style.Width))
	}
	if len(s.Style.Dash) > 0 {
		parts := make([]string, len(s.Style.Dash))
		for i, d := range s.Style.Dash {
			parts[i] = num(d)
		}
		b.WriteString(" dash " + strings.Join(parts, ","))
	}
	return b.String(), nil
}

func point(p geometry.Point) string {
	return "(" + num(p.X) + "," + num(p.Y) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
