package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draftfile"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// parsePoint parses "x,y" into a world point.
func parsePoint(s string) (geometry.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point{}, fmt.Errorf("point %q must be x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geometry.Pt(x, y), nil
}

// loadShapes reads a .draft file into shapes.
func loadShapes(path string) ([]draft.Shape, error) {
	parser, err := draftfile.NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return file.Decode()
}

// describeShape renders a one-line summary for listings.
func describeShape(s draft.Shape) string {
	switch s.Kind {
	case draft.KindLine:
		return fmt.Sprintf("line (%.2f,%.2f) -> (%.2f,%.2f)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	case draft.KindRectangle:
		return fmt.Sprintf("rect (%.2f,%.2f) -> (%.2f,%.2f)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	case draft.KindCircle:
		return fmt.Sprintf("circle (%.2f,%.2f) r=%.2f", s.Center.X, s.Center.Y, s.Radius)
	case draft.KindPolygon:
		return fmt.Sprintf("poly %d vertices", len(s.Vertices))
	default:
		return "unknown"
	}
}
