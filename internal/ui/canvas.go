package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/session"
)

var namedColors = map[string]color.NRGBA{
	"black":  {R: 0, G: 0, B: 0, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 220, G: 50, B: 47, A: 255},
	"green":  {R: 40, G: 160, B: 70, A: 255},
	"blue":   {R: 38, G: 100, B: 210, A: 255},
	"orange": {R: 255, G: 128, B: 0, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"grey":   {R: 128, G: 128, B: 128, A: 255},
}

// strokeColor resolves a style color, accepting names and #rrggbb
// hex. Unknown colors fall back to black.
func strokeColor(name string) color.NRGBA {
	if c, ok := namedColors[name]; ok {
		return c
	}
	if len(name) == 7 && name[0] == '#' {
		if v, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return color.NRGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 255,
			}
		}
	}
	return namedColors["black"]
}

func toF32(p geometry.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

// drawShape strokes a shape in screen space through the camera.
// Dashed styles are honored for straight edges; circles are always
// stroked solid.
func drawShape(ops *op.Ops, cam *Camera, s draft.Shape, col color.NRGBA, width float32) {
	switch s.Kind {
	case draft.KindCircle:
		drawCircle(ops, cam, s.Center, s.Radius, col, width)
	default:
		edges := s.Edges()
		if len(edges) == 0 {
			return
		}
		for _, e := range edges {
			drawSegment(ops, cam, e.A, e.B, col, width, s.Style.Dash)
		}
	}
}

func drawCircle(ops *op.Ops, cam *Camera, center geometry.Point, radius float64, col color.NRGBA, width float32) {
	c := cam.WorldToScreen(center)
	r := radius * cam.Zoom
	ellipse := clip.Ellipse{
		Min: image.Pt(int(c.X-r), int(c.Y-r)),
		Max: image.Pt(int(c.X+r), int(c.Y+r)),
	}
	paint.FillShape(ops, col, clip.Stroke{
		Path:  ellipse.Path(ops),
		Width: width,
	}.Op())
}

func drawSegment(ops *op.Ops, cam *Camera, a, b geometry.Point, col color.NRGBA, width float32, dash []float64) {
	sa := cam.WorldToScreen(a)
	sb := cam.WorldToScreen(b)
	if len(dash) == 0 {
		strokeLine(ops, toF32(sa), toF32(sb), col, width)
		return
	}
	for _, part := range dashSegments(sa, sb, dash) {
		strokeLine(ops, toF32(part[0]), toF32(part[1]), col, width)
	}
}

func strokeLine(ops *op.Ops, a, b f32.Point, col color.NRGBA, width float32) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(a)
	p.LineTo(b)
	paint.FillShape(ops, col, clip.Stroke{
		Path:  p.End(),
		Width: width,
	}.Op())
}

// dashSegments splits the screen-space segment a-b into drawn
// sub-segments following the on/off dash pattern, in pixels.
func dashSegments(a, b geometry.Point, pattern []float64) [][2]geometry.Point {
	total := a.Distance(b)
	if total <= 0 {
		return nil
	}
	dir := geometry.Pt((b.X-a.X)/total, (b.Y-a.Y)/total)

	var out [][2]geometry.Point
	pos := 0.0
	idx := 0
	for pos < total {
		step := pattern[idx%len(pattern)]
		if step <= 0 {
			step = 1
		}
		end := math.Min(pos+step, total)
		if idx%2 == 0 {
			out = append(out, [2]geometry.Point{
				a.Add(dir.Scale(pos)),
				a.Add(dir.Scale(end)),
			})
		}
		pos = end
		idx++
	}
	return out
}

// drawSnapMarker draws the red cross indicating the active snap
// point.
func drawSnapMarker(ops *op.Ops, cam *Camera, p geometry.Point) {
	const arm = 6
	sp := cam.WorldToScreen(p)
	col := namedColors["red"]
	strokeLine(ops,
		f32.Pt(float32(sp.X-arm), float32(sp.Y)),
		f32.Pt(float32(sp.X+arm), float32(sp.Y)), col, 1.5)
	strokeLine(ops,
		f32.Pt(float32(sp.X), float32(sp.Y-arm)),
		f32.Pt(float32(sp.X), float32(sp.Y+arm)), col, 1.5)
}

// drawSelectionHandles draws small filled squares on the resize grips
// of a selected shape.
func drawSelectionHandles(ops *op.Ops, cam *Camera, s draft.Shape) {
	const half = 3
	col := namedColors["blue"]
	for _, p := range session.ResizeHandles(s) {
		sp := cam.WorldToScreen(p)
		paint.FillShape(ops, col, clip.Rect{
			Min: image.Pt(int(sp.X-half), int(sp.Y-half)),
			Max: image.Pt(int(sp.X+half), int(sp.Y+half)),
		}.Op())
	}
}
