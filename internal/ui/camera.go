package ui

import (
	"github.com/OpenDraftLab/OpenDraft2D/pkg/geometry"
)

// Camera represents a viewport onto the drawing plane. World units
// map to screen pixels through zoom and the camera center; Y grows
// downward on both sides, so no axis flip is involved.
type Camera struct {
	// Center position in world coordinates
	CenterX float64
	CenterY float64

	// Zoom level (pixels per world unit)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera at the world origin.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates to screen pixels. It
// satisfies the snap resolver's view transform.
func (c *Camera) WorldToScreen(p geometry.Point) geometry.Point {
	x := (p.X - c.CenterX) * c.Zoom
	y := (p.Y - c.CenterY) * c.Zoom
	x += float64(c.ScreenWidth) / 2.0
	y += float64(c.ScreenHeight) / 2.0
	return geometry.Pt(x, y)
}

// ScreenToWorld converts screen pixels to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float64) geometry.Point {
	x := screenX - float64(c.ScreenWidth)/2.0
	y := screenY - float64(c.ScreenHeight)/2.0
	x /= c.Zoom
	y /= c.Zoom
	return geometry.Pt(x+c.CenterX, y+c.CenterY)
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms in or out keeping the point under the cursor
// stationary. factor > 1 zooms in.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 0.05 {
		c.Zoom = 0.05
	}
	if c.Zoom > 200.0 {
		c.Zoom = 200.0
	}

	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts the camera to show the whole bounding box with some
// padding.
func (c *Camera) Fit(bbox geometry.BBox) {
	width := bbox.Width()
	height := bbox.Height()
	if width <= 0 && height <= 0 {
		return
	}

	c.CenterX = (bbox.Min.X + bbox.Max.X) / 2.0
	c.CenterY = (bbox.Min.Y + bbox.Max.Y) / 2.0

	zoom := 200.0
	if width > 0 {
		zoom = float64(c.ScreenWidth) * 0.9 / width
	}
	if height > 0 {
		if zy := float64(c.ScreenHeight) * 0.9 / height; zy < zoom {
			zoom = zy
		}
	}
	c.Zoom = zoom
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
