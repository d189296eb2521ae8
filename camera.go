package uievents

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// pan is an eased camera move in progress. The tween runs a 0..1 progress
// value that interpolates between from and to.
type pan struct {
	from, to Vec2
	progress *gween.Tween
}

// Camera maps screen coordinates into a surface's canvas space. Hit testing
// follows the camera, so a panning camera moves what is under the pointer.
type Camera struct {
	// X and Y are the canvas-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	// Pointers outside it never hit the camera's surfaces.
	Viewport Rect
	// Depth orders surfaces rendered by different cameras; higher depth
	// is drawn later and hit first.
	Depth float64

	// BoundsEnabled keeps the visible canvas area inside Bounds.
	BoundsEnabled bool
	Bounds        Rect

	pan *pan
}

// NewCamera creates a camera for viewport. It starts centered on the
// viewport, so canvas and screen coordinates coincide until it moves.
func NewCamera(viewport Rect) *Camera {
	c := viewport.Center()
	return &Camera{X: c.X, Y: c.Y, Zoom: 1, Viewport: viewport}
}

// ScrollTo pans the camera to (x, y) over duration seconds. Update drives
// the pan; a new ScrollTo replaces one in progress.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.pan = &pan{
		from:     Vec2{c.X, c.Y},
		to:       Vec2{x, y},
		progress: gween.New(0, 1, duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo pan is in progress.
func (c *Camera) Scrolling() bool { return c.pan != nil }

// SetBounds enables clamping to bounds.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances a pan by dt seconds and applies bounds.
func (c *Camera) Update(dt float32) {
	if p := c.pan; p != nil {
		t, done := p.progress.Update(dt)
		pos := p.to
		if !done {
			pos = p.from.Add(p.to.Sub(p.from).Scale(float64(t)))
		} else {
			c.pan = nil
		}
		c.X, c.Y = pos.X, pos.Y
	}
	if c.BoundsEnabled {
		halfW := c.Viewport.Width / (2 * c.Zoom)
		halfH := c.Viewport.Height / (2 * c.Zoom)
		c.X = clampCenter(c.X, c.Bounds.X, c.Bounds.Width, halfW)
		c.Y = clampCenter(c.Y, c.Bounds.Y, c.Bounds.Height, halfH)
	}
}

// clampCenter keeps a camera center v with half-extent half inside the span
// [lo, lo+size]. Spans narrower than the view center the camera instead.
func clampCenter(v, lo, size, half float64) float64 {
	if size < 2*half {
		return lo + size/2
	}
	return math.Max(lo+half, math.Min(v, lo+size-half))
}

// viewCenter is the screen-space center of the viewport.
func (c *Camera) viewCenter() Vec2 {
	return Vec2{c.Viewport.X + c.Viewport.Width/2, c.Viewport.Y + c.Viewport.Height/2}
}

// WorldToScreen converts canvas coordinates to screen coordinates: offset
// from the camera, rotated by -Rotation, scaled by Zoom, then moved to the
// viewport center.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sin, cos := math.Sincos(-c.Rotation)
	dx, dy := wx-c.X, wy-c.Y
	vc := c.viewCenter()
	return vc.X + c.Zoom*(cos*dx-sin*dy), vc.Y + c.Zoom*(sin*dx+cos*dy)
}

// ScreenToWorld converts screen coordinates to canvas coordinates. A zero
// zoom maps every point to the camera position.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	if c.Zoom == 0 {
		return c.X, c.Y
	}
	vc := c.viewCenter()
	dx, dy := (sx-vc.X)/c.Zoom, (sy-vc.Y)/c.Zoom
	sin, cos := math.Sincos(c.Rotation)
	return c.X + cos*dx - sin*dy, c.Y + sin*dx + cos*dy
}

// InViewport reports whether a screen point lies inside the camera viewport.
func (c *Camera) InViewport(sx, sy float64) bool {
	return c.Viewport.Contains(sx, sy)
}
