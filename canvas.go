package uievents

import (
	"cmp"
	"slices"
)

// Graphic is one hit-testable element on a Canvas.
type Graphic struct {
	Node  NodeID
	Shape HitShape
	// Depth is the draw order within the canvas; higher is drawn later and
	// hit first.
	Depth int
	// RaycastTarget controls whether the graphic reports hits.
	RaycastTarget bool
}

// Canvas is a Surface made of graphics laid out in canvas space. Overlay
// canvases use screen coordinates directly; other canvases map the pointer
// through their Camera.
type Canvas struct {
	Name string
	// Camera maps screen to canvas space. Ignored when Overlay is set.
	Camera *Camera
	// Overlay canvases draw on top of every camera and order themselves by
	// SortingOrder and RenderOrder.
	Overlay      bool
	SortingLayer int
	SortingOrder int
	RenderOrder  int
	// PlaneDistance is reported as the hit distance for camera canvases.
	PlaneDistance float64

	tree     *Tree
	graphics []*Graphic
	disabled bool
	scratch  []*Graphic
}

// NewCanvas creates an empty canvas over tree. A nil camera makes the
// canvas an overlay.
func NewCanvas(tree *Tree, name string, cam *Camera) *Canvas {
	return &Canvas{
		Name:          name,
		Camera:        cam,
		Overlay:       cam == nil,
		PlaneDistance: 100,
		tree:          tree,
	}
}

// AddGraphic registers a hit shape for node. The graphic is placed above
// every graphic added before it.
func (c *Canvas) AddGraphic(node NodeID, shape HitShape) *Graphic {
	g := &Graphic{
		Node:          node,
		Shape:         shape,
		Depth:         len(c.graphics),
		RaycastTarget: true,
	}
	c.graphics = append(c.graphics, g)
	return g
}

// RemoveGraphics removes every graphic attached to node.
func (c *Canvas) RemoveGraphics(node NodeID) {
	c.graphics = slices.DeleteFunc(c.graphics, func(g *Graphic) bool {
		return g.Node == node
	})
}

// Graphics returns the canvas graphics in registration order.
func (c *Canvas) Graphics() []*Graphic { return c.graphics }

// GraphicFor returns the first graphic attached to node, or nil.
func (c *Canvas) GraphicFor(node NodeID) *Graphic {
	for _, g := range c.graphics {
		if g.Node == node {
			return g
		}
	}
	return nil
}

// SetEnabled toggles hit testing for the whole canvas.
func (c *Canvas) SetEnabled(enabled bool) { c.disabled = !enabled }

// Enabled implements Surface.
func (c *Canvas) Enabled() bool { return !c.disabled }

// EventCamera implements Surface.
func (c *Canvas) EventCamera() *Camera {
	if c.Overlay {
		return nil
	}
	return c.Camera
}

// SortOrderPriority implements Surface.
func (c *Canvas) SortOrderPriority() int {
	if c.Overlay {
		return c.SortingOrder
	}
	return NoPriority
}

// RenderOrderPriority implements Surface.
func (c *Canvas) RenderOrderPriority() int {
	if c.Overlay {
		return c.RenderOrder
	}
	return NoPriority
}

// ScreenToCanvas maps a screen point into canvas space. ok is false when
// the point lies outside the camera viewport.
func (c *Canvas) ScreenToCanvas(p Vec2) (Vec2, bool) {
	cam := c.EventCamera()
	if cam == nil {
		return p, true
	}
	if !cam.InViewport(p.X, p.Y) {
		return Vec2{}, false
	}
	x, y := cam.ScreenToWorld(p.X, p.Y)
	return Vec2{x, y}, true
}

// Raycast implements Surface. Hits are appended topmost first.
func (c *Canvas) Raycast(ev *PointerEvent, out []RaycastResult) []RaycastResult {
	world, ok := c.ScreenToCanvas(ev.Position)
	if !ok {
		return out
	}

	hits := c.scratch[:0]
	for _, g := range c.graphics {
		if !g.RaycastTarget || g.Shape == nil {
			continue
		}
		if c.tree != nil && !c.tree.ActiveInHierarchy(g.Node) {
			continue
		}
		if g.Shape.Contains(world.X, world.Y) {
			hits = append(hits, g)
		}
	}
	slices.SortStableFunc(hits, func(a, b *Graphic) int {
		return cmp.Compare(b.Depth, a.Depth)
	})

	distance := 0.0
	if c.EventCamera() != nil {
		distance = c.PlaneDistance
	}
	for _, g := range hits {
		out = append(out, RaycastResult{
			Node:           g.Node,
			Surface:        c,
			Distance:       distance,
			Depth:          g.Depth,
			SortingLayer:   c.SortingLayer,
			SortingOrder:   c.SortingOrder,
			Index:          len(out),
			ScreenPosition: ev.Position,
			WorldPosition:  world,
		})
	}
	clear(hits)
	c.scratch = hits[:0]
	return out
}
