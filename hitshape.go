package uievents

import "math"

// HitShape is a hit area in canvas coordinates.
type HitShape interface {
	// Contains reports whether (x, y) lies inside the shape.
	Contains(x, y float64) bool
	// Bounds returns the shape's axis-aligned bounding box. Navigation uses
	// it to find neighbours.
	Bounds() Rect
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area. Edges are inclusive.
type HitRect struct {
	X, Y, Width, Height float64
}

func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x-r.X <= r.Width && y-r.Y <= r.Height
}

func (r HitRect) Bounds() Rect { return Rect(r) }

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	d := Vec2{x - c.CenterX, y - c.CenterY}
	return d.LenSq() <= c.Radius*c.Radius
}

func (c HitCircle) Bounds() Rect {
	return Rect{c.CenterX - c.Radius, c.CenterY - c.Radius, 2 * c.Radius, 2 * c.Radius}
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) is on the inner side of every edge.
// Points on an edge count as inside.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	side := 0.0
	prev := p.Points[len(p.Points)-1]
	for _, cur := range p.Points {
		cross := (cur.X-prev.X)*(y-prev.Y) - (cur.Y-prev.Y)*(x-prev.X)
		if cross != 0 {
			if side != 0 && (cross > 0) != (side > 0) {
				return false
			}
			side = cross
		}
		prev = cur
	}
	return true
}

func (p HitPolygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}
