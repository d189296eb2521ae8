package uievents

import "math"

// Vec2 is a 2D vector used for screen positions, deltas and directions.
// The coordinate system has its origin at the top-left, with Y increasing
// downward, matching Ebitengine screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// MoveDirection is the result of reducing a navigation axis vector to one
// of four directions.
type MoveDirection uint8

const (
	MoveNone MoveDirection = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
)

func (d MoveDirection) String() string {
	switch d {
	case MoveLeft:
		return "left"
	case MoveUp:
		return "up"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	default:
		return "none"
	}
}

// vector returns the screen-space unit vector for the direction (Y down).
func (d MoveDirection) vector() Vec2 {
	switch d {
	case MoveLeft:
		return Vec2{-1, 0}
	case MoveUp:
		return Vec2{0, -1}
	case MoveRight:
		return Vec2{1, 0}
	case MoveDown:
		return Vec2{0, 1}
	default:
		return Vec2{}
	}
}

// defaultMoveDeadZone is the axis magnitude below which no move is reported.
const defaultMoveDeadZone = 0.6

// DetermineMoveDirection reduces a navigation axis vector to a direction.
// Axis values follow input conventions: positive y means up. Vectors shorter
// than deadZone yield MoveNone; the dominant axis wins otherwise.
func DetermineMoveDirection(x, y, deadZone float64) MoveDirection {
	if x*x+y*y < deadZone*deadZone {
		return MoveNone
	}
	if math.Abs(x) > math.Abs(y) {
		if x > 0 {
			return MoveRight
		}
		return MoveLeft
	}
	if y > 0 {
		return MoveUp
	}
	return MoveDown
}
