package uievents

import "math"

// Surface is a hit-testable region, typically one canvas drawn by one
// camera. Surfaces register themselves with a SurfaceRegistry; the registry
// only looks them up and never owns them.
type Surface interface {
	// Raycast appends a RaycastResult for every hit under the pointer
	// position to out and returns the extended slice.
	Raycast(ev *PointerEvent, out []RaycastResult) []RaycastResult
	// EventCamera returns the camera used to map screen coordinates, or nil.
	EventCamera() *Camera
	// SortOrderPriority orders surfaces without distinct camera depth.
	// math.MinInt means "no priority".
	SortOrderPriority() int
	// RenderOrderPriority breaks ties between equal sort-order priorities.
	RenderOrderPriority() int
	// Enabled reports whether the surface participates in hit testing.
	Enabled() bool
}

// NoPriority is the default surface priority.
const NoPriority = math.MinInt

// SurfaceRegistry holds the surfaces queried by RaycastAll, in registration
// order.
type SurfaceRegistry struct {
	surfaces []Surface
}

// NewSurfaceRegistry creates an empty registry.
func NewSurfaceRegistry() *SurfaceRegistry {
	return &SurfaceRegistry{}
}

// Add registers s. Adding a surface twice is a no-op.
func (r *SurfaceRegistry) Add(s Surface) {
	if s == nil || r.index(s) >= 0 {
		return
	}
	r.surfaces = append(r.surfaces, s)
}

// Remove unregisters s. Removing an unknown surface is a no-op.
func (r *SurfaceRegistry) Remove(s Surface) {
	i := r.index(s)
	if i < 0 {
		return
	}
	copy(r.surfaces[i:], r.surfaces[i+1:])
	r.surfaces[len(r.surfaces)-1] = nil
	r.surfaces = r.surfaces[:len(r.surfaces)-1]
}

func (r *SurfaceRegistry) index(s Surface) int {
	for i, v := range r.surfaces {
		if v == s {
			return i
		}
	}
	return -1
}

// Surfaces returns the registered surfaces. The slice must not be modified.
func (r *SurfaceRegistry) Surfaces() []Surface { return r.surfaces }

// Len returns the number of registered surfaces.
func (r *SurfaceRegistry) Len() int { return len(r.surfaces) }

// Clear unregisters every surface.
func (r *SurfaceRegistry) Clear() {
	clear(r.surfaces)
	r.surfaces = r.surfaces[:0]
}

var defaultSurfaces *SurfaceRegistry

// DefaultSurfaces returns the process-wide registry, creating it on first
// use. Systems created without Options.Surfaces use it.
func DefaultSurfaces() *SurfaceRegistry {
	if defaultSurfaces == nil {
		defaultSurfaces = NewSurfaceRegistry()
	}
	return defaultSurfaces
}

// SortingLayers maps sorting-layer ids to their sort value. Layers defined
// later sort above layers defined earlier.
type SortingLayers struct {
	order map[int]int
}

// NewSortingLayers defines the given layer ids in order.
func NewSortingLayers(ids ...int) *SortingLayers {
	l := &SortingLayers{}
	for _, id := range ids {
		l.Define(id)
	}
	return l
}

// Define appends a layer. Redefining a layer keeps its first position.
func (l *SortingLayers) Define(id int) {
	if l.order == nil {
		l.order = make(map[int]int)
	}
	if _, ok := l.order[id]; ok {
		return
	}
	l.order[id] = len(l.order)
}

// Value returns the sort value for a layer id. Undefined layers use the raw
// id, so a nil *SortingLayers orders layers numerically.
func (l *SortingLayers) Value(id int) int {
	if l != nil {
		if v, ok := l.order[id]; ok {
			return v
		}
	}
	return id
}
