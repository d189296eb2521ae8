package uievents

import (
	"cmp"
	"slices"
)

// RaycastResult is one hit produced by a Surface.
type RaycastResult struct {
	// Node is the hit node. NoNode marks a hit that blocks but has no target.
	Node    NodeID
	Surface Surface

	Distance     float64
	Depth        int
	SortingLayer int
	SortingOrder int
	// Index is the position of the result in the unsorted candidate list.
	Index int

	ScreenPosition Vec2
	WorldPosition  Vec2
}

// IsValid reports whether the result has a surface and a node.
func (r RaycastResult) IsValid() bool {
	return r.Surface != nil && r.Node != NoNode
}

// RaycastAll queries every enabled surface in reg for hits under the
// pointer, appends them to out and sorts the result topmost first. The
// returned slice is never nil.
//
// Surface implementations must be comparable (usually pointer types).
func RaycastAll(reg *SurfaceRegistry, layers *SortingLayers, ev *PointerEvent, out []RaycastResult) []RaycastResult {
	if out == nil {
		out = make([]RaycastResult, 0, 8)
	}
	start := len(out)
	if reg != nil {
		for _, s := range reg.Surfaces() {
			if s == nil || !s.Enabled() {
				continue
			}
			out = s.Raycast(ev, out)
		}
	}
	hits := out[start:]
	for i := range hits {
		hits[i].Index = i
	}
	slices.SortFunc(hits, func(a, b RaycastResult) int {
		return compareRaycast(layers, a, b)
	})
	return out
}

// compareRaycast orders hits topmost first:
//  1. across surfaces: camera depth, sort-order priority, render-order priority (all descending)
//  2. sorting layer value, descending
//  3. sorting order, descending
//  4. depth, descending
//  5. distance, ascending
//  6. index, ascending
func compareRaycast(layers *SortingLayers, a, b RaycastResult) int {
	if a.Surface != b.Surface && a.Surface != nil && b.Surface != nil {
		ac, bc := a.Surface.EventCamera(), b.Surface.EventCamera()
		if ac != nil && bc != nil && ac.Depth != bc.Depth {
			return cmp.Compare(bc.Depth, ac.Depth)
		}
		if c := cmp.Compare(b.Surface.SortOrderPriority(), a.Surface.SortOrderPriority()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Surface.RenderOrderPriority(), a.Surface.RenderOrderPriority()); c != 0 {
			return c
		}
	}
	if a.SortingLayer != b.SortingLayer {
		if c := cmp.Compare(layers.Value(b.SortingLayer), layers.Value(a.SortingLayer)); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(b.SortingOrder, a.SortingOrder); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Depth, a.Depth); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

// FindFirstRaycast returns the first result that has a node, skipping
// blocking hits with no target. It returns the zero result when there is
// none.
func FindFirstRaycast(results []RaycastResult) RaycastResult {
	for _, r := range results {
		if r.Node == NoNode {
			continue
		}
		return r
	}
	return RaycastResult{}
}
