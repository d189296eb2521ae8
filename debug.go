package uievents

import (
	"fmt"
	"strings"
)

// globalDebug enables tree checks in Tree methods, which have no system to
// consult. Set through SetDebugMode or Config.Debug.
var globalDebug bool

// SetDebugMode enables or disables debug checks process-wide. When enabled,
// tree depth warnings are logged and each system logs per-frame stats at
// debug level.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// frameStats counts pipeline work for one Update.
type frameStats struct {
	raycasts int
	hits     int
	presses  int
	events   int
	panics   int
}

func (s *EventSystem) debugLog() {
	if !globalDebug && !s.cfg.Debug {
		return
	}
	st := s.stats
	Logger().Debug("frame",
		"frame", s.frame,
		"raycasts", st.raycasts,
		"hits", st.hits,
		"presses", st.presses,
		"events", st.events,
		"panics", st.panics,
		"pointers", s.pointerCount(),
		"selected", s.tree.Path(s.selected))
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(t *Tree, id NodeID) {
	if depth := t.Depth(id) + 1; depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", t.Name(id))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(t *Tree, id NodeID) {
	if n := t.NumChildren(id); n > debugMaxChildCount {
		Logger().Warn("node has too many children",
			"node", t.Name(id), "children", n, "threshold", debugMaxChildCount)
	}
}

// DebugString describes the system state: current module, selection and
// every tracked pointer.
func (s *EventSystem) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frame: %d time: %.3f\n", s.frame, s.time)
	fmt.Fprintf(&sb, "module: %T\n", s.current)
	fmt.Fprintf(&sb, "selected: %s\n", s.tree.Path(s.Selected()))
	if pm, ok := s.current.(pointerModule); ok {
		for _, id := range pm.PointerIDs() {
			ev, _ := pm.PointerData(id)
			sb.WriteString(ev.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// pointerModule is implemented by modules that track pointers.
type pointerModule interface {
	PointerIDs() []int
	PointerData(id int) (*PointerEvent, bool)
}

func (s *EventSystem) pointerCount() int {
	if pm, ok := s.current.(pointerModule); ok {
		return len(pm.PointerIDs())
	}
	return 0
}
