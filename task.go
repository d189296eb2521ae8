package uievents

// FrameTask is a per-frame re-check scheduled on an EventSystem. Tick is
// called once per Update with the unscaled time; returning false removes
// the task.
type FrameTask interface {
	Tick(now float64) bool
}

// FrameTaskFunc adapts a function to FrameTask.
type FrameTaskFunc func(now float64) bool

func (f FrameTaskFunc) Tick(now float64) bool { return f(now) }

// AddTask schedules t to run from the next Update on.
func (s *EventSystem) AddTask(t FrameTask) {
	s.tasks = append(s.tasks, t)
}

// runTasks ticks every task once. Tasks added while ticking wait for the
// next frame.
func (s *EventSystem) runTasks() {
	n := len(s.tasks)
	kept := 0
	for i := 0; i < n; i++ {
		t := s.tasks[i]
		if t.Tick(s.time) {
			s.tasks[kept] = t
			kept++
		}
	}
	kept += copy(s.tasks[kept:], s.tasks[n:])
	clear(s.tasks[kept:])
	s.tasks = s.tasks[:kept]
}

// HoldRepeat is a handler that calls OnRepeat while the left button is
// held on its node: first after Delay, then every Interval. Releasing or
// leaving the node stops it.
type HoldRepeat struct {
	Delay    float64
	Interval float64
	OnRepeat func()

	held     bool
	next     float64
	running  bool
	disabled bool
}

// NewHoldRepeat creates a HoldRepeat with the given timing.
func NewHoldRepeat(delay, interval float64, fn func()) *HoldRepeat {
	return &HoldRepeat{Delay: delay, Interval: interval, OnRepeat: fn}
}

// Held reports whether the repeat is currently armed.
func (h *HoldRepeat) Held() bool { return h.held }

// SetEnabled enables or disables the handler.
func (h *HoldRepeat) SetEnabled(enabled bool) {
	h.disabled = !enabled
	if !enabled {
		h.held = false
	}
}

// Enabled implements Enabler.
func (h *HoldRepeat) Enabled() bool { return !h.disabled }

func (h *HoldRepeat) OnPointerDown(ev *PointerEvent) {
	if ev.Button != MouseButtonLeft {
		return
	}
	sys := ev.System()
	if sys == nil {
		return
	}
	h.held = true
	h.next = sys.UnscaledTime() + h.Delay
	if !h.running {
		h.running = true
		sys.AddTask(h)
	}
}

func (h *HoldRepeat) OnPointerUp(ev *PointerEvent) {
	if ev.Button == MouseButtonLeft {
		h.held = false
	}
}

func (h *HoldRepeat) OnPointerExit(*PointerEvent) {
	h.held = false
}

// Tick implements FrameTask. The task ends as soon as the held flag clears.
func (h *HoldRepeat) Tick(now float64) bool {
	if !h.held {
		h.running = false
		return false
	}
	if now >= h.next {
		if h.OnRepeat != nil {
			h.OnRepeat()
		}
		h.next = now + h.Interval
	}
	return true
}
