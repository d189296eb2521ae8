package uievents

// Default axis and button names read by StandaloneInputModule.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
	ButtonSubmit   = "Submit"
	ButtonCancel   = "Cancel"
)

// TouchPhase is the lifecycle stage of a touch in the current frame.
type TouchPhase uint8

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCanceled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchStationary:
		return "stationary"
	case TouchEnded:
		return "ended"
	case TouchCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// TouchType distinguishes screen touches from indirect (trackpad) touches.
type TouchType uint8

const (
	TouchDirect TouchType = iota
	TouchIndirect
	TouchStylus
)

// Touch is one sampled touch point.
type Touch struct {
	ID       int
	Phase    TouchPhase
	Type     TouchType
	Position Vec2
}

// InputSource is a frame-local view of sampled input. Implementations are
// read by input modules once per Update.
type InputSource interface {
	MousePresent() bool
	// MouseButtonDown reports a press that happened this frame.
	MouseButtonDown(b MouseButton) bool
	// MouseButtonUp reports a release that happened this frame.
	MouseButtonUp(b MouseButton) bool
	// MouseButton reports whether the button is held.
	MouseButton(b MouseButton) bool
	MousePosition() Vec2
	MouseScrollDelta() Vec2

	TouchSupported() bool
	TouchCount() int
	Touch(i int) Touch

	// AxisRaw returns the unsmoothed value of a named axis in [-1, 1].
	AxisRaw(name string) float64
	// ButtonDown reports whether a named virtual button (or axis) was
	// pressed this frame.
	ButtonDown(name string) bool
}

// Poller is implemented by input sources that sample a device. Input
// modules call Poll from UpdateModule, once per frame.
type Poller interface {
	Poll()
}

// Snapshot is a plain InputSource value. Tests and scripted replay fill it
// directly; EbitenInput fills it from the device.
type Snapshot struct {
	Mouse    bool
	Cursor   Vec2
	Scroll   Vec2
	Pressed  [3]bool
	Released [3]bool
	Held     [3]bool
	TouchOK  bool
	Touches  []Touch
	Axes     map[string]float64
	Buttons  map[string]bool
}

// NewSnapshot returns a snapshot with a mouse present.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Mouse:   true,
		Axes:    make(map[string]float64),
		Buttons: make(map[string]bool),
	}
}

func (s *Snapshot) MousePresent() bool { return s.Mouse }

func (s *Snapshot) MouseButtonDown(b MouseButton) bool { return int(b) < 3 && s.Pressed[b] }

func (s *Snapshot) MouseButtonUp(b MouseButton) bool { return int(b) < 3 && s.Released[b] }

func (s *Snapshot) MouseButton(b MouseButton) bool { return int(b) < 3 && s.Held[b] }

func (s *Snapshot) MousePosition() Vec2 { return s.Cursor }

func (s *Snapshot) MouseScrollDelta() Vec2 { return s.Scroll }

func (s *Snapshot) TouchSupported() bool { return s.TouchOK }

func (s *Snapshot) TouchCount() int { return len(s.Touches) }

func (s *Snapshot) Touch(i int) Touch { return s.Touches[i] }

func (s *Snapshot) AxisRaw(name string) float64 { return s.Axes[name] }

func (s *Snapshot) ButtonDown(name string) bool { return s.Buttons[name] }

// Press records a mouse press this frame.
func (s *Snapshot) Press(b MouseButton) {
	s.Pressed[b] = true
	s.Held[b] = true
}

// Release records a mouse release this frame.
func (s *Snapshot) Release(b MouseButton) {
	s.Released[b] = true
	s.Held[b] = false
}

// SetAxis sets a named axis value.
func (s *Snapshot) SetAxis(name string, v float64) {
	if s.Axes == nil {
		s.Axes = make(map[string]float64)
	}
	s.Axes[name] = v
}

// PressButton records a named button press this frame.
func (s *Snapshot) PressButton(name string) {
	if s.Buttons == nil {
		s.Buttons = make(map[string]bool)
	}
	s.Buttons[name] = true
}

// EndFrame clears per-frame edges: presses, releases, scroll, button
// presses and finished touches. Remaining touches become stationary so the
// next frame does not press them again.
func (s *Snapshot) EndFrame() {
	s.Pressed = [3]bool{}
	s.Released = [3]bool{}
	s.Scroll = Vec2{}
	clear(s.Buttons)
	kept := s.Touches[:0]
	for _, t := range s.Touches {
		switch t.Phase {
		case TouchEnded, TouchCanceled:
			continue
		case TouchBegan, TouchMoved:
			t.Phase = TouchStationary
		}
		kept = append(kept, t)
	}
	s.Touches = kept
}
