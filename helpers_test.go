package uievents

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// testEnv is a tree with an overlay canvas routed by an enabled system
// whose standalone module reads a hand-filled Snapshot.
type testEnv struct {
	t      *testing.T
	tree   *Tree
	root   NodeID
	canvas *Canvas
	sys    *EventSystem
	in     *Snapshot
	mod    *StandaloneInputModule
	trace  []string
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	tree := NewTree()
	e := &testEnv{
		t:      t,
		tree:   tree,
		root:   tree.NewNode("root"),
		canvas: NewCanvas(tree, "test", nil),
		in:     NewSnapshot(),
	}
	reg := NewSurfaceRegistry()
	reg.Add(e.canvas)
	e.sys = NewEventSystem(tree, Options{Config: cfg, Surfaces: reg})
	e.mod = NewStandaloneInputModule(e.sys, e.in)
	e.sys.AddModule(e.mod)
	e.sys.Enable()
	t.Cleanup(e.sys.Shutdown)

	// The first frame only activates the module. It takes no time so
	// later frames land on exact multiples of their dt.
	e.step(0)
	if e.sys.CurrentModule() != e.mod {
		t.Fatal("standalone module not activated")
	}
	return e
}

// node creates a child of parent with a rectangular graphic.
func (e *testEnv) node(parent NodeID, name string, x, y, w, h float64) NodeID {
	id := e.tree.NewChild(parent, name)
	e.canvas.AddGraphic(id, HitRect{X: x, Y: y, Width: w, Height: h})
	return id
}

// traceOn records "name:capability" for every event in caps delivered to id.
func (e *testEnv) traceOn(id NodeID, caps ...Capability) {
	var set CapabilitySet
	for _, c := range caps {
		set = set.With(c)
	}
	name := e.tree.Name(id)
	e.tree.AddHandler(id, NewTracer(set, func(c Capability, _ Event) {
		e.trace = append(e.trace, name+":"+c.String())
	}))
}

func (e *testEnv) step(dt float64) {
	e.sys.Update(dt)
	e.in.EndFrame()
}

// frame runs one 1/60 s frame.
func (e *testEnv) frame() { e.step(1.0 / 60) }

func (e *testEnv) moveTo(x, y float64) {
	e.in.Cursor = Vec2{x, y}
	e.frame()
}

func (e *testEnv) press(b MouseButton) {
	e.in.Press(b)
	e.frame()
}

func (e *testEnv) release(b MouseButton) {
	e.in.Release(b)
	e.frame()
}

func (e *testEnv) click(x, y float64) {
	e.in.Cursor = Vec2{x, y}
	e.press(MouseButtonLeft)
	e.release(MouseButtonLeft)
}

func (e *testEnv) mouse() *PointerEvent {
	e.t.Helper()
	ev, ok := e.mod.PointerData(MouseLeftID)
	if !ok {
		e.t.Fatal("no left mouse record")
	}
	return ev
}

func (e *testEnv) resetTrace() { e.trace = nil }

func (e *testEnv) expectTrace(want ...string) {
	e.t.Helper()
	got := strings.Join(e.trace, " ")
	if w := strings.Join(want, " "); got != w {
		e.t.Errorf("trace:\n got: %s\nwant: %s", got, w)
	}
}

// captureLog routes package logging into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	t.Cleanup(func() { SetLogger(prev) })
	return &buf
}
