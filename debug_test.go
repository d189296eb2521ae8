package uievents

import (
	"strings"
	"testing"
)

func TestDebugString(t *testing.T) {
	e := newTestEnv(t, Config{})
	a := e.node(e.root, "a", 0, 0, 50, 50)
	e.moveTo(10, 10)
	e.sys.SetSelected(a, nil)

	s := e.sys.DebugString()
	for _, want := range []string{
		"module: *uievents.StandaloneInputModule",
		"selected: root/a",
		"pointer -1 (left)",
		"position: 10.0,10.0",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("DebugString missing %q:\n%s", want, s)
		}
	}
}

func TestDebugFrameLog(t *testing.T) {
	buf := captureLog(t)
	e := newTestEnv(t, Config{Debug: true})
	e.node(e.root, "a", 0, 0, 50, 50)
	buf.Reset()

	e.moveTo(10, 10)
	out := buf.String()
	if !strings.Contains(out, "frame") || !strings.Contains(out, "raycasts=1") {
		t.Errorf("frame stats not logged: %s", out)
	}
}

func TestDebugFrameLogOff(t *testing.T) {
	buf := captureLog(t)
	e := newTestEnv(t, Config{})
	buf.Reset()
	e.frame()
	if strings.Contains(buf.String(), "raycasts") {
		t.Errorf("frame stats logged without debug: %s", buf.String())
	}
}

func TestDebugTreeDepthWarning(t *testing.T) {
	buf := captureLog(t)
	SetDebugMode(true)
	t.Cleanup(func() { SetDebugMode(false) })

	tree := NewTree()
	n := tree.NewNode("root")
	for range debugMaxTreeDepth - 1 {
		n = tree.NewChild(n, "n")
	}
	if strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Fatalf("warned at depth %d", debugMaxTreeDepth)
	}
	tree.NewChild(n, "deep")
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("no depth warning: %s", buf.String())
	}
}
