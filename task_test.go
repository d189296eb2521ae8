package uievents

import "testing"

func TestRunTasks(t *testing.T) {
	sys := newFakeSystem(t)
	var ticks []string
	once := FrameTaskFunc(func(float64) bool {
		ticks = append(ticks, "once")
		return false
	})
	var added bool
	forever := FrameTaskFunc(func(float64) bool {
		ticks = append(ticks, "forever")
		if !added {
			added = true
			sys.AddTask(once)
		}
		return true
	})
	sys.AddTask(forever)

	sys.Update(0) // forever, schedules once for the next frame
	sys.Update(0) // forever, once
	sys.Update(0) // forever

	want := []string{"forever", "forever", "once", "forever"}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d = %s, want %s", i, ticks[i], want[i])
		}
	}
}

func TestTaskSeesUnscaledTime(t *testing.T) {
	sys := newFakeSystem(t)
	var got []float64
	sys.AddTask(FrameTaskFunc(func(now float64) bool {
		got = append(got, now)
		return len(got) < 2
	}))
	sys.Update(0.25)
	sys.Update(0.25)
	sys.Update(0.25)
	if len(got) != 2 || got[0] != 0.25 || got[1] != 0.5 {
		t.Errorf("times = %v, want [0.25 0.5]", got)
	}
}

func TestHoldRepeat(t *testing.T) {
	e := newTestEnv(t, Config{})
	btn := e.node(e.root, "btn", 0, 0, 100, 100)
	repeats := 0
	h := NewHoldRepeat(0.5, 0.25, func() { repeats++ })
	e.tree.AddHandler(btn, h)

	e.in.Cursor = Vec2{50, 50}
	e.in.Press(MouseButtonLeft)
	e.step(0.125) // press at t=0.125, first repeat due at 0.625
	if !h.Held() {
		t.Fatal("not held after press")
	}

	counts := make([]int, 0, 6)
	for range 6 {
		e.step(0.125)
		counts = append(counts, repeats)
	}
	// t = 0.25 .. 0.875: first repeat at 0.625, next at 0.875.
	want := []int{0, 0, 0, 1, 1, 2}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("repeats per frame = %v, want %v", counts, want)
		}
	}

	e.in.Release(MouseButtonLeft)
	e.step(0.125)
	for range 8 {
		e.step(0.125)
	}
	if repeats != 2 || h.Held() {
		t.Errorf("repeats = %d held = %v after release, want 2 and false", repeats, h.Held())
	}
}

func TestHoldRepeatStopsOnExit(t *testing.T) {
	e := newTestEnv(t, Config{DragThreshold: 1000})
	btn := e.node(e.root, "btn", 0, 0, 100, 100)
	repeats := 0
	h := NewHoldRepeat(0.25, 0.25, func() { repeats++ })
	e.tree.AddHandler(btn, h)

	e.in.Cursor = Vec2{50, 50}
	e.in.Press(MouseButtonLeft)
	e.step(0.125)
	e.moveTo(500, 500)
	for range 8 {
		e.step(0.125)
	}
	if repeats != 0 || h.Held() {
		t.Errorf("repeats = %d held = %v after leaving, want 0 and false", repeats, h.Held())
	}
}

func TestHoldRepeatDisabled(t *testing.T) {
	e := newTestEnv(t, Config{})
	btn := e.node(e.root, "btn", 0, 0, 100, 100)
	repeats := 0
	h := NewHoldRepeat(0, 0.125, func() { repeats++ })
	h.SetEnabled(false)
	e.tree.AddHandler(btn, h)

	e.in.Cursor = Vec2{50, 50}
	e.in.Press(MouseButtonLeft)
	for range 4 {
		e.step(0.125)
	}
	if repeats != 0 {
		t.Errorf("disabled HoldRepeat fired %d times", repeats)
	}
}
