package uievents

import (
	"fmt"
	"slices"
)

// Options configures a new EventSystem.
type Options struct {
	// Config holds tunables. Zero fields take DefaultConfig values.
	Config Config
	// Surfaces is the hit-test registry. Nil uses DefaultSurfaces().
	Surfaces *SurfaceRegistry
	// Layers orders sorting-layer ids. Nil orders layers numerically.
	Layers *SortingLayers
	// Entities receives delivered events for nodes with an EntityID.
	Entities EntityStore
}

// EventSystem routes input to a Tree. It owns the input modules, the
// selection and the unscaled clock. Only one system processes input at a
// time; see Enable.
type EventSystem struct {
	cfg        Config
	tree       *Tree
	dispatcher *Dispatcher
	surfaces   *SurfaceRegistry
	layers     *SortingLayers
	entities   EntityStore

	modules []InputModule
	current InputModule

	selected      NodeID
	firstSelected NodeID
	selecting     bool

	time  float64
	frame uint64
	tasks []FrameTask

	results listPool[RaycastResult]
	nodes   listPool[NodeID]
	stats   frameStats
}

// NewEventSystem creates a system routing events through tree. The system
// is inert until Enable is called.
func NewEventSystem(tree *Tree, opts Options) *EventSystem {
	s := &EventSystem{
		cfg:        opts.Config.withDefaults(),
		tree:       tree,
		dispatcher: NewDispatcher(tree),
		surfaces:   opts.Surfaces,
		layers:     opts.Layers,
		entities:   opts.Entities,
	}
	if s.surfaces == nil {
		s.surfaces = DefaultSurfaces()
	}
	s.dispatcher.delivered = func(node NodeID, c Capability, ev Event) {
		s.stats.events++
		s.emitInteractionEvent(node, c, ev)
	}
	s.dispatcher.failed = func(NodeID, Capability, error) {
		s.stats.panics++
	}
	return s
}

// Config returns the system configuration.
func (s *EventSystem) Config() Config { return s.cfg }

// Tree returns the routed tree.
func (s *EventSystem) Tree() *Tree { return s.tree }

// Dispatcher returns the system's event dispatcher.
func (s *EventSystem) Dispatcher() *Dispatcher { return s.dispatcher }

// Surfaces returns the hit-test registry.
func (s *EventSystem) Surfaces() *SurfaceRegistry { return s.surfaces }

// UnscaledTime returns the seconds accumulated by Update.
func (s *EventSystem) UnscaledTime() float64 { return s.time }

// Frame returns the number of Update calls that ran.
func (s *EventSystem) Frame() uint64 { return s.frame }

// RaycastAll hit-tests every registered surface at the pointer position and
// appends the sorted hits to out.
func (s *EventSystem) RaycastAll(ev *PointerEvent, out []RaycastResult) []RaycastResult {
	return RaycastAll(s.surfaces, s.layers, ev, out)
}

// IsPointerOverNode reports whether the pointer is over a node according
// to the current module. Use it to keep world input from reacting to
// clicks on UI.
func (s *EventSystem) IsPointerOverNode(pointerID int) bool {
	if s.current == nil {
		return false
	}
	return s.current.IsPointerOverNode(pointerID)
}

// --- Process-wide registration ---

// systems holds enabled systems in enable order. The first is current.
var systems []*EventSystem

// Current returns the event system that processes input, or nil.
func Current() *EventSystem {
	if len(systems) == 0 {
		return nil
	}
	return systems[0]
}

// Enable registers the system. The first enabled system becomes current;
// later ones log a warning and stay inert until the systems before them
// are disabled.
func (s *EventSystem) Enable() {
	if slices.Contains(systems, s) {
		return
	}
	systems = append(systems, s)
	if len(systems) > 1 {
		Logger().Warn("multiple event systems enabled; only the first processes input",
			"enabled", len(systems))
	}
}

// Disable unregisters the system and deactivates its current module.
func (s *EventSystem) Disable() {
	if s.current != nil {
		s.current.DeactivateModule()
		s.current = nil
	}
	systems = slices.DeleteFunc(systems, func(o *EventSystem) bool { return o == s })
}

// IsCurrent reports whether this system processes input.
func (s *EventSystem) IsCurrent() bool { return Current() == s }

// Shutdown tears the system down: the current module is released, the
// selection cleared, the surface registry emptied and the system disabled.
func (s *EventSystem) Shutdown() {
	if s.current != nil {
		s.current.DeactivateModule()
		s.current = nil
	}
	s.SetSelected(NoNode, nil)
	s.surfaces.Clear()
	s.tasks = nil
	s.Disable()
}

// --- Modules ---

// AddModule registers m. Modules are polled in registration order.
func (s *EventSystem) AddModule(m InputModule) {
	if slices.Contains(s.modules, m) {
		return
	}
	s.modules = append(s.modules, m)
}

// RemoveModule unregisters m, deactivating it if it is current.
func (s *EventSystem) RemoveModule(m InputModule) {
	if s.current == m {
		m.DeactivateModule()
		s.current = nil
	}
	s.modules = slices.DeleteFunc(s.modules, func(o InputModule) bool { return o == m })
}

// CurrentModule returns the active module, or nil.
func (s *EventSystem) CurrentModule() InputModule { return s.current }

func (s *EventSystem) changeModule(m InputModule) {
	if s.current == m {
		return
	}
	if s.current != nil {
		s.current.DeactivateModule()
	}
	if m != nil {
		m.ActivateModule()
	}
	s.current = m
	Logger().Debug("input module changed", "module", fmt.Sprintf("%T", m))
}

// moduleUsable reports whether m may become or stay the active module.
// Modules implementing Enabler are skipped while disabled.
func moduleUsable(m InputModule) bool {
	if e, ok := m.(Enabler); ok && !e.Enabled() {
		return false
	}
	return m.IsModuleSupported()
}

// Update runs one frame: advances the clock by dt seconds, runs frame
// tasks, ticks every module, then either switches the active module or
// lets it process input. Systems that are not current do nothing.
func (s *EventSystem) Update(dt float64) {
	if !s.IsCurrent() {
		return
	}
	s.time += dt
	s.frame++
	s.stats = frameStats{}

	s.runTasks()
	for _, m := range s.modules {
		m.UpdateModule()
	}

	changed := false
	if s.current != nil && !moduleUsable(s.current) {
		s.changeModule(nil)
		changed = true
	}
	for _, m := range s.modules {
		if moduleUsable(m) && m.ShouldActivateModule() {
			if s.current != m {
				s.changeModule(m)
				changed = true
			}
			break
		}
	}

	if s.current == nil {
		for _, m := range s.modules {
			if moduleUsable(m) {
				s.changeModule(m)
				changed = true
				break
			}
		}
	}

	if !changed && s.current != nil {
		s.current.Process()
	}
	s.debugLog()
}
