// Package uievents routes pointer, touch and navigation input to the
// nodes of a UI tree, the way a retained-mode game UI expects: hover
// enter and exit, press, release and click, drag with a threshold, drop,
// scroll, selection and directional navigation.
//
// # Quick start
//
// Build a [Tree], register a hit-test surface, create an [EventSystem]
// and give it an input module:
//
//	tree := uievents.NewTree()
//	root := tree.NewNode("root")
//	ok := tree.NewChild(root, "ok")
//	tree.AddHandler(ok, uievents.PointerClickFunc(func(ev *uievents.PointerEvent) {
//		fmt.Println("clicked", ev.ClickCount)
//	}))
//
//	canvas := uievents.NewCanvas(tree, "hud", nil)
//	canvas.AddGraphic(ok, uievents.HitRect{X: 10, Y: 10, Width: 80, Height: 24})
//	uievents.DefaultSurfaces().Add(canvas)
//
//	sys := uievents.NewEventSystem(tree, uievents.Options{})
//	sys.AddModule(uievents.NewStandaloneInputModule(sys, uievents.NewEbitenInput()))
//	sys.Enable()
//
// Then call [EventSystem.Update] once per game tick with the elapsed
// seconds.
//
// # Tree and handlers
//
// Nodes live in an arena owned by [Tree] and are addressed by [NodeID].
// Any value may be attached as a handler; the interfaces it implements
// ([PointerDownHandler], [DragHandler], [SubmitHandler] and so on) decide
// which [Capability] values it receives. Handlers implementing [Enabler]
// can opt out without being detached. Inactive nodes and their subtrees
// receive nothing.
//
// # Dispatch
//
// [Dispatcher.Execute] delivers an event to the handlers of one node.
// [Dispatcher.ExecuteHierarchy] and [Dispatcher.GetEventHandler] walk up
// from a node to the first ancestor that can handle the capability. A
// panicking handler is recovered and logged; the remaining handlers still
// run.
//
// # Hit testing
//
// A [Surface] reports the nodes under a pointer. [Canvas] is the built-in
// surface, holding [HitShape] graphics in screen or camera space. Hits
// from every surface in a [SurfaceRegistry] are merged and ordered by
// camera depth, surface priority, sorting layer, sorting order, depth
// and distance.
//
// # Input
//
// Modules read an [InputSource]. [EbitenInput] samples Ebitengine
// devices, [Snapshot] is filled by hand in tests and [ScriptedInput]
// replays a JSON or TOML [Script]. Configuration comes from [Config],
// which [LoadConfig] reads with viper.
//
// # Logging
//
// The package logs through a charmbracelet/log logger at warn level by
// default. Replace it with [SetLogger]; enable per-frame stats with
// [SetDebugMode] or Config.Debug.
//
// # ECS integration
//
// Set an [EntityStore] to forward events delivered to nodes with an entity
// id. The ecs subpackage provides a Donburi-backed store.
package uievents
