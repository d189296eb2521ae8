// Package ecs provides ECS adapters for uievents.
//
// [DonburiStore] bridges events delivered to nodes with an entity id
// (pointer, click, drag, selection, navigation) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems:
//
//	store := ecs.NewDonburiStore(world, uievents.CapPointerClick, uievents.CapDrop)
//	system.SetEntityStore(store)
//
//	ecs.InteractionEventType.Subscribe(world, func(w donburi.World, ev uievents.InteractionEvent) {
//		// ev.EntityID, ev.Type, ev.Position ...
//	})
//
// Events are queued by Donburi. Call events.ProcessAllEvents once per frame
// or [DonburiStore.Flush] to deliver them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
