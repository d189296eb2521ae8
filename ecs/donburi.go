package ecs

import (
	"github.com/phanxgames/uievents"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries events delivered to entity-backed nodes.
var InteractionEventType = events.NewEventType[uievents.InteractionEvent]()

// DonburiStore is a uievents.EntityStore that publishes every accepted
// event to InteractionEventType on a Donburi world. Published events stay
// queued until the world's events are processed.
type DonburiStore struct {
	world     donburi.World
	caps      uievents.CapabilitySet
	published int
}

// NewDonburiStore creates a store publishing to world. When caps is
// non-empty only those capabilities are published.
func NewDonburiStore(world donburi.World, caps ...uievents.Capability) *DonburiStore {
	s := &DonburiStore{world: world, caps: uievents.AllCapabilities}
	if len(caps) > 0 {
		s.caps = 0
		for _, c := range caps {
			s.caps = s.caps.With(c)
		}
	}
	return s
}

// EmitEvent implements uievents.EntityStore.
func (s *DonburiStore) EmitEvent(ev uievents.InteractionEvent) {
	if !s.caps.Has(ev.Type) {
		return
	}
	InteractionEventType.Publish(s.world, ev)
	s.published++
}

// Published returns how many events the store has published.
func (s *DonburiStore) Published() int { return s.published }

// Flush delivers queued interaction events to their subscribers. Worlds
// that already call events.ProcessAllEvents each frame do not need it.
func (s *DonburiStore) Flush() {
	InteractionEventType.ProcessEvents(s.world)
}
