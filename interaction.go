package uievents

// EntityStore is the interface for optional ECS integration.
// When set on an EventSystem, every event delivered to a node with an
// EntityID is forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries one delivered event to the ECS bridge.
type InteractionEvent struct {
	Type     Capability
	EntityID uint32
	Node     NodeID

	// Pointer fields, zero for selection and navigation events.
	PointerID     int
	Button        MouseButton
	Position      Vec2
	Delta         Vec2
	PressPosition Vec2
	ScrollDelta   Vec2
	ClickCount    int

	// MoveDir is set for move events.
	MoveDir MoveDirection
}

// SetEntityStore sets the optional ECS bridge. Pass nil to detach.
func (s *EventSystem) SetEntityStore(store EntityStore) {
	s.entities = store
}

// emitInteractionEvent forwards a delivered event to the entity store.
func (s *EventSystem) emitInteractionEvent(node NodeID, c Capability, ev Event) {
	if s.entities == nil {
		return
	}
	entity := s.tree.EntityID(node)
	if entity == 0 {
		return
	}
	ie := InteractionEvent{
		Type:     c,
		EntityID: entity,
		Node:     node,
	}
	switch e := ev.(type) {
	case *PointerEvent:
		ie.PointerID = e.PointerID
		ie.Button = e.Button
		ie.Position = e.Position
		ie.Delta = e.Delta
		ie.PressPosition = e.PressPosition
		ie.ScrollDelta = e.ScrollDelta
		ie.ClickCount = e.ClickCount
	case *AxisEvent:
		ie.MoveDir = e.MoveDir
	}
	s.entities.EmitEvent(ie)
}
