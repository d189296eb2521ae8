package uievents

import "slices"

// Reserved pointer ids for the mouse. Touch ids are non-negative.
const (
	MouseLeftID   = -1
	MouseRightID  = -2
	MouseMiddleID = -3
	FakeTouchesID = -4
)

// pointerStore owns one PointerEvent per active pointer id. It is mutated
// only by the active input module.
type pointerStore struct {
	sys     *EventSystem
	records map[int]*PointerEvent
}

func newPointerStore(sys *EventSystem) *pointerStore {
	return &pointerStore{sys: sys, records: make(map[int]*PointerEvent)}
}

// getOrCreate returns the record for id and whether it was just created.
func (s *pointerStore) getOrCreate(id int) (*PointerEvent, bool) {
	if ev, ok := s.records[id]; ok {
		return ev, false
	}
	ev := newPointerEvent(s.sys, id)
	s.records[id] = ev
	return ev, true
}

func (s *pointerStore) get(id int) (*PointerEvent, bool) {
	ev, ok := s.records[id]
	return ev, ok
}

func (s *pointerStore) remove(id int) {
	delete(s.records, id)
}

func (s *pointerStore) clear() {
	clear(s.records)
}

func (s *pointerStore) len() int { return len(s.records) }

// ids returns the active pointer ids in ascending order.
func (s *pointerStore) ids() []int {
	ids := make([]int, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
