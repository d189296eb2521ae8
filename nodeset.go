package uievents

// nodeSet is an insertion-ordered set of nodes. Hover chains are a handful
// of nodes deep, so membership is a linear scan.
type nodeSet struct {
	items []NodeID
}

// Add appends id if it is not already present.
func (s *nodeSet) Add(id NodeID) bool {
	if s.Contains(id) {
		return false
	}
	s.items = append(s.items, id)
	return true
}

// Remove deletes id, keeping the order of the remaining nodes.
func (s *nodeSet) Remove(id NodeID) bool {
	for i, v := range s.items {
		if v == id {
			copy(s.items[i:], s.items[i+1:])
			s.items = s.items[:len(s.items)-1]
			return true
		}
	}
	return false
}

func (s *nodeSet) Contains(id NodeID) bool {
	for _, v := range s.items {
		if v == id {
			return true
		}
	}
	return false
}

func (s *nodeSet) Len() int { return len(s.items) }

func (s *nodeSet) Clear() { s.items = s.items[:0] }
