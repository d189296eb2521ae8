package uievents

// Selected returns the currently selected node, or NoNode.
func (s *EventSystem) Selected() NodeID {
	if s.selected != NoNode && !s.tree.Valid(s.selected) {
		s.selected = NoNode
	}
	return s.selected
}

// FirstSelected returns the node selected when a module activates with
// nothing selected.
func (s *EventSystem) FirstSelected() NodeID { return s.firstSelected }

// SetFirstSelected sets the node selected on module activation.
func (s *EventSystem) SetFirstSelected(id NodeID) { s.firstSelected = id }

// AlreadySelecting reports whether a selection change is in progress.
func (s *EventSystem) AlreadySelecting() bool { return s.selecting }

// SetSelected makes id the selected node, sending deselect to the previous
// selection and select to the new one. Calls made from inside a select or
// deselect handler are rejected and logged.
func (s *EventSystem) SetSelected(id NodeID, ev *BaseEvent) {
	if s.selecting {
		Logger().Error("attempting to select while already selecting",
			"node", s.tree.Path(id), "selected", s.tree.Path(s.selected))
		return
	}
	if id == s.Selected() {
		return
	}
	if ev == nil {
		ev = &BaseEvent{system: s}
	}

	s.selecting = true
	defer func() { s.selecting = false }()

	s.dispatcher.Execute(s.selected, ev, CapDeselect)
	s.selected = id
	s.dispatcher.Execute(id, ev, CapSelect)
	Logger().Debug("selection changed", "node", s.tree.Path(id))
}
