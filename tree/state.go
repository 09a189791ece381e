package tree

// State holds all interaction state for one view of a model: the opened
// path set, the selected path, and the scroll offset. It references nodes
// by path only, never by storage, so it can be applied unchanged to a
// freshly rebuilt model. The core never mutates a State implicitly; every
// change is an explicit call made by the application between frames.
type State struct {
	opened   map[string]struct{}
	Selected Path
	Offset   int
}

// NewState returns a state with everything collapsed
func NewState() *State {
	return &State{opened: make(map[string]struct{})}
}

// IsOpen reports whether the path is in the opened set
func (s *State) IsOpen(p Path) bool {
	_, ok := s.opened[p.Key()]
	return ok
}

// Open adds the path to the opened set
func (s *State) Open(p Path) {
	s.opened[p.Key()] = struct{}{}
}

// Close removes the path from the opened set
func (s *State) Close(p Path) {
	delete(s.opened, p.Key())
}

// Toggle flips the path's opened membership and returns the new state
func (s *State) Toggle(p Path) bool {
	key := p.Key()
	if _, ok := s.opened[key]; ok {
		delete(s.opened, key)
		return false
	}
	s.opened[key] = struct{}{}
	return true
}

// CloseAll empties the opened set
func (s *State) CloseAll() {
	clear(s.opened)
}

// SelectedIndex returns the selected row's position within rows, -1 when
// the selection is absent from the visible projection
func (s *State) SelectedIndex(rows []Row) int {
	if len(s.Selected) == 0 {
		return -1
	}
	for i := range rows {
		if rows[i].Path.Equal(s.Selected) {
			return i
		}
	}
	return -1
}

// SelectDelta moves the selection by delta visible rows, clamping at the
// ends. An absent selection lands on the first or last row.
func (s *State) SelectDelta(rows []Row, delta int) {
	if len(rows) == 0 {
		return
	}
	idx := s.SelectedIndex(rows)
	if idx < 0 {
		if delta >= 0 {
			idx = 0
		} else {
			idx = len(rows) - 1
		}
	} else {
		idx += delta
		if idx < 0 {
			idx = 0
		}
		if idx >= len(rows) {
			idx = len(rows) - 1
		}
	}
	s.Selected = rows[idx].Path
}

// SelectFirst selects the first visible row
func (s *State) SelectFirst(rows []Row) {
	if len(rows) > 0 {
		s.Selected = rows[0].Path
	}
}

// SelectLast selects the last visible row
func (s *State) SelectLast(rows []Row) {
	if len(rows) > 0 {
		s.Selected = rows[len(rows)-1].Path
	}
}

// EnsureVisible adjusts Offset so the selection falls within a viewport
// of height rows, clamping the scroll range
func (s *State) EnsureVisible(rows []Row, height int) {
	if height <= 0 {
		return
	}
	idx := s.SelectedIndex(rows)
	if idx >= 0 {
		if idx < s.Offset {
			s.Offset = idx
		}
		if idx >= s.Offset+height {
			s.Offset = idx - height + 1
		}
	}
	maxOffset := len(rows) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.Offset > maxOffset {
		s.Offset = maxOffset
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}
