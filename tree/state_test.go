package tree

import "testing"

func sampleRows() []Row {
	return []Row{
		{Depth: 0, Path: Path{"a"}},
		{Depth: 1, Path: Path{"a", "b"}},
		{Depth: 1, Path: Path{"a", "c"}},
		{Depth: 0, Path: Path{"d"}},
	}
}

func TestToggle(t *testing.T) {
	s := NewState()
	p := Path{"a"}

	if !s.Toggle(p) {
		t.Errorf("Expected first toggle to open")
	}
	if !s.IsOpen(p) {
		t.Errorf("Expected path open after toggle")
	}
	if s.Toggle(p) {
		t.Errorf("Expected second toggle to close")
	}
	if s.IsOpen(p) {
		t.Errorf("Expected path closed after second toggle")
	}
}

func TestCloseAll(t *testing.T) {
	s := NewState()
	s.Open(Path{"a"})
	s.Open(Path{"a", "b"})
	s.CloseAll()

	if s.IsOpen(Path{"a"}) || s.IsOpen(Path{"a", "b"}) {
		t.Errorf("Expected all paths closed")
	}
}

func TestSelectDeltaClamps(t *testing.T) {
	s := NewState()
	rows := sampleRows()

	s.SelectDelta(rows, 1)
	if !s.Selected.Equal(Path{"a"}) {
		t.Errorf("Expected absent selection to land on first row, got %v", s.Selected)
	}

	s.SelectDelta(rows, 100)
	if !s.Selected.Equal(Path{"d"}) {
		t.Errorf("Expected clamp to last row, got %v", s.Selected)
	}

	s.SelectDelta(rows, -2)
	if !s.Selected.Equal(Path{"a", "b"}) {
		t.Errorf("Expected selection at row 1, got %v", s.Selected)
	}

	s.SelectDelta(rows, -100)
	if !s.Selected.Equal(Path{"a"}) {
		t.Errorf("Expected clamp to first row, got %v", s.Selected)
	}
}

func TestSelectDeltaAbsentSelectionBackward(t *testing.T) {
	s := NewState()
	rows := sampleRows()
	s.Selected = Path{"gone"}

	s.SelectDelta(rows, -1)
	if !s.Selected.Equal(Path{"d"}) {
		t.Errorf("Expected backward motion from absent selection to land on last row, got %v", s.Selected)
	}
}

func TestEnsureVisible(t *testing.T) {
	s := NewState()
	rows := sampleRows()

	s.Selected = Path{"d"}
	s.EnsureVisible(rows, 2)
	if s.Offset != 2 {
		t.Errorf("Expected offset 2 to show row 3 in height 2, got %d", s.Offset)
	}

	s.Selected = Path{"a"}
	s.EnsureVisible(rows, 2)
	if s.Offset != 0 {
		t.Errorf("Expected offset 0 to show row 0, got %d", s.Offset)
	}
}

func TestEnsureVisibleClampsOffset(t *testing.T) {
	s := NewState()
	rows := sampleRows()
	s.Offset = 99

	s.EnsureVisible(rows, 3)
	if s.Offset != 1 {
		t.Errorf("Expected offset clamped to 1, got %d", s.Offset)
	}
}
