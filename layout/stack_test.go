package layout

import (
	"testing"

	"github.com/lixenwraith/gridterm/grid"
)

func splitSizes(t *testing.T, dir Direction, extent int, cs ...Constraint) []int {
	t.Helper()
	s, err := New(dir, cs...)
	if err != nil {
		t.Fatalf("Expected valid constraints, got %v", err)
	}
	area := grid.NewRect(0, 0, extent, 1)
	if dir == Vertical {
		area = grid.NewRect(0, 0, 1, extent)
	}
	rects := s.Split(area)
	sizes := make([]int, len(rects))
	for i, r := range rects {
		if dir == Horizontal {
			sizes[i] = r.Width
		} else {
			sizes[i] = r.Height
		}
	}
	return sizes
}

func TestFillWeightDistribution(t *testing.T) {
	sizes := splitSizes(t, Horizontal, 100, Length(10), Fill(1), Fill(3))
	want := []int{10, 22, 68}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Expected sizes %v, got %v", want, sizes)
			break
		}
	}
}

func TestConservation(t *testing.T) {
	cases := []struct {
		extent int
		cs     []Constraint
	}{
		{80, []Constraint{Length(10), Fill(1), Fill(3)}},
		{7, []Constraint{Fill(1), Fill(1), Fill(1)}},
		{100, []Constraint{Percentage(33), Percentage(33), Percentage(34)}},
		{55, []Constraint{Ratio(1, 3), Ratio(1, 3), Ratio(1, 3)}},
		{10, []Constraint{Length(4), Length(4)}},
		{3, []Constraint{Length(10), Length(10)}},
		{0, []Constraint{Fill(1), Length(5)}},
		{41, []Constraint{Min(5), Max(20), Fill(2), Fill(5)}},
	}
	for _, tc := range cases {
		sizes := splitSizes(t, Horizontal, tc.extent, tc.cs...)
		sum := 0
		for _, s := range sizes {
			sum += s
		}
		if sum != tc.extent {
			t.Errorf("Expected sizes summing to %d, got %v (sum %d)", tc.extent, sizes, sum)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	// Min claims before Length; Length before Percentage; the extent
	// runs out in priority order, not list order
	sizes := splitSizes(t, Horizontal, 20, Percentage(100), Length(8), Min(15))
	if sizes[2] != 15 {
		t.Errorf("Expected Min to claim 15 first, got %v", sizes)
	}
	if sizes[1] != 5 {
		t.Errorf("Expected Length clamped to remaining 5, got %v", sizes)
	}
	if sizes[0] != 0 {
		t.Errorf("Expected Percentage starved to 0, got %v", sizes)
	}
}

func TestOverflowYieldsZeroNotNegative(t *testing.T) {
	sizes := splitSizes(t, Horizontal, 10, Length(8), Length(8), Length(8))
	want := []int{8, 2, 0}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, sizes)
			break
		}
	}
	for _, s := range sizes {
		if s < 0 {
			t.Fatalf("Expected no negative sizes, got %v", sizes)
		}
	}
}

func TestRemainderWithoutFill(t *testing.T) {
	// No Fill present: the last constraint absorbs the tail
	sizes := splitSizes(t, Horizontal, 100, Length(10), Length(20))
	if sizes[0] != 10 || sizes[1] != 90 {
		t.Errorf("Expected [10 90], got %v", sizes)
	}
}

func TestPercentageAndRatio(t *testing.T) {
	sizes := splitSizes(t, Horizontal, 200, Percentage(25), Ratio(1, 4), Fill(1))
	want := []int{50, 50, 100}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, sizes)
			break
		}
	}
}

func TestSplitPositions(t *testing.T) {
	s := MustNew(Vertical, Length(1), Fill(1), Length(1))
	rects := s.Split(grid.NewRect(0, 0, 80, 24))

	if rects[0] != grid.NewRect(0, 0, 80, 1) {
		t.Errorf("Expected title rect (0,0,80,1), got %+v", rects[0])
	}
	if rects[1] != grid.NewRect(0, 1, 80, 22) {
		t.Errorf("Expected body rect (0,1,80,22), got %+v", rects[1])
	}
	if rects[2] != grid.NewRect(0, 23, 80, 1) {
		t.Errorf("Expected status rect (0,23,80,1), got %+v", rects[2])
	}
}

func TestSplitHorizontalOffsets(t *testing.T) {
	s := MustNew(Horizontal, Length(10), Fill(1))
	rects := s.Split(grid.NewRect(5, 3, 40, 8))

	if rects[0] != grid.NewRect(5, 3, 10, 8) {
		t.Errorf("Expected (5,3,10,8), got %+v", rects[0])
	}
	if rects[1] != grid.NewRect(15, 3, 30, 8) {
		t.Errorf("Expected (15,3,30,8), got %+v", rects[1])
	}
}

func TestDeterminism(t *testing.T) {
	s := MustNew(Horizontal, Min(5), Percentage(30), Fill(2), Fill(1))
	area := grid.NewRect(0, 0, 97, 5)
	first := s.Split(area)
	for i := 0; i < 10; i++ {
		again := s.Split(area)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("Expected identical splits, got %+v then %+v", first, again)
			}
		}
	}
}

func TestInvalidConstraints(t *testing.T) {
	cases := []Constraint{
		Length(-1),
		Percentage(-5),
		Percentage(101),
		Ratio(1, 0),
		Ratio(-1, 2),
		Min(-3),
		Max(-3),
		Fill(-1),
	}
	for _, c := range cases {
		if _, err := New(Horizontal, c); err == nil {
			t.Errorf("Expected error for %v, got nil", c)
		}
	}
}

func TestEmptyConstraints(t *testing.T) {
	s := MustNew(Horizontal)
	if rects := s.Split(grid.NewRect(0, 0, 10, 10)); len(rects) != 0 {
		t.Errorf("Expected no rects, got %d", len(rects))
	}
}

func TestZeroExtent(t *testing.T) {
	sizes := splitSizes(t, Vertical, 0, Length(5), Fill(1))
	if sizes[0] != 0 || sizes[1] != 0 {
		t.Errorf("Expected all zero sizes, got %v", sizes)
	}
}
