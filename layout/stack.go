package layout

import (
	"github.com/lixenwraith/gridterm/grid"
)

// Stack splits an area along one axis according to a constraint list.
// Build it once with New; Split is a pure function of the input area.
type Stack struct {
	dir         Direction
	constraints []Constraint
}

// New validates the constraint list and returns a Stack.
// Malformed constraints are rejected here, never mid-resolution.
func New(dir Direction, constraints ...Constraint) (Stack, error) {
	for _, c := range constraints {
		if err := c.validate(); err != nil {
			return Stack{}, err
		}
	}
	cs := make([]Constraint, len(constraints))
	copy(cs, constraints)
	return Stack{dir: dir, constraints: cs}, nil
}

// MustNew is New for statically-known constraint lists; panics on error
func MustNew(dir Direction, constraints ...Constraint) Stack {
	s, err := New(dir, constraints...)
	if err != nil {
		panic(err)
	}
	return s
}

// Split resolves the constraints against area and returns one rect per
// constraint. The extents along the split axis always sum to the input
// extent exactly; when fixed constraints overflow, later constraints
// receive zero-extent rects rather than negative sizes.
func (s Stack) Split(area grid.Rect) []grid.Rect {
	extent := area.Width
	if s.dir == Vertical {
		extent = area.Height
	}

	sizes := resolve(extent, s.constraints, true)

	rects := make([]grid.Rect, len(sizes))
	pos := 0
	for i, size := range sizes {
		if s.dir == Horizontal {
			rects[i] = grid.NewRect(area.X+pos, area.Y, size, area.Height)
		} else {
			rects[i] = grid.NewRect(area.X, area.Y+pos, area.Width, size)
		}
		pos += size
	}
	return rects
}

// resolve computes one extent per constraint.
//
// Phase 1 walks the fixed-priority classes (Min, Max, Length, Percentage,
// Ratio in that order), each constraint claiming space from what remains.
// Phase 2 divides the remainder among Fill constraints by cumulative
// weight targets, so the shares sum to the remainder exactly. When
// absorb is set and no Fill constraint exists, the last constraint takes
// the remainder so the sum of extents equals the input extent.
func resolve(extent int, cs []Constraint, absorb bool) []int {
	n := len(cs)
	sizes := make([]int, n)
	if n == 0 {
		return sizes
	}
	if extent < 0 {
		extent = 0
	}

	remaining := extent
	claim := func(i, want int) {
		if want < 0 {
			want = 0
		}
		if want > remaining {
			want = remaining
		}
		sizes[i] = want
		remaining -= want
	}

	for _, class := range [...]kind{kindMin, kindMax, kindLength, kindPercentage, kindRatio} {
		for i, c := range cs {
			if c.kind != class {
				continue
			}
			switch class {
			case kindMin, kindMax, kindLength:
				claim(i, c.value)
			case kindPercentage:
				claim(i, extent*c.value/100)
			case kindRatio:
				claim(i, extent*c.num/c.den)
			}
		}
	}

	// Fill pass: divide the remainder by weight
	totalWeight := 0
	lastFill := -1
	for i, c := range cs {
		if c.kind == kindFill {
			totalWeight += c.value
			lastFill = i
		}
	}
	if lastFill >= 0 && totalWeight > 0 {
		// Cumulative targets keep the division exact: each Fill receives
		// the difference between successive floor(remaining*acc/total)
		// values, so the shares always sum to the full remainder
		acc := 0
		given := 0
		for i, c := range cs {
			if c.kind != kindFill {
				continue
			}
			acc += c.value
			target := remaining * acc / totalWeight
			sizes[i] = target - given
			given = target
		}
		remaining -= given
	}

	if absorb && remaining > 0 {
		// Exact conservation: an unconsumed tail goes to the last Fill,
		// or the last constraint when no Fill is present
		target := n - 1
		if lastFill >= 0 {
			target = lastFill
		}
		sizes[target] += remaining
	}

	return sizes
}
