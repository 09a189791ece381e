package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConstraint reports a malformed constraint at construction time
var ErrInvalidConstraint = errors.New("layout: invalid constraint")

// Direction selects the axis a stack splits along
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// kind orders constraint resolution priority: lower resolves first
type kind uint8

const (
	kindMin kind = iota
	kindMax
	kindLength
	kindPercentage
	kindRatio
	kindFill
)

// Constraint is one rule for how much of an axis a region receives.
// Within one split, resolution priority is Min > Max > Length >
// Percentage > Ratio > Fill: higher-priority constraints claim space
// first, and Fill constraints divide only the remainder by weight.
type Constraint struct {
	kind     kind
	value    int
	num, den int
}

// Length requests exactly n cells
func Length(n int) Constraint {
	return Constraint{kind: kindLength, value: n}
}

// Percentage requests p percent of the axis extent (0-100)
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, value: p}
}

// Ratio requests num/den of the axis extent
func Ratio(num, den int) Constraint {
	return Constraint{kind: kindRatio, num: num, den: den}
}

// Min requests at least n cells, claimed before any other class
func Min(n int) Constraint {
	return Constraint{kind: kindMin, value: n}
}

// Max requests at most n cells
func Max(n int) Constraint {
	return Constraint{kind: kindMax, value: n}
}

// Fill requests a weighted share of whatever space remains
func Fill(weight int) Constraint {
	return Constraint{kind: kindFill, value: weight}
}

// validate rejects malformed constraints before any resolution runs
func (c Constraint) validate() error {
	switch c.kind {
	case kindLength, kindMin, kindMax:
		if c.value < 0 {
			return fmt.Errorf("%w: negative length %d", ErrInvalidConstraint, c.value)
		}
	case kindPercentage:
		if c.value < 0 || c.value > 100 {
			return fmt.Errorf("%w: percentage %d outside 0-100", ErrInvalidConstraint, c.value)
		}
	case kindRatio:
		if c.den <= 0 || c.num < 0 {
			return fmt.Errorf("%w: ratio %d/%d", ErrInvalidConstraint, c.num, c.den)
		}
	case kindFill:
		if c.value < 0 {
			return fmt.Errorf("%w: negative fill weight %d", ErrInvalidConstraint, c.value)
		}
	}
	return nil
}

func (c Constraint) String() string {
	switch c.kind {
	case kindMin:
		return fmt.Sprintf("Min(%d)", c.value)
	case kindMax:
		return fmt.Sprintf("Max(%d)", c.value)
	case kindLength:
		return fmt.Sprintf("Length(%d)", c.value)
	case kindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.value)
	case kindRatio:
		return fmt.Sprintf("Ratio(%d/%d)", c.num, c.den)
	case kindFill:
		return fmt.Sprintf("Fill(%d)", c.value)
	}
	return "Constraint(?)"
}
