package grid

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one character position in the grid. The grapheme's primary code
// point is stored inline; trailing code points of a multi-codepoint cluster
// spill into Comb, which stays nil for the common single-rune case.
//
// Width is the number of grid columns the glyph occupies (1 or 2).
// Width 0 marks the trailing continuation of a wide glyph; such a cell
// carries no content of its own.
type Cell struct {
	Rune  rune
	Comb  []rune
	Width uint8
	Style Style
}

// NewCell creates a cell from a single rune with width derived from the rune
func NewCell(r rune, style Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	if w > 2 {
		w = 2
	}
	return Cell{Rune: r, Width: uint8(w), Style: style}
}

// NewGraphemeCell creates a cell from the first grapheme cluster of s.
// An empty string yields a blank cell.
func NewGraphemeCell(s string, style Style) Cell {
	if s == "" {
		return NewCell(' ', style)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return newClusterCell(cluster, style)
}

// newClusterCell builds a cell from one grapheme cluster
func newClusterCell(cluster string, style Style) Cell {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return NewCell(' ', style)
	}
	c := Cell{Rune: runes[0], Style: style}
	if len(runes) > 1 {
		c.Comb = runes[1:]
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	if w > 2 {
		w = 2
	}
	c.Width = uint8(w)
	return c
}

// continuation returns the trailing half of a wide glyph
func continuation(style Style) Cell {
	return Cell{Rune: 0, Width: 0, Style: style}
}

// blankCell is the default cleared cell
func blankCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// IsContinuation returns true if the cell is the trailing half of a wide glyph
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal compares two cells by full content: grapheme, width, and style
func (c Cell) Equal(other Cell) bool {
	if c.Rune != other.Rune || c.Width != other.Width || c.Style != other.Style {
		return false
	}
	if len(c.Comb) != len(other.Comb) {
		return false
	}
	for i := range c.Comb {
		if c.Comb[i] != other.Comb[i] {
			return false
		}
	}
	return true
}

// Grapheme returns the cell's full cluster as a string.
// Continuation cells and zero-rune cells render as a space.
func (c Cell) Grapheme() string {
	if c.Rune == 0 {
		return " "
	}
	if c.Comb == nil {
		return string(c.Rune)
	}
	runes := make([]rune, 0, 1+len(c.Comb))
	runes = append(runes, c.Rune)
	runes = append(runes, c.Comb...)
	return string(runes)
}
