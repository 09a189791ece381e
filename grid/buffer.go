package grid

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Buffer is a rectangular grid of cells backed by one flat slice,
// indexed row-major relative to Area. All writes are clipped to Area;
// out-of-bounds writes are silent no-ops.
type Buffer struct {
	Area  Rect
	cells []Cell
}

// Change is one differing cell between two buffers
type Change struct {
	X, Y int
	Cell Cell
}

// Run is a horizontal sequence of changed cells starting at (X, Y).
// Backends that batch writes consume runs instead of single changes.
type Run struct {
	X, Y  int
	Cells []Cell
}

// NewBuffer creates a buffer covering area, cleared to blank cells
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{
		Area:  area,
		cells: make([]Cell, area.Area()),
	}
	b.Clear()
	return b
}

// index returns the flat index for absolute coordinates, -1 if outside Area
func (b *Buffer) index(x, y int) int {
	if !b.Area.Contains(x, y) {
		return -1
	}
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X)
}

// CellAt returns the cell at (x, y); a blank cell when out of bounds
func (b *Buffer) CellAt(x, y int) Cell {
	idx := b.index(x, y)
	if idx < 0 {
		return blankCell()
	}
	return b.cells[idx]
}

// SetCell places a cell at (x, y), healing any wide glyph it overlaps.
// Out-of-bounds positions are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.index(x, y)
	if idx < 0 {
		return
	}

	cur := b.cells[idx]
	if cur.IsContinuation() {
		// Overwriting the trailing half: blank the leading half too
		if lead := b.index(x-1, y); lead >= 0 {
			b.cells[lead] = blankCell()
		}
	}
	if cur.Width == 2 {
		// Overwriting the leading half: blank the orphaned continuation
		if trail := b.index(x+1, y); trail >= 0 {
			b.cells[trail] = blankCell()
		}
	}

	if c.Width == 2 {
		trail := b.index(x+1, y)
		if trail < 0 {
			// Wide glyph cannot fit at the right edge
			b.cells[idx] = Cell{Rune: ' ', Width: 1, Style: c.Style}
			return
		}
		next := b.cells[trail]
		if next.Width == 2 {
			if far := b.index(x+2, y); far >= 0 {
				b.cells[far] = blankCell()
			}
		}
		b.cells[idx] = c
		b.cells[trail] = continuation(c.Style)
		return
	}

	b.cells[idx] = c
}

// Set writes the first grapheme cluster of s at (x, y)
func (b *Buffer) Set(x, y int, s string, style Style) {
	b.SetCell(x, y, NewGraphemeCell(s, style))
}

// SetString writes s starting at (x, y), one grapheme cluster per glyph,
// clipping at the buffer's right edge. Returns the columns consumed.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < b.Area.Y || y >= b.Area.Bottom() {
		return 0
	}

	cols := 0
	curX := x
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		c := newClusterCell(cluster, style)

		if curX >= b.Area.Right() {
			break
		}
		if curX < b.Area.X {
			curX += int(c.Width)
			continue
		}
		if c.Width == 2 && curX+1 >= b.Area.Right() {
			break
		}

		b.SetCell(curX, y, c)
		curX += int(c.Width)
		cols += int(c.Width)
	}
	return cols
}

// Fill fills rect (clipped to the buffer) with the grapheme and style
func (b *Buffer) Fill(rect Rect, s string, style Style) {
	rect = rect.Intersect(b.Area)
	if rect.IsEmpty() {
		return
	}
	c := NewGraphemeCell(s, style)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if c.Width == 2 && x+1 >= rect.Right() {
				b.SetCell(x, y, Cell{Rune: ' ', Width: 1, Style: style})
				x++
				continue
			}
			b.SetCell(x, y, c)
			x += int(c.Width)
		}
	}
}

// Clear resets every cell to the default blank glyph and style
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell()
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Resize changes the buffer's area, clearing all content
func (b *Buffer) Resize(area Rect) {
	size := area.Area()
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.Area = area
	b.Clear()
}

// Diff returns the cells of b that differ from prev, in row-major order.
// Buffers of mismatched dimensions (or a nil prev) are treated as fully
// different: every cell of b is reported, forcing a full repaint.
// Diff is a pure read of both buffers.
func (b *Buffer) Diff(prev *Buffer) []Change {
	full := prev == nil ||
		prev.Area.Width != b.Area.Width ||
		prev.Area.Height != b.Area.Height

	changes := make([]Change, 0, b.Area.Width)
	for y := b.Area.Y; y < b.Area.Bottom(); y++ {
		for x := b.Area.X; x < b.Area.Right(); x++ {
			idx := (y-b.Area.Y)*b.Area.Width + (x - b.Area.X)
			if full || !b.cells[idx].Equal(prev.cells[idx]) {
				changes = append(changes, Change{X: x, Y: y, Cell: b.cells[idx]})
			}
		}
	}
	return changes
}

// CoalesceRuns groups row-major changes into horizontal runs of adjacent
// cells. The input must be in the order Diff produces.
func CoalesceRuns(changes []Change) []Run {
	if len(changes) == 0 {
		return nil
	}
	runs := make([]Run, 0, 8)
	cur := Run{X: changes[0].X, Y: changes[0].Y, Cells: []Cell{changes[0].Cell}}
	nextX := changes[0].X + 1
	for _, ch := range changes[1:] {
		if ch.Y == cur.Y && ch.X == nextX {
			cur.Cells = append(cur.Cells, ch.Cell)
			nextX++
			continue
		}
		runs = append(runs, cur)
		cur = Run{X: ch.X, Y: ch.Y, Cells: []Cell{ch.Cell}}
		nextX = ch.X + 1
	}
	return append(runs, cur)
}

// String renders the buffer content for debugging and tests.
// Continuation cells are skipped so wide glyphs print once.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.Area.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Area.Width; x++ {
			c := b.cells[y*b.Area.Width+x]
			if c.IsContinuation() {
				continue
			}
			sb.WriteString(c.Grapheme())
		}
	}
	return sb.String()
}
