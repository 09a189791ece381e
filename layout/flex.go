package layout

import (
	"github.com/lixenwraith/gridterm/grid"
)

// Justify positions a line's items along the main axis
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align positions items along the cross axis within their line
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Item is one flex participant: a main-axis constraint plus a cross-axis
// size. Cross 0 stretches to the line's cross extent.
type Item struct {
	Size  Constraint
	Cross int
}

// Flex lays items out along a main axis with optional line wrapping.
// It shares the Stack resolver per line: fixed-priority constraints claim
// first, Fill items divide each line's remainder by weight.
type Flex struct {
	Direction Direction
	Wrap      bool
	Justify   Justify
	Align     Align
	Gap       int
}

// Split resolves items against area, one rect per item in input order.
// Invalid item constraints yield zero-extent rects (Split never fails).
func (f Flex) Split(area grid.Rect, items []Item) []grid.Rect {
	rects := make([]grid.Rect, len(items))
	if len(items) == 0 {
		return rects
	}

	mainExtent := area.Width
	crossExtent := area.Height
	if f.Direction == Vertical {
		mainExtent = area.Height
		crossExtent = area.Width
	}
	gap := f.Gap
	if gap < 0 {
		gap = 0
	}

	lines := f.breakLines(items, mainExtent, gap)

	crossPos := 0
	for li, line := range lines {
		lineCross := f.lineCross(items[line.start:line.end], crossExtent, len(lines) == 1)

		cs := make([]Constraint, 0, line.end-line.start)
		for _, it := range items[line.start:line.end] {
			c := it.Size
			if c.validate() != nil {
				c = Length(0)
			}
			cs = append(cs, c)
		}

		count := len(cs)
		avail := mainExtent - gap*(count-1)
		sizes := resolve(avail, cs, false)

		used := gap * (count - 1)
		for _, s := range sizes {
			used += s
		}
		free := mainExtent - used
		if free < 0 {
			free = 0
		}

		mainPos, extraGap := justifyOffsets(f.Justify, free, count)

		for i, size := range sizes {
			idx := line.start + i
			cross := items[idx].Cross
			if cross <= 0 || f.Align == AlignStretch {
				cross = lineCross
			}
			if cross > lineCross {
				cross = lineCross
			}

			crossOff := 0
			switch f.Align {
			case AlignCenter:
				crossOff = (lineCross - cross) / 2
			case AlignEnd:
				crossOff = lineCross - cross
			}

			if f.Direction == Horizontal {
				rects[idx] = grid.NewRect(area.X+mainPos, area.Y+crossPos+crossOff, size, cross)
			} else {
				rects[idx] = grid.NewRect(area.X+crossPos+crossOff, area.Y+mainPos, cross, size)
			}
			mainPos += size + gap + extraGap
		}

		crossPos += lineCross
		if li < len(lines)-1 {
			crossPos += gap
		}
	}

	return rects
}

// span marks one wrapped line as a half-open item range
type span struct {
	start, end int
}

// breakLines greedily packs items into lines by their preferred main size
func (f Flex) breakLines(items []Item, mainExtent, gap int) []span {
	if !f.Wrap {
		return []span{{0, len(items)}}
	}

	var lines []span
	start := 0
	used := 0
	for i, it := range items {
		pref := preferredSize(it.Size, mainExtent)
		need := pref
		if i > start {
			need += gap
		}
		if i > start && used+need > mainExtent {
			lines = append(lines, span{start, i})
			start = i
			used = pref
			continue
		}
		used += need
	}
	return append(lines, span{start, len(items)})
}

// preferredSize resolves one constraint in isolation for line breaking.
// Fill items prefer zero: they expand only after lines are formed.
func preferredSize(c Constraint, extent int) int {
	if c.validate() != nil {
		return 0
	}
	switch c.kind {
	case kindMin, kindMax, kindLength:
		return min(c.value, extent)
	case kindPercentage:
		return extent * c.value / 100
	case kindRatio:
		return extent * c.num / c.den
	}
	return 0
}

// lineCross picks a line's cross extent: the tallest explicit item,
// or the full cross extent for a single unwrapped line
func (f Flex) lineCross(items []Item, crossExtent int, single bool) int {
	if single {
		return crossExtent
	}
	cross := 1
	for _, it := range items {
		if it.Cross > cross {
			cross = it.Cross
		}
	}
	return min(cross, crossExtent)
}

// justifyOffsets returns the starting main offset and the extra gap
// inserted between items for the given free space
func justifyOffsets(j Justify, free, count int) (start, extraGap int) {
	switch j {
	case JustifyCenter:
		return free / 2, 0
	case JustifyEnd:
		return free, 0
	case JustifySpaceBetween:
		if count > 1 {
			return 0, free / (count - 1)
		}
		return 0, 0
	case JustifySpaceAround:
		if count > 0 {
			around := free / count
			return around / 2, around
		}
		return 0, 0
	}
	return 0, 0
}
