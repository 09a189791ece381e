package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/grid"
)

// HAlign positions text within its line
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// Text renders a string, optionally word-wrapped, into an area
type Text struct {
	Content string
	Style   grid.Style
	Align   HAlign
	Wrap    bool
}

func (t Text) Render(area grid.Rect, buf *grid.Buffer) {
	if area.IsEmpty() {
		return
	}

	lines := strings.Split(t.Content, "\n")
	if t.Wrap {
		var wrapped []string
		for _, line := range lines {
			wrapped = append(wrapped, wrapLine(line, area.Width)...)
		}
		lines = wrapped
	}

	for i, line := range lines {
		if i >= area.Height {
			break
		}
		if !t.Wrap {
			line = runewidth.Truncate(line, area.Width, "…")
		}
		x := area.X
		switch t.Align {
		case AlignCenter:
			x += (area.Width - runewidth.StringWidth(line)) / 2
		case AlignRight:
			x += area.Width - runewidth.StringWidth(line)
		}
		buf.SetString(x, area.Y+i, line, t.Style)
	}
}

// wrapLine wraps at word boundaries, splitting words longer than width
func wrapLine(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		switch {
		case curW == 0:
			// fall through to placement below
		case curW+1+w <= width:
			cur.WriteByte(' ')
			curW++
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		for w > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A glyph wider than the line cannot be split below its
				// own width; emit it alone so the loop always advances
				head = string([]rune(word)[0])
			}
			lines = append(lines, head)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		cur.WriteString(word)
		curW += w
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
