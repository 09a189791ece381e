package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/grid"
)

// ListState is the caller-owned interaction state of a List
type ListState struct {
	Selected int
	Offset   int
}

// ClampTo keeps selection and scroll valid for n items in a viewport of
// height rows. Called by the application between frames, never by Render.
func (s *ListState) ClampTo(n, height int) {
	if s.Selected >= n {
		s.Selected = n - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	if height > 0 {
		if s.Selected < s.Offset {
			s.Offset = s.Selected
		}
		if s.Selected >= s.Offset+height {
			s.Offset = s.Selected - height + 1
		}
	}
	maxOffset := n - height
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

// List renders a scrollable line-per-item list
type List struct {
	Items         []string
	Style         grid.Style
	SelectedStyle grid.Style
}

func (l List) RenderStateful(area grid.Rect, buf *grid.Buffer, state *ListState) {
	if area.IsEmpty() {
		return
	}
	for row := 0; row < area.Height; row++ {
		idx := state.Offset + row
		if idx >= len(l.Items) {
			break
		}
		style := l.Style
		if idx == state.Selected {
			style = l.SelectedStyle
		}
		y := area.Y + row
		if idx == state.Selected {
			buf.Fill(grid.NewRect(area.X, y, area.Width, 1), " ", style)
		}
		item := runewidth.Truncate(l.Items[idx], area.Width, "…")
		buf.SetString(area.X, y, item, style)
	}
}
