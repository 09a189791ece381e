package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/tree"
)

// Expand indicators and connector glyphs for guide markers
const (
	iconCollapsed = '▸'
	iconExpanded  = '▾'
	iconLeaf      = '·'
)

// Tree renders a pre-flattened row sequence with connector guide lines.
// Rows come from tree.Flatten; selection and scroll come from the
// caller-owned tree.State, which Render reads but never mutates.
type Tree struct {
	Rows          []tree.Row
	Style         grid.Style
	SelectedStyle grid.Style
	GuideStyle    grid.Style
	Indent        int // columns per depth level, minimum 2
}

func (t Tree) RenderStateful(area grid.Rect, buf *grid.Buffer, state *tree.State) {
	if area.IsEmpty() {
		return
	}
	indent := t.Indent
	if indent < 2 {
		indent = 2
	}

	for row := 0; row < area.Height; row++ {
		idx := state.Offset + row
		if idx >= len(t.Rows) {
			break
		}
		r := t.Rows[idx]
		y := area.Y + row

		selected := len(state.Selected) > 0 && r.Path.Equal(state.Selected)
		style := t.Style
		if selected {
			style = t.SelectedStyle
			buf.Fill(grid.NewRect(area.X, y, area.Width, 1), " ", style)
		}

		x := area.X
		for depth, mk := range r.Markers {
			if x >= area.Right() {
				break
			}
			guide := t.GuideStyle
			if selected {
				guide = style
			}
			// The row's own depth renders the branch; ancestor depths
			// render continuation lines
			if depth == r.Depth {
				switch mk {
				case tree.MarkerEnd:
					buf.SetCell(x, y, grid.NewCell('└', guide))
				default:
					buf.SetCell(x, y, grid.NewCell('├', guide))
				}
				for i := 1; i < indent; i++ {
					buf.SetCell(x+i, y, grid.NewCell('─', guide))
				}
			} else if mk == tree.MarkerContinue || mk == tree.MarkerFork {
				buf.SetCell(x, y, grid.NewCell('│', guide))
			}
			x += indent
		}

		icon := iconLeaf
		if r.HasChildren {
			icon = iconCollapsed
			if r.Expanded {
				icon = iconExpanded
			}
		}
		buf.SetCell(x, y, grid.NewCell(icon, style))
		x += 2

		avail := area.Right() - x
		if avail > 0 {
			text := runewidth.Truncate(r.Text, avail, "…")
			buf.SetString(x, y, text, style)
		}
	}
}
