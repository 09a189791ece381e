package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/grid"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Block draws a border around an area with an optional title.
// Content belongs in Inner(area).
type Block struct {
	Line       LineType
	Title      string
	Style      grid.Style
	TitleStyle grid.Style
}

// Inner returns the content area inside the border
func (b Block) Inner(area grid.Rect) grid.Rect {
	return area.Inset(1)
}

func (b Block) Render(area grid.Rect, buf *grid.Buffer) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	line := b.Line
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]

	top := area.Y
	bottom := area.Bottom() - 1
	left := area.X
	right := area.Right() - 1

	buf.SetCell(left, top, grid.NewCell(chars[boxTL], b.Style))
	buf.SetCell(right, top, grid.NewCell(chars[boxTR], b.Style))
	buf.SetCell(left, bottom, grid.NewCell(chars[boxBL], b.Style))
	buf.SetCell(right, bottom, grid.NewCell(chars[boxBR], b.Style))
	for x := left + 1; x < right; x++ {
		buf.SetCell(x, top, grid.NewCell(chars[boxH], b.Style))
		buf.SetCell(x, bottom, grid.NewCell(chars[boxH], b.Style))
	}
	for y := top + 1; y < bottom; y++ {
		buf.SetCell(left, y, grid.NewCell(chars[boxV], b.Style))
		buf.SetCell(right, y, grid.NewCell(chars[boxV], b.Style))
	}

	if b.Title != "" && area.Width > 4 {
		title := runewidth.Truncate(b.Title, area.Width-4, "…")
		style := b.TitleStyle
		if style.IsZero() {
			style = b.Style
		}
		buf.SetString(left+2, top, title, style)
	}
}
