package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gridterm/grid"
)

// Gauge renders a horizontal progress bar with a fractional
// eighth-block tip and an optional centered label
type Gauge struct {
	Ratio    float64 // 0.0-1.0, clamped
	Style    grid.Style
	BarStyle grid.Style
	Label    string
}

// eighths maps a 0-7 remainder to a partial block glyph
var eighths = [8]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

func (g Gauge) Render(area grid.Rect, buf *grid.Buffer) {
	if area.IsEmpty() {
		return
	}
	ratio := g.Ratio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	y := area.Y + area.Height/2
	progress := int(float64(area.Width*8)*ratio + 0.5)
	full := progress / 8
	rem := progress % 8

	for i := 0; i < area.Width; i++ {
		var ch rune
		style := g.BarStyle
		switch {
		case i < full:
			ch = '█'
		case i == full && rem > 0:
			ch = eighths[rem]
		default:
			ch = ' '
			style = g.Style
		}
		buf.SetCell(area.X+i, y, grid.NewCell(ch, style))
	}

	if g.Label != "" {
		label := runewidth.Truncate(g.Label, area.Width, "")
		x := area.X + (area.Width-runewidth.StringWidth(label))/2
		buf.SetString(x, y, label, g.Style)
	}
}
