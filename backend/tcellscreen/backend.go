// Package tcellscreen implements a term.Backend on top of tcell's
// Screen, delegating terminfo handling, raw mode, and input parsing to
// tcell while the frame diffing stays in the rendering core.
package tcellscreen

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/grid"
)

// ErrClosed reports use of a Backend after Fini
var ErrClosed = errors.New("tcellscreen: screen closed")

// Backend adapts a tcell.Screen to the rendering core's Backend
// contract and translates tcell's input events to event.Event.
type Backend struct {
	screen tcell.Screen
	closed bool
}

// New allocates and initializes a tcell screen
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWith wraps an existing screen, typically a tcell SimulationScreen
// in tests. The screen must already be initialized.
func NewWith(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Fini releases the screen and restores the terminal
func (b *Backend) Fini() {
	if b.closed {
		return
	}
	b.closed = true
	b.screen.Fini()
}

// WriteCells applies runs to the screen's back buffer
func (b *Backend) WriteCells(runs []grid.Run) error {
	if b.closed {
		return ErrClosed
	}
	for _, run := range runs {
		x := run.X
		for _, c := range run.Cells {
			if c.IsContinuation() {
				// tcell manages wide-glyph trailing cells itself
				x++
				continue
			}
			b.screen.SetContent(x, run.Y, c.Rune, c.Comb, toTcellStyle(c.Style))
			x += int(c.Width)
		}
	}
	return nil
}

// Flush shows pending screen content
func (b *Backend) Flush() error {
	if b.closed {
		return ErrClosed
	}
	b.screen.Show()
	return nil
}

// Size returns the screen dimensions
func (b *Backend) Size() (width, height int) {
	if b.closed {
		return 0, 0
	}
	return b.screen.Size()
}

// Clear wipes the screen
func (b *Backend) Clear() error {
	if b.closed {
		return ErrClosed
	}
	b.screen.Clear()
	b.screen.Sync()
	return nil
}

// PollEvent blocks for the next input event, translated to the
// application event type. Returns TypeClosed after Fini.
func (b *Backend) PollEvent() event.Event {
	if b.closed {
		return event.Event{Type: event.TypeClosed}
	}
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return event.Event{Type: event.TypeClosed}
		}
		if out, ok := translate(ev); ok {
			return out
		}
	}
}

// toTcellStyle converts a grid style. Zero-value colors map to the
// terminal defaults; the palette flags select indexed colors.
func toTcellStyle(s grid.Style) tcell.Style {
	st := tcell.StyleDefault

	if s.Attrs&grid.AttrFg256 != 0 {
		st = st.Foreground(tcell.PaletteColor(int(s.Fg.R)))
	} else if s.Fg != (grid.RGB{}) {
		st = st.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if s.Attrs&grid.AttrBg256 != 0 {
		st = st.Background(tcell.PaletteColor(int(s.Bg.R)))
	} else if s.Bg != (grid.RGB{}) {
		st = st.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}

	if s.Attrs&grid.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attrs&grid.AttrDim != 0 {
		st = st.Dim(true)
	}
	if s.Attrs&grid.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attrs&grid.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attrs&grid.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if s.Attrs&grid.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
