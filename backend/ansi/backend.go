// Package ansi implements a term.Backend that speaks raw escape
// sequences over a tty (or any io.Writer in tests). Output is buffered
// and SGR sequences are coalesced: a style change is emitted only when
// it differs from the terminal's current state.
package ansi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/gridterm/grid"
)

const outputBufferSize = 32 * 1024

// ErrNotTerminal reports Init on a non-tty without WithWriter
var ErrNotTerminal = errors.New("ansi: stdout is not a terminal")

// Backend writes cell runs as ANSI escape sequences. It tracks the
// terminal's cursor position and active SGR state so consecutive cells
// with the same style cost only their glyph bytes.
type Backend struct {
	out  *bufio.Writer
	file *os.File // controlling terminal, nil in writer mode
	mode Mode

	fixedW, fixedH int // size in writer mode

	rawState *term.State

	cursorX, cursorY int
	cursorValid      bool
	lastStyle        grid.Style
	styleValid       bool

	resizeFn   func(width, height int)
	sigC       chan os.Signal
	stopResize chan struct{}

	initialized bool
}

// Option configures a Backend before Init
type Option func(*Backend)

// WithWriter directs output to w with a fixed reported size instead of
// taking over the process tty. Raw mode, alternate screen, and resize
// signals are skipped. Intended for tests and capture.
func WithWriter(w io.Writer, width, height int) Option {
	return func(b *Backend) {
		b.out = bufio.NewWriterSize(w, outputBufferSize)
		b.fixedW = width
		b.fixedH = height
	}
}

// WithMode overrides the detected color mode
func WithMode(m Mode) Option {
	return func(b *Backend) {
		b.mode = m
	}
}

// New creates a Backend. Call Init before use and Fini on shutdown.
func New(opts ...Option) *Backend {
	b := &Backend{mode: DetectMode()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init takes over the terminal: raw mode, alternate screen, hidden
// cursor, auto-wrap disabled. In writer mode it only arms the output
// buffer.
func (b *Backend) Init() error {
	if b.initialized {
		return nil
	}
	if b.out == nil {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return ErrNotTerminal
		}
		b.file = os.Stdout
		b.out = bufio.NewWriterSize(b.file, outputBufferSize)

		state, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		b.rawState = state

		b.out.Write(csiAltScreenEnter)
		b.out.Write(csiCursorHide)
		b.out.Write(csiAutoWrapOff)
		if err := b.out.Flush(); err != nil {
			return fmt.Errorf("terminal setup: %w", err)
		}
	}
	b.initialized = true
	return nil
}

// Fini restores the terminal to its pre-Init state. Safe to call more
// than once.
func (b *Backend) Fini() {
	if !b.initialized {
		return
	}
	b.initialized = false

	if b.stopResize != nil {
		close(b.stopResize)
		b.stopResize = nil
	}
	if b.file != nil {
		b.out.Write(csiSGR0)
		b.out.Write(csiAutoWrapOn)
		b.out.Write(csiCursorShow)
		b.out.Write(csiAltScreenExit)
		b.out.Flush()
	}
	if b.rawState != nil {
		term.Restore(int(os.Stdin.Fd()), b.rawState)
		b.rawState = nil
	}
}

// Size returns the terminal dimensions. Queried fresh from the tty so
// the value is accurate immediately after a resize signal.
func (b *Backend) Size() (width, height int) {
	if b.file == nil {
		return b.fixedW, b.fixedH
	}
	w, h, err := getWinSize(int(b.file.Fd()))
	if err != nil {
		return 0, 0
	}
	return w, h
}

// SetResizeHandler installs fn to be called with the new dimensions on
// each terminal resize. No-op in writer mode.
func (b *Backend) SetResizeHandler(fn func(width, height int)) {
	b.resizeFn = fn
	if b.file != nil && b.stopResize == nil {
		b.stopResize = make(chan struct{})
		b.watchResize()
	}
}

// WriteCells encodes runs as positioned, style-coalesced output
func (b *Backend) WriteCells(runs []grid.Run) error {
	if !b.initialized {
		return ErrNotTerminal
	}
	for _, run := range runs {
		b.moveTo(run.X, run.Y)
		for i, c := range run.Cells {
			if c.IsContinuation() {
				if i == 0 {
					// Orphaned trailing half: its lead sits unchanged
					// outside the run, so overwrite just this column
					b.writeStyle(c.Style)
					b.out.WriteByte(' ')
					b.cursorX++
				}
				continue
			}
			b.writeStyle(c.Style)
			b.out.WriteString(c.Grapheme())
			b.cursorX += int(c.Width)
		}
	}
	return nil
}

// Flush pushes buffered output to the terminal
func (b *Backend) Flush() error {
	return b.out.Flush()
}

// Clear wipes the screen and resets tracked terminal state
func (b *Backend) Clear() error {
	if b.out == nil {
		return ErrNotTerminal
	}
	b.out.Write(csiSGR0)
	b.out.Write(csiClear)
	b.cursorX, b.cursorY = 0, 0
	b.cursorValid = true
	b.lastStyle = grid.Style{}
	b.styleValid = true
	return b.out.Flush()
}

// moveTo positions the cursor, preferring a short forward motion over
// an absolute move when the target is on the current row
func (b *Backend) moveTo(x, y int) {
	if b.cursorValid && y == b.cursorY {
		if x == b.cursorX {
			return
		}
		if dx := x - b.cursorX; dx > 0 && dx <= 4 {
			writeCursorForward(b.out, dx)
			b.cursorX = x
			return
		}
	}
	writeCursorPos(b.out, x, y)
	b.cursorX, b.cursorY = x, y
	b.cursorValid = true
}

// writeStyle emits the SGR delta from the terminal's current style to s.
// An attribute change forces a full reset and rebuild since attributes
// cannot be cleared individually across all terminals.
func (b *Backend) writeStyle(s grid.Style) {
	if b.styleValid && s == b.lastStyle {
		return
	}
	sameAttrs := b.styleValid && s.Attrs == b.lastStyle.Attrs
	if !sameAttrs {
		b.out.Write(csiSGR0)
		b.writeAttrs(s.Attrs)
		b.writeFg(s)
		b.writeBg(s)
	} else {
		if s.Fg != b.lastStyle.Fg {
			b.writeFg(s)
		}
		if s.Bg != b.lastStyle.Bg {
			b.writeBg(s)
		}
	}
	b.lastStyle = s
	b.styleValid = true
}

func (b *Backend) writeAttrs(a grid.Attr) {
	if a&grid.AttrStyle == 0 {
		return
	}
	pairs := []struct {
		bit  grid.Attr
		code byte
	}{
		{grid.AttrBold, '1'},
		{grid.AttrDim, '2'},
		{grid.AttrItalic, '3'},
		{grid.AttrUnderline, '4'},
		{grid.AttrBlink, '5'},
		{grid.AttrReverse, '7'},
	}
	for _, p := range pairs {
		if a&p.bit != 0 {
			b.out.Write(csi)
			b.out.WriteByte(p.code)
			b.out.WriteByte('m')
		}
	}
}

func (b *Backend) writeFg(s grid.Style) {
	if s.Attrs&grid.AttrFg256 != 0 {
		b.out.Write(csiFg256)
		writeInt(b.out, int(s.Fg.R))
		b.out.WriteByte('m')
		return
	}
	if s.Fg == (grid.RGB{}) {
		b.out.Write(csiDefaultFg)
		return
	}
	if b.mode == ModeTrueColor {
		b.out.Write(csiFgRGB)
		writeInt(b.out, int(s.Fg.R))
		b.out.WriteByte(';')
		writeInt(b.out, int(s.Fg.G))
		b.out.WriteByte(';')
		writeInt(b.out, int(s.Fg.B))
		b.out.WriteByte('m')
		return
	}
	b.out.Write(csiFg256)
	writeInt(b.out, int(rgbTo256(s.Fg.R, s.Fg.G, s.Fg.B)))
	b.out.WriteByte('m')
}

func (b *Backend) writeBg(s grid.Style) {
	if s.Attrs&grid.AttrBg256 != 0 {
		b.out.Write(csiBg256)
		writeInt(b.out, int(s.Bg.R))
		b.out.WriteByte('m')
		return
	}
	if s.Bg == (grid.RGB{}) {
		b.out.Write(csiDefaultBg)
		return
	}
	if b.mode == ModeTrueColor {
		b.out.Write(csiBgRGB)
		writeInt(b.out, int(s.Bg.R))
		b.out.WriteByte(';')
		writeInt(b.out, int(s.Bg.G))
		b.out.WriteByte(';')
		writeInt(b.out, int(s.Bg.B))
		b.out.WriteByte('m')
		return
	}
	b.out.Write(csiBg256)
	writeInt(b.out, int(rgbTo256(s.Bg.R, s.Bg.G, s.Bg.B)))
	b.out.WriteByte('m')
}

// EmergencyReset force-restores the terminal, bypassing buffered state.
// For panic handlers where the Backend's own state may be corrupt.
func EmergencyReset() {
	os.Stdout.WriteString("\x1b[0m\x1b[?25h\x1b[?7h\x1b[?1049l")
	os.Stdout.Write(csiRIS)
}
