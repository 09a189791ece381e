// Package term orchestrates frames: a draw callback fills the current
// cell buffer, the diff against the previous frame goes to a Backend,
// and the buffers swap only once the backend commits.
package term

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gridterm/grid"
)

// ErrNotInitialized reports use of a Terminal whose backend gave a
// zero-sized screen
var ErrNotInitialized = errors.New("term: terminal not initialized")

// Backend is the external collaborator performing physical terminal I/O.
// The core needs nothing dialect-specific from it: only the ability to
// apply cell runs, flush them, report its size, and clear the screen.
type Backend interface {
	// WriteCells applies a diff's runs to the physical terminal
	WriteCells(runs []grid.Run) error

	// Flush ensures all buffered writes reach the terminal
	Flush() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Clear performs a full-screen clear, used on resize and entry
	Clear() error
}

// Terminal owns the double-buffered frame cycle. It is single-threaded by
// contract: each Draw completes fully (diff computed, backend flushed)
// before the next may begin, so frames reach the terminal strictly in
// submission order.
type Terminal struct {
	backend  Backend
	current  *grid.Buffer
	previous *grid.Buffer
	// full forces the next diff to repaint every cell (after resize or
	// initial entry, when the previous buffer no longer matches reality)
	full bool
}

// New sizes the frame buffers from the backend and clears the screen
func New(backend Backend) (*Terminal, error) {
	w, h := backend.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: backend reports size %dx%d", ErrNotInitialized, w, h)
	}
	area := grid.NewRect(0, 0, w, h)
	t := &Terminal{
		backend:  backend,
		current:  grid.NewBuffer(area),
		previous: grid.NewBuffer(area),
		full:     true,
	}
	if err := backend.Clear(); err != nil {
		return nil, fmt.Errorf("clear screen: %w", err)
	}
	return t, nil
}

// Size returns the frame dimensions
func (t *Terminal) Size() (width, height int) {
	return t.current.Area.Width, t.current.Area.Height
}

// Area returns the full frame rect, the natural root for layout splits
func (t *Terminal) Area() grid.Rect {
	return t.current.Area
}

// Draw runs one frame: clear the current buffer, invoke the callback to
// fill it, diff against the previous frame, and send the changes to the
// backend. On backend failure the frame is not committed — the buffers
// are left unswapped so a retry re-diffs against the same known-good
// baseline — and the error is returned to the caller.
func (t *Terminal) Draw(fn func(buf *grid.Buffer)) error {
	t.current.Clear()
	fn(t.current)

	var changes []grid.Change
	if t.full {
		changes = t.current.Diff(nil)
	} else {
		changes = t.current.Diff(t.previous)
	}

	if len(changes) > 0 {
		if err := t.backend.WriteCells(grid.CoalesceRuns(changes)); err != nil {
			return fmt.Errorf("write cells: %w", err)
		}
	}
	if err := t.backend.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}

	t.current, t.previous = t.previous, t.current
	t.full = false
	return nil
}

// Resize adapts the frame buffers to new dimensions and schedules a full
// repaint. Call it when the backend reports a size change.
func (t *Terminal) Resize(width, height int) error {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	area := grid.NewRect(0, 0, width, height)
	t.current.Resize(area)
	t.previous.Resize(area)
	t.full = true
	if err := t.backend.Clear(); err != nil {
		return fmt.Errorf("clear on resize: %w", err)
	}
	return nil
}
