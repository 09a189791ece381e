// Command gridtree is an interactive filesystem browser demonstrating
// the rendering core: lazy tree expansion over os.ReadDir, constraint
// layout, and diff-based terminal output through the tcell backend.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/lixenwraith/gridterm/backend/tcellscreen"
	"github.com/lixenwraith/gridterm/event"
	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/layout"
	"github.com/lixenwraith/gridterm/term"
	"github.com/lixenwraith/gridterm/tree"
	"github.com/lixenwraith/gridterm/widget"
)

func main() {
	root := flag.String("path", ".", "directory to browse")
	flag.Parse()

	if err := run(*root); err != nil {
		fmt.Fprintln(os.Stderr, "gridtree:", err)
		os.Exit(1)
	}
}

func run(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", absRoot)
	}

	backend, err := tcellscreen.New()
	if err != nil {
		return err
	}
	defer backend.Fini()

	terminal, err := term.New(backend)
	if err != nil {
		return err
	}

	a := &app{
		root:     absRoot,
		terminal: terminal,
		model:    tree.NewModel(),
		state:    tree.NewState(),
	}
	rootPath, err := a.model.Add(nil, rootID, absRoot, true)
	if err != nil {
		return err
	}
	a.state.Open(rootPath)
	a.state.Selected = rootPath

	return a.loop(backend)
}

const rootID = "/"

type app struct {
	root     string
	terminal *term.Terminal
	model    *tree.Model
	state    *tree.State
	rows     []tree.Row
}

func (a *app) loop(backend *tcellscreen.Backend) error {
	for {
		if err := a.draw(); err != nil {
			return err
		}

		ev := backend.PollEvent()
		switch ev.Type {
		case event.TypeClosed:
			return nil
		case event.TypeError:
			return ev.Err
		case event.TypeResize:
			if err := a.terminal.Resize(ev.Width, ev.Height); err != nil {
				return err
			}
		case event.TypeKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		}
	}
}

func (a *app) handleKey(ev event.Event) (quit bool) {
	switch {
	case ev.Key == event.KeyEscape, ev.Rune == 'q':
		return true
	case ev.Key == event.KeyUp, ev.Rune == 'k':
		a.state.SelectDelta(a.rows, -1)
	case ev.Key == event.KeyDown, ev.Rune == 'j':
		a.state.SelectDelta(a.rows, 1)
	case ev.Key == event.KeyPageUp:
		_, h := a.terminal.Size()
		a.state.SelectDelta(a.rows, -(h - 2))
	case ev.Key == event.KeyPageDown:
		_, h := a.terminal.Size()
		a.state.SelectDelta(a.rows, h-2)
	case ev.Key == event.KeyHome, ev.Rune == 'g':
		a.state.SelectFirst(a.rows)
	case ev.Key == event.KeyEnd, ev.Rune == 'G':
		a.state.SelectLast(a.rows)
	case ev.Key == event.KeyEnter, ev.Rune == ' ':
		a.toggleSelected()
	case ev.Key == event.KeyRight, ev.Rune == 'l':
		a.openSelected()
	case ev.Key == event.KeyLeft, ev.Rune == 'h':
		a.closeOrAscend()
	case ev.Rune == 'r':
		a.reload()
	}
	return false
}

func (a *app) toggleSelected() {
	if info, ok := a.model.Lookup(a.state.Selected); ok && info.HasChildren {
		a.state.Toggle(a.state.Selected)
	}
}

func (a *app) openSelected() {
	if info, ok := a.model.Lookup(a.state.Selected); ok && info.HasChildren {
		a.state.Open(a.state.Selected)
	}
}

// closeOrAscend collapses the selected directory, or moves the selection
// to the parent when already collapsed
func (a *app) closeOrAscend() {
	sel := a.state.Selected
	if a.state.IsOpen(sel) {
		a.state.Close(sel)
		return
	}
	if parent := sel.Parent(); parent != nil {
		a.state.Selected = parent
	}
}

// reload rebuilds the model from scratch; the path-based state survives,
// so open directories re-expand lazily on the next frame
func (a *app) reload() {
	m := tree.NewModel()
	if _, err := m.Add(nil, rootID, a.root, true); err != nil {
		return
	}
	a.model = m
}

func (a *app) draw() error {
	a.rows = tree.FlattenExpand(a.model, a.state, a.expand)

	return a.terminal.Draw(func(buf *grid.Buffer) {
		regions := layout.MustNew(layout.Vertical,
			layout.Length(1),
			layout.Fill(1),
			layout.Length(1),
		).Split(buf.Area)
		titleArea, treeArea, statusArea := regions[0], regions[1], regions[2]

		a.state.EnsureVisible(a.rows, treeArea.Height)

		titleStyle := grid.Style{Attrs: grid.AttrBold | grid.AttrReverse}
		buf.Fill(titleArea, " ", titleStyle)
		widget.Text{Content: " gridtree " + a.root, Style: titleStyle}.Render(titleArea, buf)

		widget.Tree{
			Rows:          a.rows,
			SelectedStyle: grid.Style{Attrs: grid.AttrReverse},
			GuideStyle:    grid.Style{Attrs: grid.AttrDim},
		}.RenderStateful(treeArea, buf, a.state)

		a.drawStatus(statusArea, buf, treeArea.Height)
	})
}

func (a *app) drawStatus(area grid.Rect, buf *grid.Buffer, viewHeight int) {
	cols := layout.MustNew(layout.Horizontal,
		layout.Fill(1),
		layout.Length(16),
	).Split(area)

	sel := a.state.Selected.String()
	status := fmt.Sprintf(" %s  [%d/%d]", sel, a.state.SelectedIndex(a.rows)+1, len(a.rows))
	widget.Text{Content: status, Style: grid.Style{Attrs: grid.AttrDim}}.Render(cols[0], buf)

	// Scroll position indicator; full bar when everything fits
	ratio := 1.0
	if span := len(a.rows) - viewHeight; span > 0 {
		ratio = float64(a.state.Offset) / float64(span)
	}
	widget.Gauge{
		Ratio:    ratio,
		BarStyle: grid.Style{Attrs: grid.AttrDim},
	}.Render(cols[1], buf)
}

// expand materializes one directory's entries, directories first,
// names normalized to NFC so visually identical names compare equal
func (a *app) expand(parent tree.Path) []tree.NodeData {
	fsPath := a.root
	if len(parent) > 1 {
		fsPath = filepath.Join(append([]string{a.root}, parent[1:]...)...)
	}

	entries, err := os.ReadDir(fsPath)
	if err != nil {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	nodes := make([]tree.NodeData, 0, len(entries))
	for _, e := range entries {
		text := norm.NFC.String(e.Name())
		if e.IsDir() {
			text += "/"
		}
		nodes = append(nodes, tree.NodeData{
			ID:          e.Name(),
			Text:        text,
			HasChildren: e.IsDir(),
		})
	}
	return nodes
}
