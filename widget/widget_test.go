package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/gridterm/grid"
	"github.com/lixenwraith/gridterm/tree"
)

func row(buf *grid.Buffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Area.Width; x++ {
		c := buf.CellAt(x, y)
		if c.IsContinuation() {
			continue
		}
		sb.WriteString(c.Grapheme())
	}
	return sb.String()
}

func TestTextAlign(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 10, 3))

	Text{Content: "hi"}.Render(grid.NewRect(0, 0, 10, 1), buf)
	Text{Content: "hi", Align: AlignCenter}.Render(grid.NewRect(0, 1, 10, 1), buf)
	Text{Content: "hi", Align: AlignRight}.Render(grid.NewRect(0, 2, 10, 1), buf)

	if got := row(buf, 0); got != "hi        " {
		t.Errorf("Expected left-aligned %q, got %q", "hi        ", got)
	}
	if got := row(buf, 1); got != "    hi    " {
		t.Errorf("Expected centered %q, got %q", "    hi    ", got)
	}
	if got := row(buf, 2); got != "        hi" {
		t.Errorf("Expected right-aligned %q, got %q", "        hi", got)
	}
}

func TestTextTruncates(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 5, 1))
	Text{Content: "overflowing"}.Render(buf.Area, buf)

	if got := row(buf, 0); got != "over…" {
		t.Errorf("Expected %q, got %q", "over…", got)
	}
}

func TestTextWrap(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 6, 3))
	Text{Content: "one two three", Wrap: true}.Render(buf.Area, buf)

	if got := row(buf, 0); got != "one   " {
		t.Errorf("Expected %q, got %q", "one   ", got)
	}
	if got := row(buf, 1); got != "two   " {
		t.Errorf("Expected %q, got %q", "two   ", got)
	}
	if got := row(buf, 2); got != "three " {
		t.Errorf("Expected %q, got %q", "three ", got)
	}
}

func TestTextWrapNarrowerThanWideGlyph(t *testing.T) {
	// A 2-column glyph cannot be split below its own width; wrapping
	// must still terminate, emitting one glyph per line
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := grid.NewBuffer(grid.NewRect(0, 0, 1, 3))
		Text{Content: "世界", Wrap: true}.Render(buf.Area, buf)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Expected Render to terminate on a width-1 area")
	}

	lines := wrapLine("世界", 1)
	if len(lines) != 2 || lines[0] != "世" || lines[1] != "界" {
		t.Errorf("Expected one glyph per line, got %q", lines)
	}
}

func TestTextWrapMixedWidthSplit(t *testing.T) {
	lines := wrapLine("x世y", 2)
	want := []string{"x", "世", "y"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %q, got %q", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Expected %q, got %q", want, lines)
			break
		}
	}
}

func TestBlockBorder(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 6, 3))
	Block{Line: LineSingle}.Render(buf.Area, buf)

	want := "┌────┐\n│    │\n└────┘"
	if got := buf.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestBlockInner(t *testing.T) {
	b := Block{}
	inner := b.Inner(grid.NewRect(2, 3, 10, 6))
	if inner != grid.NewRect(3, 4, 8, 4) {
		t.Errorf("Expected inner (3,4,8,4), got %+v", inner)
	}
}

func TestBlockTitle(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 10, 3))
	Block{Line: LineSingle, Title: "hi"}.Render(buf.Area, buf)

	if got := row(buf, 0); got != "┌─hi─────┐" {
		t.Errorf("Expected %q, got %q", "┌─hi─────┐", got)
	}
}

func TestGauge(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 8, 1))
	Gauge{Ratio: 0.5}.Render(buf.Area, buf)

	if got := row(buf, 0); got != "████    " {
		t.Errorf("Expected %q, got %q", "████    ", got)
	}
}

func TestGaugeFractionalTip(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 8, 1))
	// 8 columns * 8 eighths * 0.3 = 19.2 -> 19 eighths: 2 full + 3/8 tip
	Gauge{Ratio: 0.3}.Render(buf.Area, buf)

	if got := buf.CellAt(2, 0).Rune; got != '▍' {
		t.Errorf("Expected 3/8 block tip, got %q", got)
	}
}

func TestGaugeClampsRatio(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 4, 1))
	Gauge{Ratio: 3.7}.Render(buf.Area, buf)

	if got := row(buf, 0); got != "████" {
		t.Errorf("Expected full bar for ratio > 1, got %q", got)
	}
}

func TestListSelection(t *testing.T) {
	buf := grid.NewBuffer(grid.NewRect(0, 0, 6, 2))
	state := &ListState{Selected: 1}
	sel := grid.Style{Attrs: grid.AttrReverse}
	List{Items: []string{"one", "two", "three"}, SelectedStyle: sel}.RenderStateful(buf.Area, buf, state)

	if got := row(buf, 0); got != "one   " {
		t.Errorf("Expected %q, got %q", "one   ", got)
	}
	if got := buf.CellAt(0, 1); got.Rune != 't' || got.Style != sel {
		t.Errorf("Expected selected style on row 1, got rune %q style %v", got.Rune, got.Style)
	}
}

func TestListStateClampTo(t *testing.T) {
	s := ListState{Selected: 10, Offset: 8}
	s.ClampTo(5, 3)

	if s.Selected != 4 {
		t.Errorf("Expected selection clamped to 4, got %d", s.Selected)
	}
	if s.Offset != 2 {
		t.Errorf("Expected offset 2, got %d", s.Offset)
	}
}

func TestTreeWidgetRender(t *testing.T) {
	m := tree.NewModel()
	m.Add(nil, "a", "a", true)
	m.Add(tree.Path{"a"}, "b", "b", false)
	m.Add(tree.Path{"a"}, "c", "c", false)

	state := tree.NewState()
	state.Open(tree.Path{"a"})
	rows := tree.Flatten(m, state)

	buf := grid.NewBuffer(grid.NewRect(0, 0, 12, 3))
	Tree{Rows: rows}.RenderStateful(buf.Area, buf, state)

	if got := row(buf, 0); !strings.HasPrefix(got, "└─▾ a") {
		t.Errorf("Expected expanded root with end branch, got %q", got)
	}
	if got := row(buf, 1); !strings.HasPrefix(got, "  ├─· b") {
		t.Errorf("Expected forked leaf b, got %q", got)
	}
	if got := row(buf, 2); !strings.HasPrefix(got, "  └─· c") {
		t.Errorf("Expected end leaf c, got %q", got)
	}
}

func TestTreeWidgetScrollOffset(t *testing.T) {
	m := tree.NewModel()
	m.Add(nil, "a", "a", true)
	m.Add(tree.Path{"a"}, "b", "b", false)
	m.Add(tree.Path{"a"}, "c", "c", false)

	state := tree.NewState()
	state.Open(tree.Path{"a"})
	rows := tree.Flatten(m, state)

	buf := grid.NewBuffer(grid.NewRect(0, 0, 12, 1))
	state.Offset = 2
	Tree{Rows: rows}.RenderStateful(buf.Area, buf, state)

	if got := row(buf, 0); !strings.Contains(got, "c") {
		t.Errorf("Expected scrolled view showing c, got %q", got)
	}
}
