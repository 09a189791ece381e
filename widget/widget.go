// Package widget defines the renderable-unit contracts and a set of
// concrete widgets built on them. Widgets are immediate-mode value types:
// a widget may only write into the buffer region it is handed and must
// not retain the buffer or area beyond the call.
package widget

import (
	"github.com/lixenwraith/gridterm/grid"
)

// Widget is the minimal ownership-erasing contract for heterogeneous
// collections. Statically-known widgets are used as concrete types; the
// interface exists for containers that truly need mixed children.
type Widget interface {
	Render(area grid.Rect, buf *grid.Buffer)
}

// StatefulWidget is the contract for widgets whose rendering depends on
// caller-owned interaction state. The state type is part of the widget's
// compile-time shape: passing the wrong state is a compile error, not a
// runtime failure.
type StatefulWidget[S any] interface {
	RenderStateful(area grid.Rect, buf *grid.Buffer, state *S)
}

// RenderAll renders widgets into their paired areas in order.
// Mismatched lengths render the shorter prefix.
func RenderAll(buf *grid.Buffer, areas []grid.Rect, widgets []Widget) {
	n := min(len(areas), len(widgets))
	for i := 0; i < n; i++ {
		widgets[i].Render(areas[i], buf)
	}
}
