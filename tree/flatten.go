package tree

// Marker is one per-depth guide symbol used to draw connector lines
type Marker uint8

const (
	MarkerBlank    Marker = iota // ancestor was the last sibling: no line
	MarkerContinue               // ancestor has siblings below: vertical line
	MarkerFork                   // this node, with siblings following
	MarkerEnd                    // this node, last among its siblings
)

// Row is one visible node in the flattened projection. Rows are ephemeral:
// produced fresh each call and never stored by the core.
type Row struct {
	Depth       int
	Path        Path
	Text        string
	HasChildren bool
	Expanded    bool
	// Markers holds one guide symbol per depth 0..Depth; the entry at the
	// row's own depth is Fork or End, ancestor entries Continue or Blank
	Markers []Marker
}

// IsLast reports whether the row is the last sibling at its depth
func (r Row) IsLast() bool {
	return len(r.Markers) > 0 && r.Markers[len(r.Markers)-1] == MarkerEnd
}

// NodeData describes one child produced by lazy materialization
type NodeData struct {
	ID          string
	Text        string
	HasChildren bool
}

// Expander materializes the children of an opened, not-yet-loaded node.
// It runs as an explicit step of FlattenExpand, and its results are added
// to the caller-owned model before the walk descends.
type Expander func(parent Path) []NodeData

// Flatten projects (model, state) to the ordered sequence of visible rows:
// a depth-first pre-order walk in sibling order that descends only into
// opened nodes. It is a pure function of its inputs; recomputing it is
// always valid and deterministic. A node's row appears if and only if
// every ancestor's path is in the opened set. Opened paths whose nodes no
// longer exist are skipped silently.
func Flatten(m *Model, s *State) []Row {
	return FlattenExpand(m, s, nil)
}

// FlattenExpand is Flatten with lazy materialization: opened nodes whose
// children are not yet loaded are populated through expand before the walk
// descends. With a nil expand it degrades to Flatten.
func FlattenExpand(m *Model, s *State, expand Expander) []Row {
	f := flattener{m: m, s: s, expand: expand}
	f.walk(m.firstRoot, nil)
	return f.rows
}

type flattener struct {
	m       *Model
	s       *State
	expand  Expander
	markers []Marker
	rows    []Row
}

func (f *flattener) setMarker(depth int, mk Marker) {
	for len(f.markers) <= depth {
		f.markers = append(f.markers, MarkerBlank)
	}
	f.markers[depth] = mk
}

// walk emits rows for the sibling chain starting at first, recursing into
// opened nodes. The markers slice carries the per-depth guide state: a
// node sets Fork or End at its own depth, then downgrades it to Continue
// or Blank while its descendants render.
func (f *flattener) walk(first int32, parentPath Path) {
	depth := len(parentPath)
	for i := first; i != nilNode; {
		n := f.m.nodes[i]
		next := n.nextSibling
		last := next == nilNode
		path := parentPath.Child(n.id)

		if last {
			f.setMarker(depth, MarkerEnd)
		} else {
			f.setMarker(depth, MarkerFork)
		}

		opened := n.hasChildren && f.s.IsOpen(path)
		row := Row{
			Depth:       depth,
			Path:        path,
			Text:        n.text,
			HasChildren: n.hasChildren,
			Expanded:    opened,
			Markers:     append([]Marker(nil), f.markers[:depth+1]...),
		}
		f.rows = append(f.rows, row)

		if opened {
			if !n.loaded && f.expand != nil {
				for _, nd := range f.expand(path) {
					// Duplicate or cyclic children are dropped, not fatal
					f.m.Add(path, nd.ID, nd.Text, nd.HasChildren)
				}
				f.m.MarkLoaded(path)
			}
			if last {
				f.setMarker(depth, MarkerBlank)
			} else {
				f.setMarker(depth, MarkerContinue)
			}
			// Re-read after materialization: Add may have grown the array
			f.walk(f.m.nodes[i].firstChild, path)
		}

		i = next
	}
}
