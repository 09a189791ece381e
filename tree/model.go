package tree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID reports two siblings sharing an identifier
	ErrDuplicateID = errors.New("tree: duplicate sibling identifier")
	// ErrCyclicPath reports an identifier repeating along its own ancestry
	ErrCyclicPath = errors.New("tree: identifier repeats along path")
	// ErrNoSuchParent reports an Add against a path not in the model
	ErrNoSuchParent = errors.New("tree: parent path not found")
)

// Path identifies a node by the ordered identifiers from the root.
// Paths never hold node pointers, so they stay meaningful across model
// rebuilds.
type Path []string

// pathSep separates identifiers in a path key; identifiers containing it
// are legal but will collide, so callers feeding untrusted IDs should
// strip control characters
const pathSep = "\x1f"

// Key returns the canonical set-membership form of the path
func (p Path) Key() string {
	return strings.Join(p, pathSep)
}

// Equal compares two paths element-wise
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Child returns a new path extended by id; the receiver is not modified
func (p Path) Child(id string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = id
	return child
}

// Parent returns the path without its last element, nil for roots
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

// nilNode marks the absence of a node index
const nilNode = int32(-1)

// node is one model entry. Structure is expressed through flat indices
// (parent / first child / next sibling), never pointers, so the whole
// model is a plain copyable value.
type node struct {
	id          string
	text        string
	parent      int32
	firstChild  int32
	lastChild   int32
	nextSibling int32
	hasChildren bool // node can expand, even before children materialize
	loaded      bool // children have been materialized
}

// Model is a hierarchical data source stored as one contiguous node
// array. It holds data only; all interaction state lives in State.
type Model struct {
	nodes     []node
	firstRoot int32
	lastRoot  int32
}

// NodeInfo is the read-only view of one model entry
type NodeInfo struct {
	Path        Path
	Text        string
	HasChildren bool
	Loaded      bool
}

// NewModel returns an empty model
func NewModel() *Model {
	return &Model{firstRoot: nilNode, lastRoot: nilNode}
}

// Len returns the number of nodes in the model
func (m *Model) Len() int {
	return len(m.nodes)
}

// Add appends a child under parent (nil parent adds a root) and returns
// its path. It fails, leaving the model unchanged, when the parent path
// does not resolve, a sibling already uses id, or id appears anywhere on
// the parent path (which would make the new path cyclic).
func (m *Model) Add(parent Path, id, text string, hasChildren bool) (Path, error) {
	parentIdx := nilNode
	if len(parent) > 0 {
		parentIdx = m.find(parent)
		if parentIdx == nilNode {
			return nil, fmt.Errorf("%w: %s", ErrNoSuchParent, parent)
		}
	}

	for _, pid := range parent {
		if pid == id {
			return nil, fmt.Errorf("%w: %q under %s", ErrCyclicPath, id, parent)
		}
	}

	first := m.firstRoot
	if parentIdx != nilNode {
		first = m.nodes[parentIdx].firstChild
	}
	for i := first; i != nilNode; i = m.nodes[i].nextSibling {
		if m.nodes[i].id == id {
			return nil, fmt.Errorf("%w: %q under %s", ErrDuplicateID, id, parent)
		}
	}

	idx := int32(len(m.nodes))
	m.nodes = append(m.nodes, node{
		id:          id,
		text:        text,
		parent:      parentIdx,
		firstChild:  nilNode,
		lastChild:   nilNode,
		nextSibling: nilNode,
		hasChildren: hasChildren,
	})

	if parentIdx == nilNode {
		if m.firstRoot == nilNode {
			m.firstRoot = idx
		} else {
			m.nodes[m.lastRoot].nextSibling = idx
		}
		m.lastRoot = idx
	} else {
		p := &m.nodes[parentIdx]
		if p.firstChild == nilNode {
			p.firstChild = idx
		} else {
			m.nodes[p.lastChild].nextSibling = idx
		}
		p.lastChild = idx
		p.hasChildren = true
		p.loaded = true
	}

	return parent.Child(id), nil
}

// Lookup resolves a path to its node, reporting whether it exists
func (m *Model) Lookup(p Path) (NodeInfo, bool) {
	idx := m.find(p)
	if idx == nilNode {
		return NodeInfo{}, false
	}
	n := m.nodes[idx]
	return NodeInfo{
		Path:        append(Path(nil), p...),
		Text:        n.text,
		HasChildren: n.hasChildren,
		Loaded:      n.loaded,
	}, true
}

// SetText updates a node's display content, reporting whether it exists
func (m *Model) SetText(p Path, text string) bool {
	idx := m.find(p)
	if idx == nilNode {
		return false
	}
	m.nodes[idx].text = text
	return true
}

// MarkLoaded records that a node's children are fully materialized,
// even when materialization produced none
func (m *Model) MarkLoaded(p Path) bool {
	idx := m.find(p)
	if idx == nilNode {
		return false
	}
	m.nodes[idx].loaded = true
	return true
}

// find walks a path down the sibling chains, nilNode when absent
func (m *Model) find(p Path) int32 {
	if len(p) == 0 {
		return nilNode
	}
	cur := m.firstRoot
	for depth, id := range p {
		found := nilNode
		for i := cur; i != nilNode; i = m.nodes[i].nextSibling {
			if m.nodes[i].id == id {
				found = i
				break
			}
		}
		if found == nilNode {
			return nilNode
		}
		if depth == len(p)-1 {
			return found
		}
		cur = m.nodes[found].firstChild
	}
	return nilNode
}
