// Package tree separates hierarchical data (Model), interaction state
// (State), and presentation (Flatten) for tree views.
//
// The model stores all nodes in one contiguous array linked by
// parent/first-child/next-sibling indices; identity is expressed through
// paths of identifiers, never pointers. State references nodes by path
// only, so a state survives a full model rebuild as long as paths remain
// meaningful. Flatten is the pure projection joining the two: it yields
// the visible rows with precomputed guide-line markers, optionally
// materializing lazily-expanded subtrees through an explicit callback.
package tree
