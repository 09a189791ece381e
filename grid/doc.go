// Package grid provides the cell-buffer core of the rendering pipeline:
// styled cells with grapheme-cluster content, clipped rectangular buffers,
// and minimal frame-to-frame diffing.
//
// Design principles:
//   - No operation fails: out-of-bounds writes clip, mismatched diffs
//     degrade to a full repaint
//   - Zero allocation in hot paths: Cell stores the common single-rune
//     glyph inline, spilling only multi-codepoint clusters
//   - Deterministic: Diff over equal inputs always yields the same changes
package grid
