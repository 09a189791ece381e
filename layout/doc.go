// Package layout resolves declarative space constraints into concrete
// rectangles. Stack splits one axis by a prioritized constraint list;
// Flex adds line wrapping, justification, and cross-axis alignment on
// top of the same resolver. Both are pure: composing layouts is calling
// Split again on a child rect.
package layout
