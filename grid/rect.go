package grid

// Rect is a rectangular area in cell coordinates.
// It is a plain value type: all arithmetic returns new values and never
// mutates the receiver.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rect, clamping negative dimensions to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the first column past the rect
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rect
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Area returns the number of cells the rect covers
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty returns true if the rect covers no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if (x, y) lies within the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rects; an empty rect when disjoint
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Inset returns the rect shrunk by n cells on every side
func (r Rect) Inset(n int) Rect {
	return NewRect(r.X+n, r.Y+n, r.Width-2*n, r.Height-2*n)
}

// Sub returns a child rect positioned relative to r's origin, clipped to r
func (r Rect) Sub(x, y, w, h int) Rect {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.Width {
		w = r.Width - x
	}
	if y+h > r.Height {
		h = r.Height - y
	}
	return NewRect(r.X+x, r.Y+y, w, h)
}
