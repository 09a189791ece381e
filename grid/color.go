package grid

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrFg256     Attr = 1 << 6 // Fg.R is a 256-color palette index
	AttrBg256     Attr = 1 << 7 // Bg.R is a 256-color palette index
)

// AttrStyle masks only the style bits (excludes color mode flags)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Style bundles foreground, background, and attributes for one cell
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// DefaultStyle returns the zero style (default fg/bg, no attributes)
func DefaultStyle() Style {
	return Style{}
}

// WithFg returns a copy of the style with foreground replaced
func (s Style) WithFg(fg RGB) Style {
	s.Fg = fg
	return s
}

// WithBg returns a copy of the style with background replaced
func (s Style) WithBg(bg RGB) Style {
	s.Bg = bg
	return s
}

// WithAttrs returns a copy of the style with attributes replaced
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs = a
	return s
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg == (RGB{}) && s.Bg == (RGB{}) && s.Attrs == AttrNone
}
