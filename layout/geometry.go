package layout

// Size is a width/height pair in points.
type Size struct {
	Width  float32
	Height float32
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Rect is a rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains checks if a point is within the rectangle.
// Points on the left and top edges are inside; right and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() &&
		y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by the given insets. Width and height never go negative.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Horizontal(),
		Height: r.Height - in.Vertical(),
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Insets holds values for the four sides of a box.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// InsetsAll creates Insets with the same value on all sides.
func InsetsAll(v float32) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// InsetsTLBR creates Insets in top, left, bottom, right order.
func InsetsTLBR(top, left, bottom, right float32) Insets {
	return Insets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Clamped returns a copy with every negative side set to zero.
func (in Insets) Clamped() Insets {
	return Insets{
		Top:    nonNegative(in.Top),
		Left:   nonNegative(in.Left),
		Bottom: nonNegative(in.Bottom),
		Right:  nonNegative(in.Right),
	}
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
