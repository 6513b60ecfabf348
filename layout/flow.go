// Package layout arranges measured chips in a left-aligned, top-aligned
// wrapping flow.
//
// The engine is a pure function of its inputs: it never measures text and
// never resizes a chip. Callers size each chip against AvailableWidth first,
// so a chip can only be wider than a row when the width is unbounded.
package layout

import "github.com/agiangrant/hashtags/internal/debug"

// Flow describes the container a sequence of chips is laid out in.
type Flow struct {
	// Width is the full container width including padding.
	// A non-positive width means rows never wrap.
	Width float32

	// HorizontalSpacing separates chips on one row.
	HorizontalSpacing float32

	// VerticalSpacing separates rows.
	VerticalSpacing float32

	// Padding insets the content from the container edges.
	Padding Insets
}

// Row is one line of the flow.
type Row struct {
	Start, End int // chip indices, End exclusive
	Y          float32
	Width      float32
	Height     float32
}

// Len returns the number of chips on the row.
func (r Row) Len() int {
	return r.End - r.Start
}

// Result is the outcome of a layout pass.
type Result struct {
	// Frames holds one rectangle per input size, in input order.
	Frames []Rect

	// Rows holds the wrapped lines, top to bottom.
	Rows []Row

	// ContentSize is the widest row by the total row height, spacing and
	// vertical padding.
	ContentSize Size
}

// RowOf returns the row index holding chip i, or -1.
func (r Result) RowOf(i int) int {
	for idx, row := range r.Rows {
		if i >= row.Start && i < row.End {
			return idx
		}
	}
	return -1
}

// AvailableWidth returns the width chips are sized against.
// Zero or less means unbounded.
func (f Flow) AvailableWidth() float32 {
	if f.Width <= 0 {
		return 0
	}
	w := f.Width - f.Padding.Clamped().Horizontal()
	if w <= 0 {
		return 0
	}
	return w
}

// Arrange places sizes greedily: a chip joins the current row while
// rowWidth + HorizontalSpacing + chipWidth fits AvailableWidth, otherwise
// it starts a new row. Every row holds at least one chip.
func (f Flow) Arrange(sizes []Size) Result {
	padding := f.Padding.Clamped()
	hSpace := nonNegative(f.HorizontalSpacing)
	vSpace := nonNegative(f.VerticalSpacing)
	available := f.AvailableWidth()

	result := Result{
		Frames: make([]Rect, len(sizes)),
	}

	// Group chips into rows
	var (
		lineStart int
		lineWidth float32
		lineMax   float32
		itemCount int
	)
	closeRow := func(end int) {
		result.Rows = append(result.Rows, Row{
			Start:  lineStart,
			End:    end,
			Width:  lineWidth,
			Height: lineMax,
		})
	}
	for i, size := range sizes {
		width := nonNegative(size.Width)
		height := nonNegative(size.Height)

		if itemCount > 0 && available > 0 && lineWidth+hSpace+width > available {
			closeRow(i)
			lineStart = i
			lineWidth = width
			lineMax = height
			itemCount = 1
			continue
		}

		if itemCount > 0 {
			lineWidth += hSpace
		}
		lineWidth += width
		if height > lineMax {
			lineMax = height
		}
		itemCount++
	}
	if itemCount > 0 {
		closeRow(len(sizes))
	}

	// Position rows and their chips
	y := padding.Top
	var contentWidth float32
	for idx := range result.Rows {
		row := &result.Rows[idx]
		if idx > 0 {
			y += vSpace
		}
		row.Y = y

		x := padding.Left
		for i := row.Start; i < row.End; i++ {
			if i > row.Start {
				x += hSpace
			}
			w := nonNegative(sizes[i].Width)
			result.Frames[i] = Rect{
				X:      x,
				Y:      y,
				Width:  w,
				Height: nonNegative(sizes[i].Height),
			}
			x += w
		}

		if row.Width > contentWidth {
			contentWidth = row.Width
		}
		y += row.Height
	}

	result.ContentSize = Size{
		Width:  contentWidth,
		Height: y + padding.Bottom,
	}

	debug.Logf("layout: %d chips in %d rows, content %.1fx%.1f (available %.1f)",
		len(sizes), len(result.Rows), result.ContentSize.Width, result.ContentSize.Height, available)

	return result
}
