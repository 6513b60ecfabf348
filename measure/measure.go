// Package measure answers how large a piece of text renders in a font.
//
// Layout code depends only on the Measurer interface. Monospace gives
// exact, font-independent results (terminals and tests); Face measures real
// glyph advances through golang.org/x/image/font; Cache memoizes either.
package measure

import "fmt"

// Font identifies a font family at a point size.
type Font struct {
	Family string
	Size   float32
}

// DefaultFont is the chip font used when nothing else is configured.
var DefaultFont = Font{Family: "sans", Size: 13}

func (f Font) String() string {
	return fmt.Sprintf("%s@%g", f.Family, f.Size)
}

// Measurer measures text. Implementations must be deterministic for a
// given text and font and have no side effects beyond caching.
type Measurer interface {
	// MeasureSingleLine returns the size of text laid out without wrapping.
	// Empty text has zero width and the height of one line.
	MeasureSingleLine(text string, font Font) (width, height float32)

	// MeasureWrapped returns the height of text wrapped at maxWidth.
	// A non-positive maxWidth disables wrapping.
	MeasureWrapped(text string, font Font, maxWidth float32) float32
}
