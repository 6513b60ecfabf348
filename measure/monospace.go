package measure

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Monospace measures text on a fixed cell grid. Widths count grapheme
// cluster cells (wide East Asian characters and most emoji take two), so
// results match what a terminal draws.
type Monospace struct {
	// CellWidth is the width of one cell. Zero derives it from the font
	// size (0.6 x size).
	CellWidth float32

	// LineHeight is the height of one line. Zero derives it from the font
	// size (1.2 x size).
	LineHeight float32
}

// Terminal returns a Monospace measurer where one cell is one unit wide and
// one line is one unit tall.
func Terminal() Monospace {
	return Monospace{CellWidth: 1, LineHeight: 1}
}

func (m Monospace) metrics(font Font) (cellWidth, lineHeight float32) {
	cellWidth, lineHeight = m.CellWidth, m.LineHeight
	size := font.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	if cellWidth <= 0 {
		cellWidth = size * 0.6
	}
	if lineHeight <= 0 {
		lineHeight = size * 1.2
	}
	return cellWidth, lineHeight
}

// Cells returns the number of terminal cells text occupies on one line.
func Cells(text string) int {
	return uniseg.StringWidth(text)
}

// MeasureSingleLine implements Measurer. Hard newlines still stack lines;
// the width is that of the widest line.
func (m Monospace) MeasureSingleLine(text string, font Font) (width, height float32) {
	cw, lh := m.metrics(font)
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if c := Cells(line); c > widest {
			widest = c
		}
	}
	return float32(widest) * cw, float32(len(lines)) * lh
}

// MeasureWrapped implements Measurer.
func (m Monospace) MeasureWrapped(text string, font Font, maxWidth float32) float32 {
	cw, lh := m.metrics(font)
	lines := Wrap(text, maxWidth, func(s string) float32 {
		return float32(Cells(s)) * cw
	})
	return float32(len(lines)) * lh
}
