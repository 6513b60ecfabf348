package hashtags

import (
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
)

// SizeOf computes a chip's size. The text is measured on one line and
// padded; removable chips add room for the remove button. A chip wider
// than availableWidth is clamped to it and grows taller to fit its text
// wrapped at that width. availableWidth <= 0 means unbounded.
func SizeOf(tag Tag, cfg Configuration, m measure.Measurer, availableWidth float32) layout.Size {
	cfg = cfg.Sanitized()
	font := cfg.TextFont()

	textW, textH := m.MeasureSingleLine(tag.Text, font)
	height := cfg.PaddingTop + textH + cfg.PaddingBottom
	// +1 keeps the last glyph from being clipped by rounding
	width := cfg.PaddingLeft + textW + cfg.PaddingRight + 1

	if tag.IsRemovable {
		width += cfg.RemoveButtonSize + cfg.RemoveButtonSpacing
	}

	if availableWidth > 0 && width > availableWidth {
		width = availableWidth
		height = cfg.PaddingTop + m.MeasureWrapped(tag.Text, font, width) + cfg.PaddingBottom
	}

	return layout.Size{Width: width, Height: height}
}
