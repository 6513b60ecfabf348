package hashtags

import (
	"image/color"

	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
	"github.com/agiangrant/hashtags/tw"
)

// Default colors.
var (
	LightGray = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	White     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Yellow    = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// Configuration is the chip style shared by every chip of one View.
// Each View owns its own copy; there is no global style state.
type Configuration struct {
	// Chip interior padding
	PaddingLeft   float32
	PaddingRight  float32
	PaddingTop    float32
	PaddingBottom float32

	TagCornerRadius float32

	// TextSize sizes the font when Font.Size is not set.
	TextSize float32
	Font     measure.Font

	BackgroundColor color.RGBA
	TextColor       color.RGBA
	GoldTextColor   color.RGBA

	// Remove affordance, only used by removable tags
	RemoveButtonSize    float32
	RemoveButtonSpacing float32
}

// DefaultConfiguration returns the stock chip style.
func DefaultConfiguration() Configuration {
	return Configuration{
		PaddingLeft:         8,
		PaddingRight:        8,
		PaddingTop:          8,
		PaddingBottom:       8,
		TagCornerRadius:     12,
		TextSize:            12,
		Font:                measure.DefaultFont,
		BackgroundColor:     LightGray,
		TextColor:           White,
		GoldTextColor:       Yellow,
		RemoveButtonSize:    20,
		RemoveButtonSpacing: 8,
	}
}

// Sanitized returns a copy with every negative size clamped to zero.
func (c Configuration) Sanitized() Configuration {
	c.PaddingLeft = clamp0(c.PaddingLeft)
	c.PaddingRight = clamp0(c.PaddingRight)
	c.PaddingTop = clamp0(c.PaddingTop)
	c.PaddingBottom = clamp0(c.PaddingBottom)
	c.TagCornerRadius = clamp0(c.TagCornerRadius)
	c.TextSize = clamp0(c.TextSize)
	c.Font.Size = clamp0(c.Font.Size)
	c.RemoveButtonSize = clamp0(c.RemoveButtonSize)
	c.RemoveButtonSpacing = clamp0(c.RemoveButtonSpacing)
	return c
}

// TextFont returns the font chips are measured and drawn with.
func (c Configuration) TextFont() measure.Font {
	f := c.Font
	if f.Family == "" {
		f.Family = measure.DefaultFont.Family
	}
	if f.Size <= 0 {
		f.Size = c.TextSize
	}
	return f
}

// Padding returns the chip padding as insets.
func (c Configuration) Padding() layout.Insets {
	return layout.InsetsTLBR(c.PaddingTop, c.PaddingLeft, c.PaddingBottom, c.PaddingRight)
}

// ApplyClasses returns a copy with the base (unprefixed) utility classes
// applied, e.g. "px-3 py-1 rounded-full bg-gray-400 text-white".
func (c Configuration) ApplyClasses(classes string) Configuration {
	return c.ApplyClassesForWidth(classes, 0)
}

// ApplyClassesForWidth is ApplyClasses with responsive prefixes resolved
// against a container width.
func (c Configuration) ApplyClassesForWidth(classes string, width float32) Configuration {
	if classes == "" {
		return c
	}
	return c.applyStyle(tw.Resolve(classes, width))
}

func (c Configuration) applyStyle(p tw.StyleProperties) Configuration {
	if p.PaddingLeft != nil {
		c.PaddingLeft = *p.PaddingLeft
	}
	if p.PaddingRight != nil {
		c.PaddingRight = *p.PaddingRight
	}
	if p.PaddingTop != nil {
		c.PaddingTop = *p.PaddingTop
	}
	if p.PaddingBottom != nil {
		c.PaddingBottom = *p.PaddingBottom
	}
	if p.BorderRadius != nil {
		c.TagCornerRadius = *p.BorderRadius
	}
	if p.FontFamily != nil {
		c.Font.Family = *p.FontFamily
	}
	if p.FontSize != nil {
		c.Font.Size = *p.FontSize
		c.TextSize = *p.FontSize
	}
	if p.BackgroundColor != nil {
		c.BackgroundColor = tw.ToRGBA(*p.BackgroundColor)
	}
	if p.TextColor != nil {
		c.TextColor = tw.ToRGBA(*p.TextColor)
	}
	if p.GoldTextColor != nil {
		c.GoldTextColor = tw.ToRGBA(*p.GoldTextColor)
	}
	if p.RemoveSize != nil {
		c.RemoveButtonSize = *p.RemoveSize
	}
	if p.RemoveSpacing != nil {
		c.RemoveButtonSpacing = *p.RemoveSpacing
	}
	return c
}

// ContainerOptions configure the box the chips flow in.
type ContainerOptions struct {
	Padding           layout.Insets
	HorizontalSpacing float32
	VerticalSpacing   float32
	CornerRadius      float32

	// FallbackSize is the preferred size of a View with nothing to show.
	FallbackSize layout.Size
}

// DefaultContainerOptions returns the stock container geometry.
func DefaultContainerOptions() ContainerOptions {
	return ContainerOptions{
		Padding:           layout.InsetsTLBR(10, 0, 10, 10),
		HorizontalSpacing: 10,
		VerticalSpacing:   10,
		CornerRadius:      5,
		FallbackSize:      layout.Size{Width: 100, Height: 44},
	}
}

// gap-x and gap-y are the only container utilities.
func (o ContainerOptions) applyStyle(p tw.StyleProperties) ContainerOptions {
	if p.GapX != nil {
		o.HorizontalSpacing = *p.GapX
	}
	if p.GapY != nil {
		o.VerticalSpacing = *p.GapY
	}
	return o
}

func clamp0(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
