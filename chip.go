package hashtags

import (
	"image/color"

	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
)

// ChipKind selects the chip variant and the pool a chip is recycled in.
type ChipKind uint8

const (
	KindPlain ChipKind = iota
	KindRemovable
)

func (k ChipKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindRemovable:
		return "removable"
	}
	return "unknown"
}

func kindOf(tag Tag) ChipKind {
	if tag.IsRemovable {
		return KindRemovable
	}
	return KindPlain
}

// Appearance is everything a renderer needs to draw a chip.
type Appearance struct {
	Text            string
	Font            measure.Font
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	CornerRadius    float32
	Padding         layout.Insets

	// RemoveButtonSize is zero for plain chips.
	RemoveButtonSize float32
}

// Chip is the visual cell for one tag during a layout pass. Chips are
// recycled between passes: the tag and every visual field are rewritten
// each time a chip is handed out.
type Chip struct {
	Kind ChipKind
	Tag  Tag

	// Frames are in View coordinates.
	Frame       layout.Rect
	TextFrame   layout.Rect
	RemoveFrame layout.Rect // empty for plain chips

	Appearance Appearance

	owner *View
}

// appearanceFor derives a chip's look from its tag, the style and its frame.
func appearanceFor(tag Tag, cfg Configuration, frame layout.Rect) Appearance {
	a := Appearance{
		Text:            tag.Text,
		Font:            cfg.TextFont(),
		TextColor:       cfg.TextColor,
		BackgroundColor: cfg.BackgroundColor,
		CornerRadius:    cfg.TagCornerRadius,
		Padding:         cfg.Padding(),
	}
	if tag.IsGold {
		a.TextColor = cfg.GoldTextColor
	}
	// A radius past half the height still draws a pill
	if half := frame.Height / 2; a.CornerRadius > half {
		a.CornerRadius = half
	}
	if tag.IsRemovable {
		a.RemoveButtonSize = cfg.RemoveButtonSize
	}
	return a
}

// configure overwrites the chip for tag. Nothing from a previous use survives.
func (c *Chip) configure(owner *View, tag Tag, cfg Configuration, frame layout.Rect) {
	*c = Chip{
		Kind:       kindOf(tag),
		Tag:        tag,
		Frame:      frame,
		Appearance: appearanceFor(tag, cfg, frame),
		owner:      owner,
	}

	text := frame.Inset(cfg.Padding())
	if tag.IsRemovable {
		text = text.Inset(layout.Insets{Right: cfg.RemoveButtonSize + cfg.RemoveButtonSpacing})
		x := text.Right() + cfg.RemoveButtonSpacing
		if limit := frame.Right() - cfg.RemoveButtonSize; x > limit {
			x = max(limit, frame.X)
		}
		c.RemoveFrame = layout.Rect{
			X:      x,
			Y:      text.Y,
			Width:  min(cfg.RemoveButtonSize, frame.Width),
			Height: text.Height,
		}
	}
	c.TextFrame = text
}

// reset drops the tag and owner of a released chip.
func (c *Chip) reset() {
	*c = Chip{Kind: c.Kind}
}

// ActivateRemove acts as a press on the remove button. The owning View
// removes the tag and lays out before its delegate hears of the removal.
// It reports false for plain chips and chips no longer on screen.
func (c *Chip) ActivateRemove() bool {
	if c.Kind != KindRemovable || c.owner == nil {
		return false
	}
	c.owner.removeFromChip(c.Tag)
	return true
}
