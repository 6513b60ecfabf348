// Package hashtags lays out hashtag chips in a wrapping flow and tells a
// host when the collection needs a different height.
//
// A View owns an ordered list of tags. Every mutation sizes each chip
// against the container width, arranges the chips in left-aligned rows and
// compares the resulting content height with the last one reported. The
// delegate hears about a resize only when that height changed.
//
// A View is not safe for concurrent use; drive it from one goroutine the
// way a UI drives its views from the main thread.
package hashtags

import (
	"slices"

	"github.com/agiangrant/hashtags/internal/debug"
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
	"github.com/agiangrant/hashtags/tw"
)

// View is a collection of hashtag chips.
type View struct {
	tags []Tag

	width     float32
	base      Configuration
	classes   string
	classCfg  *tw.ThemeConfig
	container ContainerOptions
	measurer  measure.Measurer
	delegate  Delegate

	// Results of the last layout pass
	config    Configuration
	effective ContainerOptions
	result    layout.Result
	chips     []*Chip
	pool      chipPool

	lastHeight    float32
	hasLastHeight bool
}

// Option configures a View at construction.
type Option func(*View)

// WithWidth sets the container width. Zero or less lays every chip out on
// one row.
func WithWidth(width float32) Option {
	return func(v *View) {
		v.width = width
	}
}

// WithConfiguration replaces the default chip style.
func WithConfiguration(cfg Configuration) Option {
	return func(v *View) {
		v.base = cfg
	}
}

// WithClasses styles chips with utility classes applied over the
// configuration, e.g. "px-3 rounded-full bg-blue-500 md:px-4 gap-2".
// Responsive prefixes resolve against the container width on every pass.
func WithClasses(classes string) Option {
	return func(v *View) {
		v.classes = classes
	}
}

// WithClassConfig resolves the View's classes against cfg (aliases,
// breakpoints, class map) instead of the process-wide registration.
func WithClassConfig(cfg tw.ThemeConfig) Option {
	return func(v *View) {
		v.classCfg = &cfg
	}
}

// WithContainerPadding sets the padding between the container edges and the chips.
func WithContainerPadding(padding layout.Insets) Option {
	return func(v *View) {
		v.container.Padding = padding
	}
}

// WithSpacing sets the horizontal gap between chips and the vertical gap between rows.
func WithSpacing(horizontal, vertical float32) Option {
	return func(v *View) {
		v.container.HorizontalSpacing = horizontal
		v.container.VerticalSpacing = vertical
	}
}

// WithCornerRadius sets the container corner radius.
func WithCornerRadius(radius float32) Option {
	return func(v *View) {
		v.container.CornerRadius = radius
	}
}

// WithFallbackSize sets the preferred size reported when there is nothing to show.
func WithFallbackSize(size layout.Size) Option {
	return func(v *View) {
		v.container.FallbackSize = size
	}
}

// WithContainerOptions replaces all container options at once.
func WithContainerOptions(opts ContainerOptions) Option {
	return func(v *View) {
		v.container = opts
	}
}

// WithMeasurer sets the text measurer. The default measures with the Go
// fonts through an LRU cache.
func WithMeasurer(m measure.Measurer) Option {
	return func(v *View) {
		if m != nil {
			v.measurer = m
		}
	}
}

// WithDelegate sets the delegate. The first mutation reports the initial size.
func WithDelegate(d Delegate) Option {
	return func(v *View) {
		v.delegate = d
	}
}

// New creates an empty View.
func New(opts ...Option) *View {
	v := &View{
		base:      DefaultConfiguration(),
		container: DefaultContainerOptions(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.measurer == nil {
		v.measurer = measure.NewCache(measure.DefaultFace(), 0)
	}
	v.relayout()
	return v
}

// ============================================================================
// Tag list
// ============================================================================

// AddTag appends tag.
func (v *View) AddTag(tag Tag) {
	v.tags = append(v.tags, tag)
	v.update()
}

// AddTags appends tags in order.
func (v *View) AddTags(tags ...Tag) {
	v.tags = append(v.tags, tags...)
	v.update()
}

// RemoveTag removes the first tag equal to tag. Removing a tag that is not
// there changes nothing.
func (v *View) RemoveTag(tag Tag) {
	if i := slices.Index(v.tags, tag); i >= 0 {
		v.tags = slices.Delete(v.tags, i, i+1)
	}
	v.update()
}

// RemoveTags removes every tag.
func (v *View) RemoveTags() {
	clear(v.tags)
	v.tags = v.tags[:0]
	v.update()
}

// Tags returns a copy of the tags in display order.
func (v *View) Tags() []Tag {
	out := make([]Tag, len(v.tags))
	copy(out, v.tags)
	return out
}

// Len returns the number of tags.
func (v *View) Len() int {
	return len(v.tags)
}

// removeFromChip is the remove button's entry point: the list changes and
// the View lays out before the delegate is told.
func (v *View) removeFromChip(tag Tag) {
	debug.Logf("view: remove button pressed on %s", tag)
	v.RemoveTag(tag)
	if v.delegate != nil {
		v.delegate.OnTagRemoved(tag)
	}
}

// ============================================================================
// Layout
// ============================================================================

// update runs a full layout pass and the resize check.
func (v *View) update() {
	v.relayout()
	v.NotifyIfResized()
}

// relayout sizes every chip from scratch and hands out configured chips.
func (v *View) relayout() {
	v.config = v.base
	v.effective = v.container
	if v.classes != "" {
		var props tw.StyleProperties
		if v.classCfg != nil {
			props = tw.ResolveWith(v.classes, v.width, *v.classCfg)
		} else {
			props = tw.Resolve(v.classes, v.width)
		}
		v.config = v.config.applyStyle(props)
		v.effective = v.effective.applyStyle(props)
	}
	v.config = v.config.Sanitized()

	flow := layout.Flow{
		Width:             v.width,
		HorizontalSpacing: v.effective.HorizontalSpacing,
		VerticalSpacing:   v.effective.VerticalSpacing,
		Padding:           v.effective.Padding,
	}
	available := flow.AvailableWidth()

	sizes := make([]layout.Size, len(v.tags))
	for i, tag := range v.tags {
		sizes[i] = SizeOf(tag, v.config, v.measurer, available)
	}
	v.result = flow.Arrange(sizes)

	v.pool.releaseAll(v.chips)
	chips := v.chips[:0]
	for i, tag := range v.tags {
		c := v.pool.acquire(kindOf(tag))
		c.configure(v, tag, v.config, v.result.Frames[i])
		chips = append(chips, c)
	}
	v.chips = chips
}

// NotifyIfResized reports the content size to the delegate when its height
// differs from the last check, or when there was no previous check. The
// height is remembered even without a delegate.
func (v *View) NotifyIfResized() {
	size := v.result.ContentSize
	changed := !v.hasLastHeight || v.lastHeight != size.Height
	v.lastHeight = size.Height
	v.hasLastHeight = true

	if v.delegate == nil {
		return
	}
	if !changed {
		debug.Logf("view: height unchanged at %.1f", size.Height)
		return
	}
	debug.Logf("view: resize to %.1fx%.1f", size.Width, size.Height)
	v.delegate.OnShouldResize(size)
}

// PreferredSize lays out and returns the content size plus the container
// padding. With no tags, or a zero dimension, it returns the fallback size.
func (v *View) PreferredSize() layout.Size {
	v.relayout()

	padding := v.effective.Padding.Clamped()
	size := v.result.ContentSize
	size.Width += padding.Horizontal()
	size.Height += padding.Vertical()

	if len(v.tags) == 0 || size.Width == 0 || size.Height == 0 {
		return v.effective.FallbackSize
	}
	return size
}

// Layout returns the result of the last layout pass.
func (v *View) Layout() layout.Result {
	return v.result
}

// ContentSize returns the content size of the last layout pass.
func (v *View) ContentSize() layout.Size {
	return v.result.ContentSize
}

// Chips returns the configured chips of the last pass in tag order. Chips
// are recycled by the next pass.
func (v *View) Chips() []*Chip {
	return slices.Clone(v.chips)
}

// ============================================================================
// Settings
// ============================================================================

// Width returns the container width.
func (v *View) Width() float32 {
	return v.width
}

// SetWidth changes the container width, as when the host resizes the View.
func (v *View) SetWidth(width float32) {
	v.width = width
	v.update()
}

// Configuration returns the chip style used by the last pass, with
// classes applied and negative sizes clamped.
func (v *View) Configuration() Configuration {
	return v.config
}

// Container returns the container options used by the last pass.
func (v *View) Container() ContainerOptions {
	return v.effective
}

// Classes returns the utility classes applied over the configuration.
func (v *View) Classes() string {
	return v.classes
}

// SetConfiguration replaces the chip style.
func (v *View) SetConfiguration(cfg Configuration) {
	v.base = cfg
	v.invalidateMeasurements()
	v.update()
}

// UpdateConfiguration edits the chip style in place.
//
//	v.UpdateConfiguration(func(c *hashtags.Configuration) {
//		c.PaddingLeft = 12
//	})
func (v *View) UpdateConfiguration(fn func(*Configuration)) {
	fn(&v.base)
	v.invalidateMeasurements()
	v.update()
}

// SetClasses replaces the utility classes.
func (v *View) SetClasses(classes string) {
	v.classes = classes
	v.invalidateMeasurements()
	v.update()
}

// SetContainerPadding changes the container padding.
func (v *View) SetContainerPadding(padding layout.Insets) {
	v.container.Padding = padding
	v.update()
}

// SetSpacing changes the gaps between chips and rows.
func (v *View) SetSpacing(horizontal, vertical float32) {
	v.container.HorizontalSpacing = horizontal
	v.container.VerticalSpacing = vertical
	v.update()
}

// SetCornerRadius changes the container corner radius.
func (v *View) SetCornerRadius(radius float32) {
	v.container.CornerRadius = radius
	v.update()
}

// Delegate returns the current delegate.
func (v *View) Delegate() Delegate {
	return v.delegate
}

// SetDelegate replaces the delegate. The remembered height is dropped so
// the new delegate hears the current size right away.
func (v *View) SetDelegate(d Delegate) {
	v.delegate = d
	v.hasLastHeight = false
	v.update()
}

// SetMeasurer replaces the text measurer. Nil restores the default.
func (v *View) SetMeasurer(m measure.Measurer) {
	v.invalidateMeasurements()
	if m == nil {
		m = measure.NewCache(measure.DefaultFace(), 0)
	}
	v.measurer = m
	v.update()
}

// Measurer returns the text measurer.
func (v *View) Measurer() measure.Measurer {
	return v.measurer
}

func (v *View) invalidateMeasurements() {
	if c, ok := v.measurer.(interface{ Clear() }); ok {
		c.Clear()
	}
}
