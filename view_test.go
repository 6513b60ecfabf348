package hashtags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
)

// cells are 10 wide and lines 20 tall, so a default chip is 17+10n wide
// and 36 tall.
var mono = measure.Monospace{CellWidth: 10, LineHeight: 20}

type event struct {
	kind string
	tag  Tag
	size layout.Size
}

type recorder struct {
	events    []event
	onRemoved func(Tag)
}

func (r *recorder) OnTagRemoved(tag Tag) {
	r.events = append(r.events, event{kind: "removed", tag: tag})
	if r.onRemoved != nil {
		r.onRemoved(tag)
	}
}

func (r *recorder) OnTagTapped(tag Tag) {
	r.events = append(r.events, event{kind: "tapped", tag: tag})
}

func (r *recorder) OnShouldResize(size layout.Size) {
	r.events = append(r.events, event{kind: "resize", size: size})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, e := range r.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// removeOnly implements Delegate without TapDelegate.
type removeOnly struct{ removed []Tag }

func (d *removeOnly) OnTagRemoved(tag Tag) { d.removed = append(d.removed, tag) }
func (d *removeOnly) OnShouldResize(layout.Size) {}

func newTestView(t *testing.T, opts ...Option) (*View, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithWidth(200), WithMeasurer(mono), WithDelegate(rec)}, opts...)
	return New(opts...), rec
}

func TestSizeOf(t *testing.T) {
	cfg := DefaultConfiguration()

	tests := []struct {
		name      string
		tag       Tag
		available float32
		want      layout.Size
	}{
		{"plain", NewTag("abc"), 200, layout.Size{Width: 47, Height: 36}},
		{"removable adds button and spacing", NewTag("abc").WithRemovable(true), 200, layout.Size{Width: 75, Height: 36}},
		{"gold does not change size", NewTag("abc").WithGold(true), 200, layout.Size{Width: 47, Height: 36}},
		{"exactly available is not clamped", NewTag("abc"), 47, layout.Size{Width: 47, Height: 36}},
		{"unbounded", NewTag("hello world again"), 0, layout.Size{Width: 187, Height: 36}},
		// clamped to 140, wrapped as "hello world" / "again"
		{"oversized wraps", NewTag("hello world again"), 140, layout.Size{Width: 140, Height: 56}},
		{"empty text keeps a line", NewTag(""), 200, layout.Size{Width: 17, Height: 36}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeOf(tt.tag, cfg, mono, tt.available)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SizeOf() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSizeOfNegativeConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.PaddingLeft = -50
	cfg.PaddingTop = -50
	cfg.RemoveButtonSize = -20

	got := SizeOf(NewTag("abc").WithRemovable(true), cfg, mono, 200)
	assert.Equal(t, layout.Size{Width: 8 + 30 + 1 + 8, Height: 28}, got)
}

func TestOrderPreservation(t *testing.T) {
	a, b, c := NewTag("a"), NewTag("b").WithGold(true), NewTag("c").WithRemovable(true)

	one, _ := newTestView(t)
	one.AddTag(a)
	one.AddTag(b)
	one.AddTag(c)

	many, _ := newTestView(t)
	many.AddTags(a, b, c)

	assert.Equal(t, []Tag{a, b, c}, one.Tags())
	assert.Equal(t, one.Tags(), many.Tags())
	assert.Equal(t, one.Layout(), many.Layout())
}

func TestTagsReturnsCopy(t *testing.T) {
	v, _ := newTestView(t)
	v.AddTag(NewTag("a"))

	tags := v.Tags()
	tags[0] = NewTag("changed")
	assert.Equal(t, []Tag{NewTag("a")}, v.Tags())
}

func TestRemoveTag(t *testing.T) {
	a, b := NewTag("a"), NewTag("b")
	v, _ := newTestView(t)
	v.AddTags(a, b, a)

	v.RemoveTag(a)
	assert.Equal(t, []Tag{b, a}, v.Tags(), "removes the first equal tag only")

	v.RemoveTag(NewTag("a").WithGold(true))
	assert.Equal(t, []Tag{b, a}, v.Tags(), "flags take part in equality")

	v.RemoveTags()
	assert.Empty(t, v.Tags())
	assert.Empty(t, v.Chips())
}

func TestNoOpRemovalIsIdempotent(t *testing.T) {
	v, rec := newTestView(t)
	v.AddTags(NewTag("a"), NewTag("b"))
	before := v.Tags()
	events := len(rec.events)

	v.RemoveTag(NewTag("missing"))
	v.RemoveTag(NewTag("missing"))

	assert.Equal(t, before, v.Tags())
	assert.Len(t, rec.events, events, "no resize for an unchanged height")
}

func TestResizeNotification(t *testing.T) {
	// width 200, available 190; "aa" chips are 37 wide, four fit on a row
	v, rec := newTestView(t)
	aa := NewTag("aa")

	v.AddTag(aa)
	require.Equal(t, []event{{kind: "resize", size: layout.Size{Width: 37, Height: 56}}}, rec.events)

	v.AddTag(aa)
	v.AddTag(aa)
	v.AddTag(aa)
	require.Len(t, rec.events, 1, "chips on the same row keep the height")
	require.Len(t, v.Layout().Rows, 1)

	v.AddTag(aa)
	require.Len(t, v.Layout().Rows, 2)
	require.Len(t, rec.events, 2)
	assert.Equal(t, event{kind: "resize", size: layout.Size{Width: 178, Height: 102}}, rec.events[1])

	v.RemoveTag(aa)
	require.Len(t, rec.events, 3, "back to one row")
	assert.Equal(t, float32(56), rec.events[2].size.Height)
}

func TestResizeWithoutDelegate(t *testing.T) {
	v := New(WithWidth(200), WithMeasurer(mono))
	assert.NotPanics(t, func() {
		v.AddTag(NewTag("a"))
		v.RemoveTags()
	})

	// The height is remembered without a delegate; attaching one reports
	// the current size at once.
	rec := &recorder{}
	v.SetDelegate(rec)
	assert.Equal(t, 1, rec.count("resize"))
	v.NotifyIfResized()
	assert.Equal(t, 1, rec.count("resize"))
}

func TestWrappingThreshold(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		sameLine bool
	}{
		// 107 + 10 + 87 = 204 > 190
		{"overflow", "aaaaaaaaa", "bbbbbbb", false},
		// 107 + 10 + 77 = 194 > 190
		{"overflow by spacing", "aaaaaaaaa", "bbbbbb", false},
		// 107 + 10 + 67 = 184 <= 190
		{"fits", "aaaaaaaaa", "bbbbb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestView(t)
			v.AddTags(NewTag(tt.first), NewTag(tt.second))

			res := v.Layout()
			assert.Equal(t, tt.sameLine, res.RowOf(0) == res.RowOf(1))
		})
	}
}

func TestOversizedChipDegrades(t *testing.T) {
	// width 150, available 140
	v, _ := newTestView(t, WithWidth(150))
	v.AddTags(NewTag("x"), NewTag("hello world again"))

	want := []layout.Rect{
		{X: 0, Y: 10, Width: 27, Height: 36},
		{X: 0, Y: 56, Width: 140, Height: 56},
	}
	if diff := cmp.Diff(want, v.Layout().Frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, v.Layout().Rows[1].Len())
}

func TestPreferredSize(t *testing.T) {
	v, _ := newTestView(t)
	assert.Equal(t, layout.Size{Width: 100, Height: 44}, v.PreferredSize(), "empty uses fallback")

	v.AddTag(NewTag("aa"))
	// content 37x56 plus padding (0+10, 10+10)
	assert.Equal(t, layout.Size{Width: 47, Height: 76}, v.PreferredSize())

	v.RemoveTags()
	assert.Equal(t, layout.Size{Width: 100, Height: 44}, v.PreferredSize())

	custom := New(WithMeasurer(mono), WithFallbackSize(layout.Size{Width: 10, Height: 20}))
	assert.Equal(t, layout.Size{Width: 10, Height: 20}, custom.PreferredSize())
}

func TestRemovableRoundTrip(t *testing.T) {
	tag := NewTag("abc").WithRemovable(true)
	v, rec := newTestView(t)
	v.AddTags(NewTag("keep"), tag)

	rec.events = nil
	rec.onRemoved = func(removed Tag) {
		// the View already removed the tag and laid out again
		assert.NotContains(t, v.Tags(), removed)
		assert.Len(t, v.Chips(), 1)
	}

	chips := v.Chips()
	require.Len(t, chips, 2)
	require.Equal(t, KindRemovable, chips[1].Kind)
	require.True(t, chips[1].ActivateRemove())

	assert.Equal(t, []Tag{NewTag("keep")}, v.Tags())
	assert.Equal(t, 1, rec.count("removed"))
	assert.Equal(t, tag, rec.events[len(rec.events)-1].tag)
}

func TestActivateRemoveOnPlainOrReleasedChip(t *testing.T) {
	v, rec := newTestView(t)
	v.AddTags(NewTag("plain"), NewTag("gone").WithRemovable(true))
	chips := v.Chips()

	assert.False(t, chips[0].ActivateRemove())

	v.RemoveTags()
	assert.False(t, chips[1].ActivateRemove(), "released chips have no owner")
	assert.Zero(t, rec.count("removed"))
}

func TestHandleTap(t *testing.T) {
	// removable "abc" at (0,10) 75x36; remove button at (47,18) 20x20
	tag := NewTag("abc").WithRemovable(true)
	plain := NewTag("zz")

	v, rec := newTestView(t)
	v.AddTags(tag, plain)
	rec.events = nil

	chip := v.Chips()[0]
	assert.Equal(t, layout.Rect{X: 8, Y: 18, Width: 31, Height: 20}, chip.TextFrame)
	assert.Equal(t, layout.Rect{X: 47, Y: 18, Width: 20, Height: 20}, chip.RemoveFrame)

	assert.False(t, v.HandleTap(500, 500), "miss")
	assert.Empty(t, rec.events)

	assert.True(t, v.HandleTap(10, 25))
	assert.Equal(t, []event{{kind: "tapped", tag: tag}}, rec.events)
	assert.Len(t, v.Tags(), 2, "taps do not mutate")

	assert.True(t, v.HandleTap(50, 25))
	assert.Equal(t, []Tag{plain}, v.Tags())
	assert.Equal(t, 1, rec.count("removed"))
}

func TestHandleTapWithoutTapDelegate(t *testing.T) {
	d := &removeOnly{}
	v := New(WithWidth(200), WithMeasurer(mono), WithDelegate(d))
	v.AddTag(NewTag("abc").WithRemovable(true))

	assert.True(t, v.HandleTap(10, 25))
	assert.Empty(t, d.removed)

	assert.True(t, v.HandleTap(50, 25))
	assert.Equal(t, []Tag{NewTag("abc").WithRemovable(true)}, d.removed)
	assert.Empty(t, v.Tags())
}

func TestConfigurationChangeRelayouts(t *testing.T) {
	v, rec := newTestView(t)
	v.AddTag(NewTag("aa"))
	require.Equal(t, float32(37), v.Layout().Frames[0].Width)

	v.UpdateConfiguration(func(c *Configuration) {
		c.PaddingLeft = 20
	})
	assert.Equal(t, float32(49), v.Layout().Frames[0].Width)
	assert.Equal(t, float32(20), v.Chips()[0].TextFrame.X)

	v.UpdateConfiguration(func(c *Configuration) {
		c.PaddingTop = 18
	})
	assert.Equal(t, float32(46), v.Layout().Frames[0].Height)
	assert.Equal(t, 2, rec.count("resize"), "taller chip reports a resize")

	cfg := DefaultConfiguration()
	cfg.TextColor = Yellow
	v.SetConfiguration(cfg)
	assert.Equal(t, float32(37), v.Layout().Frames[0].Width)
	assert.Equal(t, Yellow, v.Chips()[0].Appearance.TextColor)
}

func TestContainerSetters(t *testing.T) {
	v, _ := newTestView(t)
	v.AddTags(NewTag("aa"), NewTag("aa"))

	v.SetSpacing(0, 0)
	assert.Equal(t, float32(37), v.Layout().Frames[1].X)

	v.SetContainerPadding(layout.InsetsAll(5))
	assert.Equal(t, layout.Rect{X: 5, Y: 5, Width: 37, Height: 36}, v.Layout().Frames[0])

	v.SetCornerRadius(9)
	assert.Equal(t, float32(9), v.Container().CornerRadius)

	// 60 wide leaves 50: one chip per row
	v.SetWidth(60)
	assert.Len(t, v.Layout().Rows, 2)
}

func TestChipReuseOverwritesState(t *testing.T) {
	v, _ := newTestView(t)
	v.AddTag(NewTag("gold").WithGold(true))
	first := v.Chips()[0]
	require.Equal(t, Yellow, first.Appearance.TextColor)

	v.RemoveTags()
	v.AddTag(NewTag("plain"))
	second := v.Chips()[0]

	assert.Same(t, first, second, "chip is recycled")
	assert.Equal(t, White, second.Appearance.TextColor)
	assert.Equal(t, NewTag("plain"), second.Tag)
	assert.True(t, second.RemoveFrame.Size().IsZero())
	assert.Equal(t, 1, v.pool.made)
}

func TestChipPoolKeyedByKind(t *testing.T) {
	v, _ := newTestView(t)
	v.AddTags(NewTag("a"), NewTag("b").WithRemovable(true))
	v.RemoveTags()
	v.AddTags(NewTag("b").WithRemovable(true), NewTag("a"))

	chips := v.Chips()
	assert.Equal(t, KindRemovable, chips[0].Kind)
	assert.Equal(t, KindPlain, chips[1].Kind)
	assert.Equal(t, 2, v.pool.made)
}

func TestAppearance(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.TagCornerRadius = 100

	a := appearanceFor(NewTag("x").WithGold(true).WithRemovable(true), cfg, layout.Rect{Width: 40, Height: 30})
	assert.Equal(t, float32(15), a.CornerRadius, "radius clamps to half the height")
	assert.Equal(t, cfg.GoldTextColor, a.TextColor)
	assert.Equal(t, float32(20), a.RemoveButtonSize)
	assert.Equal(t, measure.Font{Family: "sans", Size: 13}, a.Font)

	plain := appearanceFor(NewTag("x"), DefaultConfiguration(), layout.Rect{Width: 40, Height: 30})
	assert.Equal(t, float32(12), plain.CornerRadius)
	assert.Zero(t, plain.RemoveButtonSize)
}

func TestWithClasses(t *testing.T) {
	v, _ := newTestView(t, WithClasses("px-2 md:px-4 gap-x-1 bg-blue-500 gold:text-amber-300"))
	v.AddTag(NewTag("aa"))

	assert.Equal(t, float32(8), v.Configuration().PaddingLeft, "200 wide is below md")
	assert.Equal(t, float32(4), v.Container().HorizontalSpacing)

	v.SetWidth(800)
	assert.Equal(t, float32(16), v.Configuration().PaddingLeft)
	assert.Equal(t, uint8(0x3b), v.Configuration().BackgroundColor.R)
	assert.Equal(t, uint8(0xfc), v.Configuration().GoldTextColor.R)
}

func TestTagValidate(t *testing.T) {
	assert.NoError(t, NewTag("go").Validate())
	assert.ErrorIs(t, NewTag("  ").Validate(), ErrEmptyTag)
	assert.Equal(t, "#go", NewTag("go").String())
}

func TestConfigurationSanitized(t *testing.T) {
	cfg := Configuration{PaddingLeft: -1, TagCornerRadius: -3, Font: measure.Font{Size: -2}, TextSize: 11}
	s := cfg.Sanitized()
	assert.Zero(t, s.PaddingLeft)
	assert.Zero(t, s.TagCornerRadius)
	assert.Equal(t, measure.Font{Family: "sans", Size: 11}, s.TextFont(), "TextSize stands in for a missing font size")
}

func TestDelegateFuncs(t *testing.T) {
	var resized []layout.Size
	d := DelegateFuncs{ShouldResize: func(s layout.Size) { resized = append(resized, s) }}
	v := New(WithWidth(200), WithMeasurer(mono), WithDelegate(d))
	v.AddTag(NewTag("a").WithRemovable(true))

	assert.NotPanics(t, func() {
		v.HandleTap(5, 20)
		v.Chips()[0].ActivateRemove()
	})
	assert.Len(t, resized, 2)
}
