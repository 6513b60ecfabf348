package hashtags

import "github.com/agiangrant/hashtags/layout"

// Delegate receives the View's notifications. All calls happen
// synchronously inside the View method that caused them.
type Delegate interface {
	// OnTagRemoved is called after a chip's remove button removed tag
	// and the View finished laying out again.
	OnTagRemoved(tag Tag)

	// OnShouldResize is called when the content height changed. The host
	// is expected to update its own constraints.
	OnShouldResize(size layout.Size)
}

// TapDelegate is optionally implemented by a Delegate that wants to hear
// about taps on chips.
type TapDelegate interface {
	OnTagTapped(tag Tag)
}

// DelegateFuncs adapts plain functions to Delegate and TapDelegate.
// Nil functions are skipped.
type DelegateFuncs struct {
	TagRemoved   func(Tag)
	TagTapped    func(Tag)
	ShouldResize func(layout.Size)
}

var (
	_ Delegate    = DelegateFuncs{}
	_ TapDelegate = DelegateFuncs{}
)

func (d DelegateFuncs) OnTagRemoved(tag Tag) {
	if d.TagRemoved != nil {
		d.TagRemoved(tag)
	}
}

func (d DelegateFuncs) OnTagTapped(tag Tag) {
	if d.TagTapped != nil {
		d.TagTapped(tag)
	}
}

func (d DelegateFuncs) OnShouldResize(size layout.Size) {
	if d.ShouldResize != nil {
		d.ShouldResize(size)
	}
}
