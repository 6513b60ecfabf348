package hashtags

import "github.com/agiangrant/hashtags/internal/debug"

// ChipAt returns the chip under the point, in View coordinates, or nil.
func (v *View) ChipAt(x, y float32) *Chip {
	// Last chip is drawn on top
	for i := len(v.chips) - 1; i >= 0; i-- {
		if c := v.chips[i]; c.Frame.Contains(x, y) {
			return c
		}
	}
	return nil
}

// HandleTap dispatches a tap at the point, in View coordinates. A tap on
// the remove button of a removable chip removes its tag; a tap anywhere
// else on a chip goes to the delegate's OnTagTapped when it implements
// TapDelegate. It reports whether a chip was hit.
func (v *View) HandleTap(x, y float32) bool {
	c := v.ChipAt(x, y)
	if c == nil {
		return false
	}

	if c.Kind == KindRemovable && c.RemoveFrame.Contains(x, y) {
		return c.ActivateRemove()
	}

	debug.Logf("view: tapped %s", c.Tag)
	if td, ok := v.delegate.(TapDelegate); ok {
		td.OnTagTapped(c.Tag)
	}
	return true
}
