package tw

// BreakpointConfig holds the width thresholds for responsive breakpoints.
// Styles apply at the breakpoint width and above. For chips the width is the
// container width, not the window.
type BreakpointConfig struct {
	SM  float32 `toml:"sm" yaml:"sm"`
	MD  float32 `toml:"md" yaml:"md"`
	LG  float32 `toml:"lg" yaml:"lg"`
	XL  float32 `toml:"xl" yaml:"xl"`
	XXL float32 `toml:"2xl" yaml:"2xl"`
}

// DefaultBreakpoints returns the standard Tailwind CSS breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// WithDefaults returns c with every unset (zero or negative) threshold
// taken from the generated theme, so a partial table such as {MD: 900}
// keeps the other breakpoints where they were.
func (c BreakpointConfig) WithDefaults() BreakpointConfig {
	def := ThemeBreakpoints()
	fill := func(v *float32, d float32) {
		if *v <= 0 {
			*v = d
		}
	}
	fill(&c.SM, def.SM)
	fill(&c.MD, def.MD)
	fill(&c.LG, def.LG)
	fill(&c.XL, def.XL)
	fill(&c.XXL, def.XXL)
	return c
}

// ActiveBreakpoint returns which breakpoint is currently active for a given width.
// Returns the highest breakpoint that the width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	switch {
	case width >= c.XXL:
		return Breakpoint2XL
	case width >= c.XL:
		return BreakpointXL
	case width >= c.LG:
		return BreakpointLG
	case width >= c.MD:
		return BreakpointMD
	case width >= c.SM:
		return BreakpointSM
	}
	return BreakpointBase
}

// ResolveForWidth merges styles from base up through the active breakpoint.
// This implements Tailwind's mobile-first cascade: base → sm → md → lg → xl → 2xl
// Only properties that are explicitly set at each level override previous values.
// A non-positive width resolves to base styles only.
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) StyleProperties {
	result := cs.Base
	if width <= 0 {
		return result
	}

	levels := []struct {
		min   float32
		props *StyleProperties
	}{
		{config.SM, &cs.SM},
		{config.MD, &cs.MD},
		{config.LG, &cs.LG},
		{config.XL, &cs.XL},
		{config.XXL, &cs.XXL},
	}
	for _, level := range levels {
		if width >= level.min {
			result.Merge(*level.props)
		}
	}

	return result
}

// Resolve parses classes and resolves them for width using the registered breakpoints.
func Resolve(classes string, width float32) StyleProperties {
	cs := ParseClasses(classes)
	return cs.ResolveForWidth(width, GetBreakpoints())
}

// ResolveWith is Resolve against cfg instead of the registered
// configuration. Use it when several themes are in play at once.
func ResolveWith(classes string, width float32, cfg ThemeConfig) StyleProperties {
	cs := ParseClassesWith(classes, cfg)
	return cs.ResolveForWidth(width, cfg.breakpoints())
}
