package tw

// StyleProperties holds the chip and container values a class string can set.
// Nil fields were not set by any class.
type StyleProperties struct {
	// Colors (RGBA, 0xRRGGBBAA)
	TextColor       *uint32
	GoldTextColor   *uint32 // set through the gold: variant
	BackgroundColor *uint32

	// Typography
	FontFamily *string // "sans", "bold", "mono" or a family from the theme
	FontSize   *float32

	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32
	GapX          *float32 // horizontal spacing between chips
	GapY          *float32 // vertical spacing between rows

	// Borders
	BorderRadius *float32

	// Remove affordance
	RemoveSize    *float32
	RemoveSpacing *float32
}

// FontFamilyConfig represents a font family configuration.
// Value is either a built-in family name or a file path to a bundled font.
type FontFamilyConfig struct {
	Value     string // Built-in family name or file path
	IsBundled bool   // true if Value is a file path
}

// ThemeConfig holds the consumer's theme configuration.
// This is registered via SetConfig() at startup.
type ThemeConfig struct {
	// ClassMap replaces the generated utility map when non-nil.
	ClassMap map[string]StyleProperties

	// Aliases expand a custom class name into a class string,
	// e.g. "chip-brand" -> "bg-[#1da1f2] text-white px-3".
	Aliases map[string]string

	Fonts       map[string]FontFamilyConfig
	Breakpoints BreakpointConfig
}

// registeredConfig holds the consumer's theme configuration.
// If nil, falls back to framework defaults (from generated.go).
var registeredConfig *ThemeConfig

// SetConfig registers the consumer's theme configuration.
// This should be called at startup before any parsing occurs.
func SetConfig(config ThemeConfig) {
	registeredConfig = &config
}

// ResetConfig drops any registered configuration.
func ResetConfig() {
	registeredConfig = nil
}

// GetClassMap returns the registered ClassMap or falls back to the framework default.
func GetClassMap() map[string]StyleProperties {
	return registeredConfig.classMap()
}

// GetAliases returns the registered class aliases, if any.
func GetAliases() map[string]string {
	return registeredConfig.aliases()
}

// GetFonts returns the registered fonts or falls back to the framework default.
func GetFonts() map[string]FontFamilyConfig {
	if registeredConfig != nil && registeredConfig.Fonts != nil {
		return registeredConfig.Fonts
	}
	return ThemeFonts()
}

// GetBreakpoints returns the registered breakpoints or falls back to the
// framework default. Unset thresholds take their default value.
func GetBreakpoints() BreakpointConfig {
	return registeredConfig.breakpoints()
}

// A nil *ThemeConfig resolves to the framework defaults.

func (c *ThemeConfig) classMap() map[string]StyleProperties {
	if c != nil && c.ClassMap != nil {
		return c.ClassMap
	}
	return ClassMap
}

func (c *ThemeConfig) aliases() map[string]string {
	if c != nil {
		return c.Aliases
	}
	return nil
}

func (c *ThemeConfig) breakpoints() BreakpointConfig {
	if c != nil {
		return c.Breakpoints.WithDefaults()
	}
	return ThemeBreakpoints()
}

// Merge copies the set values of p into s. Later values override earlier ones
// (last class wins).
func (s *StyleProperties) Merge(p StyleProperties) {
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.GoldTextColor != nil {
		s.GoldTextColor = p.GoldTextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.FontFamily != nil {
		s.FontFamily = p.FontFamily
	}
	if p.FontSize != nil {
		s.FontSize = p.FontSize
	}
	if p.PaddingTop != nil {
		s.PaddingTop = p.PaddingTop
	}
	if p.PaddingRight != nil {
		s.PaddingRight = p.PaddingRight
	}
	if p.PaddingBottom != nil {
		s.PaddingBottom = p.PaddingBottom
	}
	if p.PaddingLeft != nil {
		s.PaddingLeft = p.PaddingLeft
	}
	if p.GapX != nil {
		s.GapX = p.GapX
	}
	if p.GapY != nil {
		s.GapY = p.GapY
	}
	if p.BorderRadius != nil {
		s.BorderRadius = p.BorderRadius
	}
	if p.RemoveSize != nil {
		s.RemoveSize = p.RemoveSize
	}
	if p.RemoveSpacing != nil {
		s.RemoveSpacing = p.RemoveSpacing
	}
}

// IsEmpty reports whether no property is set.
func (s StyleProperties) IsEmpty() bool {
	return s == StyleProperties{}
}
