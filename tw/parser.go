package tw

import (
	"fmt"
	"strings"
)

// Breakpoint represents responsive breakpoint
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM               // ≥640px
	BreakpointMD               // ≥768px
	BreakpointLG               // ≥1024px
	BreakpointXL               // ≥1280px
	Breakpoint2XL              // ≥1536px
)

// ComputedStyles represents styles organized by breakpoint
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// Responsive variants, applied when the container is at least that wide
	SM  StyleProperties
	MD  StyleProperties
	LG  StyleProperties
	XL  StyleProperties
	XXL StyleProperties
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Breakpoint     Breakpoint
	Gold           bool
	Unsupported    bool // carries a variant chips have no state for, e.g. hover:
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like px-[14px]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "px", "bg", "text", "rounded"
	Value    string // e.g., "14px", "#1da1f2", "15px"
}

// maxAliasDepth bounds alias expansion so a cycle cannot recurse forever.
const maxAliasDepth = 8

// ParseClasses parses a class string and returns computed styles.
// Example: "px-3 py-1 rounded-full bg-gray-400 text-white gold:text-amber-300 md:px-4"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles
	parseInto(&computed, registeredConfig, classStr, BreakpointBase, 0)
	return computed
}

// ParseClassesWith parses classStr using the class map and aliases of cfg
// instead of the registered configuration.
func ParseClassesWith(classStr string, cfg ThemeConfig) ComputedStyles {
	var computed ComputedStyles
	parseInto(&computed, &cfg, classStr, BreakpointBase, 0)
	return computed
}

func parseInto(computed *ComputedStyles, cfg *ThemeConfig, classStr string, outer Breakpoint, depth int) {
	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Unsupported {
			continue
		}
		if parsed.Breakpoint == BreakpointBase {
			parsed.Breakpoint = outer
		}

		// Custom aliases expand in place, inheriting the breakpoint
		if parsed.ArbitraryValue == nil && depth < maxAliasDepth {
			if expansion, ok := cfg.aliases()[parsed.BaseClass]; ok {
				parseInto(computed, cfg, expansion, parsed.Breakpoint, depth+1)
				continue
			}
		}

		var partial StyleProperties
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			var ok bool
			partial, ok = cfg.classMap()[parsed.BaseClass]
			if !ok {
				// Unknown class, silently ignore (like Tailwind CSS)
				continue
			}
		}

		if parsed.Gold {
			// gold: only recolors text of gold tags
			partial = StyleProperties{GoldTextColor: partial.TextColor}
		}

		target := getTargetProperties(computed, parsed.Breakpoint)
		target.Merge(partial)
	}
}

// parseClass splits a class into variant modifiers and base utility
// "md:gold:text-amber-300" → ParsedClass{Breakpoint: MD, Gold: true, BaseClass: "text-amber-300"}
// "px-[14px]" → ParsedClass{ArbitraryValue: {Property: "px", Value: "14px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		BaseClass:  parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "gold":
			pc.Gold = true
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		default:
			pc.Unsupported = true
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "px-[14px]" → ArbitraryValue{Property: "px", Value: "14px"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// parseArbitraryValue converts arbitrary value to StyleProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) StyleProperties {
	var partial StyleProperties

	switch arb.Property {
	// Padding
	case "p":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingTop = val
			partial.PaddingRight = val
			partial.PaddingBottom = val
			partial.PaddingLeft = val
		}
	case "px":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingLeft = val
			partial.PaddingRight = val
		}
	case "py":
		if val := parseDimension(arb.Value); val != nil {
			partial.PaddingTop = val
			partial.PaddingBottom = val
		}
	case "pt":
		partial.PaddingTop = parseDimension(arb.Value)
	case "pr":
		partial.PaddingRight = parseDimension(arb.Value)
	case "pb":
		partial.PaddingBottom = parseDimension(arb.Value)
	case "pl":
		partial.PaddingLeft = parseDimension(arb.Value)

	// Gap
	case "gap":
		if val := parseDimension(arb.Value); val != nil {
			partial.GapX = val
			partial.GapY = val
		}
	case "gap-x":
		partial.GapX = parseDimension(arb.Value)
	case "gap-y":
		partial.GapY = parseDimension(arb.Value)

	// Colors
	case "bg":
		partial.BackgroundColor = parseColor(arb.Value)
	case "text":
		// text-[#fff] is a color, text-[15px] a font size
		if color := parseColor(arb.Value); color != nil {
			partial.TextColor = color
		} else {
			partial.FontSize = parseDimension(arb.Value)
		}

	// Typography
	case "font":
		if v := strings.TrimSpace(arb.Value); v != "" {
			partial.FontFamily = strPtr(v)
		}

	// Border radius
	case "rounded":
		partial.BorderRadius = parseDimension(arb.Value)

	// Remove affordance
	case "remove":
		partial.RemoveSize = parseDimension(arb.Value)
	case "remove-gap":
		partial.RemoveSpacing = parseDimension(arb.Value)
	}

	return partial
}

// parseDimension parses CSS dimension values (px, rem, em or a plain number)
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	numStr := value
	var multiplier float32 = 1.0
	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0 // approximate
	}

	var num float32
	if _, err := fmt.Sscanf(numStr, "%f", &num); err == nil {
		result := num * multiplier
		return &result
	}
	return nil
}

// parseColor parses #RGB, #RRGGBB and #RRGGBBAA colors into RGBA.
func parseColor(value string) *uint32 {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	var r, g, b, a uint32
	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil
		}
		a = 0xFF
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return nil
		}
	default:
		return nil
	}

	color := (r << 24) | (g << 16) | (b << 8) | a
	return &color
}

// ParseColor parses a hex color ("#1da1f2", "#fff", "#00000080") or a
// palette name ("gray-400", "white") into RGBA.
func ParseColor(value string) (uint32, bool) {
	if c := parseColor(value); c != nil {
		return *c, true
	}
	if c, ok := themeColors[strings.TrimSpace(value)]; ok {
		return c, true
	}
	return 0, false
}

func strPtr(s string) *string {
	return &s
}

func f32Ptr(v float32) *float32 {
	return &v
}

func u32Ptr(v uint32) *uint32 {
	return &v
}

// getTargetProperties returns the appropriate StyleProperties to apply to
func getTargetProperties(computed *ComputedStyles, bp Breakpoint) *StyleProperties {
	switch bp {
	case BreakpointSM:
		return &computed.SM
	case BreakpointMD:
		return &computed.MD
	case BreakpointLG:
		return &computed.LG
	case BreakpointXL:
		return &computed.XL
	case Breakpoint2XL:
		return &computed.XXL
	default:
		return &computed.Base
	}
}
