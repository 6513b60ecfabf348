package tw

import (
	"image/color"
	"sort"
)

// ClassMap maps every built-in utility class to the properties it sets.
// It is derived from the theme tables in generated.go.
var ClassMap = buildClassMap()

func buildClassMap() map[string]StyleProperties {
	m := make(map[string]StyleProperties, 1024)

	for key, px := range themeSpacing {
		v := px
		m["p-"+key] = StyleProperties{PaddingTop: &v, PaddingRight: &v, PaddingBottom: &v, PaddingLeft: &v}
		m["px-"+key] = StyleProperties{PaddingLeft: &v, PaddingRight: &v}
		m["py-"+key] = StyleProperties{PaddingTop: &v, PaddingBottom: &v}
		m["pt-"+key] = StyleProperties{PaddingTop: &v}
		m["pr-"+key] = StyleProperties{PaddingRight: &v}
		m["pb-"+key] = StyleProperties{PaddingBottom: &v}
		m["pl-"+key] = StyleProperties{PaddingLeft: &v}
		m["gap-"+key] = StyleProperties{GapX: &v, GapY: &v}
		m["gap-x-"+key] = StyleProperties{GapX: &v}
		m["gap-y-"+key] = StyleProperties{GapY: &v}
		m["remove-"+key] = StyleProperties{RemoveSize: &v}
		m["remove-gap-"+key] = StyleProperties{RemoveSpacing: &v}
	}

	for key, px := range themeRadius {
		v := px
		name := "rounded"
		if key != "DEFAULT" {
			name += "-" + key
		}
		m[name] = StyleProperties{BorderRadius: &v}
	}

	for key, rgba := range themeColors {
		c := rgba
		m["bg-"+key] = StyleProperties{BackgroundColor: &c}
		m["text-"+key] = StyleProperties{TextColor: &c}
	}

	// Font sizes share the text- prefix with colors; sizes are registered
	// last so a theme that names a color "lg" cannot shadow text-lg.
	for key, px := range themeFontSizes {
		v := px
		m["text-"+key] = StyleProperties{FontSize: &v}
	}

	for family := range ThemeFonts() {
		m["font-"+family] = StyleProperties{FontFamily: strPtr(family)}
	}

	return m
}

// ToRGBA converts a packed 0xRRGGBBAA value to color.RGBA.
func ToRGBA(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// FromRGBA packs a color.RGBA into 0xRRGGBBAA.
func FromRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// ColorNames returns the palette names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(themeColors))
	for name := range themeColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
