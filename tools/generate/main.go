// Command generate writes tw/generated.go from a theme.toml.
//
//	go run ./tools/generate -theme tw/theme.toml -out tw/generated.go
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ThemeFile represents the theme.toml layout
type ThemeFile struct {
	Breakpoints map[string]float32     `toml:"breakpoints"`
	Spacing     map[string]float32     `toml:"spacing"`
	Radius      map[string]float32     `toml:"radius"`
	FontSize    map[string]float32     `toml:"font_size"`
	Fonts       map[string]string      `toml:"fonts"`
	Colors      map[string]interface{} `toml:"colors"` // "name" = "#hex" or [colors.name] shade tables
}

func main() {
	themePath := flag.String("theme", "theme.toml", "theme file to read")
	outPath := flag.String("out", "generated.go", "Go file to write")
	flag.Parse()

	if err := run(*themePath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(themePath, outPath string) error {
	data, err := os.ReadFile(themePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", themePath, err)
	}

	var theme ThemeFile
	if err := toml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("failed to parse %s: %w", themePath, err)
	}

	colors, err := flattenColors(theme.Colors)
	if err != nil {
		return err
	}

	code, err := generateGoCode(theme, colors)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("✓ Generated %s\n", outPath)
	return nil
}

// flattenColors turns {gray = {100 = "#..."}} into {"gray-100": 0x...ff}.
func flattenColors(raw map[string]interface{}) (map[string]uint32, error) {
	out := make(map[string]uint32)
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			c, err := hexToU32(v)
			if err != nil {
				return nil, fmt.Errorf("color %s: %w", name, err)
			}
			out[name] = c
		case map[string]interface{}:
			for shade, hex := range v {
				s, ok := hex.(string)
				if !ok {
					return nil, fmt.Errorf("color %s-%s: expected a hex string", name, shade)
				}
				c, err := hexToU32(s)
				if err != nil {
					return nil, fmt.Errorf("color %s-%s: %w", name, shade, err)
				}
				out[name+"-"+shade] = c
			}
		default:
			return nil, fmt.Errorf("color %s: unsupported value %T", name, value)
		}
	}
	return out, nil
}

// hexToU32 converts #RRGGBB or #RRGGBBAA to a uint32 RGBA value
func hexToU32(hex string) (uint32, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return uint32(v), nil
}

// isFontPath detects if a value is a file path (bundled font) or a built-in family
func isFontPath(value string) bool {
	lower := strings.ToLower(value)
	if strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf") {
		return true
	}
	return strings.Contains(value, "/") || strings.Contains(value, "\\")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeFloatMap(b *strings.Builder, name string, m map[string]float32) {
	fmt.Fprintf(b, "var %s = map[string]float32{\n", name)
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(b, "\t%q: %s,\n", k, strconv.FormatFloat(float64(m[k]), 'g', -1, 32))
	}
	b.WriteString("}\n\n")
}

func generateGoCode(theme ThemeFile, colors map[string]uint32) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by tools/generate from theme.toml - DO NOT EDIT.\n\n")
	b.WriteString("package tw\n\n")

	bp := func(key string, def float32) float32 {
		if v, ok := theme.Breakpoints[key]; ok {
			return v
		}
		return def
	}
	b.WriteString("// ThemeBreakpoints returns the breakpoint configuration from theme.toml.\n")
	b.WriteString("func ThemeBreakpoints() BreakpointConfig {\n")
	fmt.Fprintf(&b, "\treturn BreakpointConfig{\n\t\tSM: %g,\n\t\tMD: %g,\n\t\tLG: %g,\n\t\tXL: %g,\n\t\tXXL: %g,\n\t}\n}\n\n",
		bp("sm", 640), bp("md", 768), bp("lg", 1024), bp("xl", 1280), bp("2xl", 1536))

	b.WriteString("// ThemeFonts returns the font family mappings from theme.toml.\n")
	b.WriteString("func ThemeFonts() map[string]FontFamilyConfig {\n\treturn map[string]FontFamilyConfig{\n")
	for _, name := range sortedKeys(theme.Fonts) {
		value := theme.Fonts[name]
		fmt.Fprintf(&b, "\t\t%q: {Value: %q, IsBundled: %t},\n", name, value, isFontPath(value))
	}
	b.WriteString("\t}\n}\n\n")

	writeFloatMap(&b, "themeSpacing", theme.Spacing)
	writeFloatMap(&b, "themeRadius", theme.Radius)
	writeFloatMap(&b, "themeFontSizes", theme.FontSize)

	b.WriteString("var themeColors = map[string]uint32{\n")
	for _, k := range sortedKeys(colors) {
		fmt.Fprintf(&b, "\t%q: 0x%08x,\n", k, colors[k])
	}
	b.WriteString("}\n")

	code, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}
	return code, nil
}
