package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
	"github.com/agiangrant/hashtags/tw"
)

// ThemeFileNames are the names FindTheme looks for, in order.
var ThemeFileNames = []string{"hashtags.toml", "hashtags.yaml", "hashtags.yml"}

// ErrThemeNotFound is returned by FindTheme when no theme file exists.
var ErrThemeNotFound = errors.New("config: no hashtags theme found")

// Theme is the hashtags.toml / hashtags.yaml file.
type Theme struct {
	Chip      ChipConfig      `toml:"chip" yaml:"chip"`
	Container ContainerConfig `toml:"container" yaml:"container"`

	// Classes are utility classes applied over [chip], e.g. "md:px-4".
	Classes string `toml:"classes,omitempty" yaml:"classes,omitempty"`

	// Fonts maps a family name to a TTF/OTF path, relative to the theme file.
	Fonts map[string]string `toml:"fonts,omitempty" yaml:"fonts,omitempty"`

	// Aliases define custom classes, e.g. brand = "bg-[#1da1f2] text-white".
	Aliases map[string]string `toml:"aliases,omitempty" yaml:"aliases,omitempty"`

	Breakpoints *tw.BreakpointConfig `toml:"breakpoints,omitempty" yaml:"breakpoints,omitempty"`

	// dir is the directory the theme was loaded from
	dir string
}

// ChipConfig is the [chip] section.
type ChipConfig struct {
	PaddingLeft   float32 `toml:"padding_left" yaml:"padding_left"`
	PaddingRight  float32 `toml:"padding_right" yaml:"padding_right"`
	PaddingTop    float32 `toml:"padding_top" yaml:"padding_top"`
	PaddingBottom float32 `toml:"padding_bottom" yaml:"padding_bottom"`
	CornerRadius  float32 `toml:"corner_radius" yaml:"corner_radius"`
	TextSize      float32 `toml:"text_size" yaml:"text_size"`
	FontFamily    string  `toml:"font_family" yaml:"font_family"`
	FontSize      float32 `toml:"font_size" yaml:"font_size"`

	// Colors are hex ("#aaaaaa", "#fff", "#00000080") or palette names ("gray-400")
	Background    string `toml:"background" yaml:"background"`
	TextColor     string `toml:"text_color" yaml:"text_color"`
	GoldTextColor string `toml:"gold_text_color" yaml:"gold_text_color"`

	RemoveButtonSize    float32 `toml:"remove_button_size" yaml:"remove_button_size"`
	RemoveButtonSpacing float32 `toml:"remove_button_spacing" yaml:"remove_button_spacing"`
}

// ContainerConfig is the [container] section.
type ContainerConfig struct {
	PaddingTop        float32 `toml:"padding_top" yaml:"padding_top"`
	PaddingLeft       float32 `toml:"padding_left" yaml:"padding_left"`
	PaddingBottom     float32 `toml:"padding_bottom" yaml:"padding_bottom"`
	PaddingRight      float32 `toml:"padding_right" yaml:"padding_right"`
	HorizontalSpacing float32 `toml:"horizontal_spacing" yaml:"horizontal_spacing"`
	VerticalSpacing   float32 `toml:"vertical_spacing" yaml:"vertical_spacing"`
	CornerRadius      float32 `toml:"corner_radius" yaml:"corner_radius"`
	FallbackWidth     float32 `toml:"fallback_width" yaml:"fallback_width"`
	FallbackHeight    float32 `toml:"fallback_height" yaml:"fallback_height"`
}

// DefaultTheme returns a theme matching the View defaults.
func DefaultTheme() Theme {
	return ThemeFor(hashtags.DefaultConfiguration(), hashtags.DefaultContainerOptions())
}

// ThemeFor describes cfg and opts as a theme.
func ThemeFor(cfg hashtags.Configuration, opts hashtags.ContainerOptions) Theme {
	return Theme{
		Chip: ChipConfig{
			PaddingLeft:         cfg.PaddingLeft,
			PaddingRight:        cfg.PaddingRight,
			PaddingTop:          cfg.PaddingTop,
			PaddingBottom:       cfg.PaddingBottom,
			CornerRadius:        cfg.TagCornerRadius,
			TextSize:            cfg.TextSize,
			FontFamily:          cfg.Font.Family,
			FontSize:            cfg.Font.Size,
			Background:          HexColor(cfg.BackgroundColor),
			TextColor:           HexColor(cfg.TextColor),
			GoldTextColor:       HexColor(cfg.GoldTextColor),
			RemoveButtonSize:    cfg.RemoveButtonSize,
			RemoveButtonSpacing: cfg.RemoveButtonSpacing,
		},
		Container: ContainerConfig{
			PaddingTop:        opts.Padding.Top,
			PaddingLeft:       opts.Padding.Left,
			PaddingBottom:     opts.Padding.Bottom,
			PaddingRight:      opts.Padding.Right,
			HorizontalSpacing: opts.HorizontalSpacing,
			VerticalSpacing:   opts.VerticalSpacing,
			CornerRadius:      opts.CornerRadius,
			FallbackWidth:     opts.FallbackSize.Width,
			FallbackHeight:    opts.FallbackSize.Height,
		},
	}
}

// LoadTheme reads a theme file over the defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if err := readFile(path, &theme); err != nil {
		return theme, err
	}
	if theme.Breakpoints != nil {
		bp := theme.Breakpoints.WithDefaults()
		theme.Breakpoints = &bp
	}
	theme.dir = filepath.Dir(path)
	return theme, nil
}

// SaveTheme writes theme to path in the format of its extension.
func SaveTheme(path string, theme Theme) error {
	return writeFile(path, theme)
}

// FindTheme looks for a theme file in dir and its parents.
func FindTheme(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range ThemeFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrThemeNotFound
		}
		dir = parent
	}
}

// Configuration converts the [chip] section.
func (t Theme) Configuration() (hashtags.Configuration, error) {
	c := t.Chip
	cfg := hashtags.Configuration{
		PaddingLeft:         c.PaddingLeft,
		PaddingRight:        c.PaddingRight,
		PaddingTop:          c.PaddingTop,
		PaddingBottom:       c.PaddingBottom,
		TagCornerRadius:     c.CornerRadius,
		TextSize:            c.TextSize,
		Font:                measure.Font{Family: c.FontFamily, Size: c.FontSize},
		RemoveButtonSize:    c.RemoveButtonSize,
		RemoveButtonSpacing: c.RemoveButtonSpacing,
	}

	var err error
	if cfg.BackgroundColor, err = parseColor("chip.background", c.Background); err != nil {
		return cfg, err
	}
	if cfg.TextColor, err = parseColor("chip.text_color", c.TextColor); err != nil {
		return cfg, err
	}
	if cfg.GoldTextColor, err = parseColor("chip.gold_text_color", c.GoldTextColor); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ContainerOptions converts the [container] section.
func (t Theme) ContainerOptions() hashtags.ContainerOptions {
	c := t.Container
	return hashtags.ContainerOptions{
		Padding:           layout.InsetsTLBR(c.PaddingTop, c.PaddingLeft, c.PaddingBottom, c.PaddingRight),
		HorizontalSpacing: c.HorizontalSpacing,
		VerticalSpacing:   c.VerticalSpacing,
		CornerRadius:      c.CornerRadius,
		FallbackSize:      layout.Size{Width: c.FallbackWidth, Height: c.FallbackHeight},
	}
}

// Options returns View options applying the theme.
func (t Theme) Options() ([]hashtags.Option, error) {
	cfg, err := t.Configuration()
	if err != nil {
		return nil, err
	}
	return []hashtags.Option{
		hashtags.WithConfiguration(cfg),
		hashtags.WithContainerOptions(t.ContainerOptions()),
		hashtags.WithClasses(t.Classes),
		hashtags.WithClassConfig(t.ClassConfig()),
	}, nil
}

// ClassConfig returns the theme's aliases and breakpoints for class
// resolution. Unset breakpoints keep their default thresholds.
func (t Theme) ClassConfig() tw.ThemeConfig {
	cfg := tw.ThemeConfig{Aliases: t.Aliases}
	if t.Breakpoints != nil {
		cfg.Breakpoints = t.Breakpoints.WithDefaults()
	}
	return cfg
}

// Register loads the theme's fonts into face and registers its classes.
func (t Theme) Register(face *measure.Face) error {
	if err := t.RegisterFonts(face); err != nil {
		return err
	}
	t.RegisterClasses()
	return nil
}

// RegisterFonts loads the [fonts] section into face. Paths are relative
// to the theme file.
func (t Theme) RegisterFonts(face *measure.Face) error {
	for family, path := range t.Fonts {
		if !filepath.IsAbs(path) && t.dir != "" {
			path = filepath.Join(t.dir, path)
		}
		if err := face.RegisterFile(family, path); err != nil {
			return fmt.Errorf("font %s: %w", family, err)
		}
	}
	return nil
}

// RegisterClasses registers the theme's aliases and breakpoints with the
// class parser, for callers that use tw.Resolve or ApplyClasses directly.
// Views built from Options carry their own copy. The registration is
// process-wide; a theme without aliases or breakpoints resets it.
func (t Theme) RegisterClasses() {
	if len(t.Aliases) == 0 && t.Breakpoints == nil {
		tw.ResetConfig()
		return
	}
	tw.SetConfig(t.ClassConfig())
}

// HexColor formats c as #rrggbb, or #rrggbbaa when it is not opaque.
func HexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseColor(field, value string) (color.RGBA, error) {
	c, ok := tw.ParseColor(value)
	if !ok {
		return color.RGBA{}, fmt.Errorf("%s: invalid color %q", field, value)
	}
	return tw.ToRGBA(c), nil
}
