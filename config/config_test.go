package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
	"github.com/agiangrant/hashtags/tw"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"theme.toml", FormatTOML, false},
		{"a/b/board.YAML", FormatYAML, false},
		{"board.yml", FormatYAML, false},
		{"board.json", "", true},
		{"board", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultThemeMatchesDefaults(t *testing.T) {
	theme := DefaultTheme()

	cfg, err := theme.Configuration()
	require.NoError(t, err)
	assert.Equal(t, hashtags.DefaultConfiguration(), cfg)
	assert.Equal(t, hashtags.DefaultContainerOptions(), theme.ContainerOptions())
	assert.Equal(t, "#aaaaaa", theme.Chip.Background)
}

func TestThemeRoundTrip(t *testing.T) {
	theme := DefaultTheme()
	theme.Chip.PaddingLeft = 14
	theme.Chip.Background = "#1da1f2"
	theme.Classes = "rounded-full md:px-4"
	theme.Aliases = map[string]string{"brand": "bg-blue-500 text-white"}
	theme.Container.HorizontalSpacing = 6

	for _, ext := range []string{".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hashtags"+ext)
			require.NoError(t, SaveTheme(path, theme))

			loaded, err := LoadTheme(path)
			require.NoError(t, err)
			assert.Equal(t, theme.Chip, loaded.Chip)
			assert.Equal(t, theme.Container, loaded.Container)
			assert.Equal(t, theme.Classes, loaded.Classes)
			assert.Equal(t, theme.Aliases, loaded.Aliases)
		})
	}
}

func TestLoadThemePartialKeepsDefaults(t *testing.T) {
	path := writeTemp(t, "hashtags.toml", `
classes = "px-3"

[chip]
background = "gray-700"
padding_top = 4

[container]
vertical_spacing = 2
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	cfg, err := theme.Configuration()
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.PaddingTop)
	assert.Equal(t, float32(8), cfg.PaddingBottom, "untouched keys keep defaults")
	assert.Equal(t, uint8(0x37), cfg.BackgroundColor.R)

	opts := theme.ContainerOptions()
	assert.Equal(t, float32(2), opts.VerticalSpacing)
	assert.Equal(t, float32(10), opts.HorizontalSpacing)
}

func TestLoadThemeYAML(t *testing.T) {
	path := writeTemp(t, "hashtags.yaml", `
chip:
  text_color: "#000"
  gold_text_color: amber-300
container:
  fallback_width: 200
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	cfg, err := theme.Configuration()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), cfg.TextColor.R)
	assert.Equal(t, uint8(0xfc), cfg.GoldTextColor.R)
	assert.Equal(t, layout.Size{Width: 200, Height: 44}, theme.ContainerOptions().FallbackSize)
}

func TestLoadThemeErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeTemp(t, "hashtags.toml", "[chip]\npadding = 3\n")
		_, err := LoadTheme(path)
		assert.Error(t, err)
	})

	t.Run("bad color", func(t *testing.T) {
		path := writeTemp(t, "hashtags.toml", "[chip]\nbackground = \"mauve\"\n")
		theme, err := LoadTheme(path)
		require.NoError(t, err)
		_, err = theme.Configuration()
		assert.ErrorContains(t, err, "chip.background")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadTheme(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := LoadTheme("theme.ini")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestFindTheme(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hashtags.yaml"), []byte("classes: px-2\n"), 0644))

	path, err := FindTheme(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "hashtags.yaml"), path)

	_, err = FindTheme(t.TempDir())
	if err != nil {
		assert.ErrorIs(t, err, ErrThemeNotFound)
	}
}

func TestThemeRegister(t *testing.T) {
	t.Cleanup(tw.ResetConfig)

	theme := DefaultTheme()
	theme.Aliases = map[string]string{"brand": "px-5"}
	theme.Breakpoints = &tw.BreakpointConfig{SM: 10, MD: 20, LG: 30, XL: 40, XXL: 50}
	require.NoError(t, theme.Register(measure.NewFace()))

	props := tw.Resolve("sm:brand", 15)
	require.NotNil(t, props.PaddingLeft)
	assert.Equal(t, float32(20), *props.PaddingLeft)

	theme.Fonts = map[string]string{"brand": "missing.ttf"}
	assert.Error(t, theme.Register(measure.NewFace()))
}

func TestLoadThemePartialBreakpoints(t *testing.T) {
	t.Cleanup(tw.ResetConfig)
	path := writeTemp(t, "hashtags.toml", "[breakpoints]\nmd = 900\n")

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	require.NotNil(t, theme.Breakpoints)
	want := tw.ThemeBreakpoints()
	want.MD = 900
	assert.Equal(t, want, *theme.Breakpoints)

	opts, err := theme.Options()
	require.NoError(t, err)
	v := hashtags.New(append(opts,
		hashtags.WithWidth(200),
		hashtags.WithClasses("xl:px-10"),
		hashtags.WithMeasurer(measure.Monospace{CellWidth: 10, LineHeight: 20}),
	)...)
	assert.Equal(t, float32(8), v.Configuration().PaddingLeft)

	require.NoError(t, theme.Register(measure.NewFace()))
	assert.Equal(t, want, tw.GetBreakpoints())
}

func TestThemeOptionsCarryAliases(t *testing.T) {
	tw.ResetConfig()
	theme := DefaultTheme()
	theme.Aliases = map[string]string{"brand": "px-10"}
	theme.Classes = "brand"

	// nothing registered globally
	opts, err := theme.Options()
	require.NoError(t, err)
	v := hashtags.New(append(opts, hashtags.WithMeasurer(measure.Monospace{CellWidth: 10, LineHeight: 20}))...)
	assert.Equal(t, float32(40), v.Configuration().PaddingLeft)
}

func TestRegisterClassesResets(t *testing.T) {
	t.Cleanup(tw.ResetConfig)

	branded := DefaultTheme()
	branded.Aliases = map[string]string{"brand": "px-10"}
	branded.RegisterClasses()
	require.Contains(t, tw.GetAliases(), "brand")

	DefaultTheme().RegisterClasses()
	assert.Empty(t, tw.GetAliases())
	assert.Equal(t, tw.ThemeBreakpoints(), tw.GetBreakpoints())
}

func TestLoadBoard(t *testing.T) {
	dir := t.TempDir()
	boardPath := filepath.Join(dir, "board.toml")
	require.NoError(t, os.WriteFile(boardPath, []byte(`
width = 240
theme = "hashtags.toml"

[[tags]]
text = "golang"

[[tags]]
text = "rust"
removable = true

[[tags]]
text = "gold"
gold = true
`), 0644))

	board, err := LoadBoard(boardPath)
	require.NoError(t, err)
	assert.Equal(t, float32(240), board.Width)
	assert.Equal(t, []hashtags.Tag{
		hashtags.NewTag("golang"),
		hashtags.NewTag("rust").WithRemovable(true),
		hashtags.NewTag("gold").WithGold(true),
	}, board.Tags)
	assert.Equal(t, filepath.Join(dir, "hashtags.toml"), board.ThemePath())

	opts, err := board.Options(DefaultTheme())
	require.NoError(t, err)
	v := hashtags.New(append(opts, hashtags.WithMeasurer(measure.Terminal()))...)
	assert.Equal(t, float32(240), v.Width())
}

func TestLoadBoardRejectsEmptyTag(t *testing.T) {
	path := writeTemp(t, "board.yaml", "width: 100\ntags:\n  - text: ok\n  - text: \"  \"\n")
	_, err := LoadBoard(path)
	assert.ErrorIs(t, err, hashtags.ErrEmptyTag)
	assert.ErrorContains(t, err, "tag 2")
}

func TestBoardRoundTrip(t *testing.T) {
	board := Board{
		Width: 300,
		Tags:  []hashtags.Tag{hashtags.NewTag("a"), hashtags.NewTag("b").WithRemovable(true)},
	}
	for _, ext := range []string{".toml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board"+ext)
			require.NoError(t, SaveBoard(path, board))
			loaded, err := LoadBoard(path)
			require.NoError(t, err)
			assert.Equal(t, board.Width, loaded.Width)
			assert.Equal(t, board.Tags, loaded.Tags)
		})
	}
}
