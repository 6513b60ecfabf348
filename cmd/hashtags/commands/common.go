package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/config"
	"github.com/agiangrant/hashtags/internal/debug"
	"github.com/agiangrant/hashtags/measure"
)

// addThemeFlags registers the flags shared by commands that lay out tags.
func addThemeFlags(fs *flag.FlagSet) (theme *string, width *float64, verbose *bool) {
	theme = fs.String("theme", "", "Theme file (default $HASHTAGS_THEME or the nearest hashtags.toml)")
	width = fs.Float64("width", float64(env.Width), "Container width")
	verbose = fs.Bool("debug", env.Debug, "Log layout passes to stderr")
	return theme, width, verbose
}

func setDebug(on bool) {
	if on {
		debug.SetOutput(os.Stderr)
	}
}

// loadTheme resolves the theme from the flag, the environment or the
// working directory, and falls back to the defaults.
func loadTheme(path string) (config.Theme, error) {
	if path == "" {
		path = env.Theme
	}
	if path == "" {
		found, err := config.FindTheme(".")
		if errors.Is(err, config.ErrThemeNotFound) {
			return config.DefaultTheme(), nil
		}
		if err != nil {
			return config.DefaultTheme(), err
		}
		path = found
	}
	debug.Logf("cli: theme %s", path)
	return config.LoadTheme(path)
}

// isBoard reports whether arg names a board file.
func isBoard(arg string) bool {
	if _, err := config.FormatFor(arg); err != nil {
		return false
	}
	_, err := os.Stat(arg)
	return err == nil
}

// parseTag reads "golang", "x:golang", "gold:golang" or "x:gold:golang".
func parseTag(arg string) (hashtags.Tag, error) {
	var tag hashtags.Tag
	parts := strings.Split(arg, ":")
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "x":
			tag.IsRemovable = true
		case "gold":
			tag.IsGold = true
		default:
			// Not a prefix; keep the colon in the text
			tag.Text = arg
			return tag, tag.Validate()
		}
	}
	tag.Text = parts[len(parts)-1]
	if err := tag.Validate(); err != nil {
		return tag, fmt.Errorf("tag %q: %w", arg, err)
	}
	return tag, nil
}

func parseTags(args []string) ([]hashtags.Tag, error) {
	tags := make([]hashtags.Tag, 0, len(args))
	for _, arg := range args {
		tag, err := parseTag(arg)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// newView builds a View for tags styled by theme.
func newView(theme config.Theme, width float32, m measure.Measurer, tags []hashtags.Tag) (*hashtags.View, error) {
	opts, err := theme.Options()
	if err != nil {
		return nil, err
	}
	v := hashtags.New(append(opts, hashtags.WithWidth(width), hashtags.WithMeasurer(m))...)
	v.AddTags(tags...)
	return v, nil
}

// boardView builds a View for a board. The board's own theme wins over
// the fallback theme, and width applies when the board sets none.
func boardView(board config.Board, fallback config.Theme, face *measure.Face, width float32) (*hashtags.View, error) {
	theme := fallback
	if path := board.ThemePath(); path != "" {
		t, err := config.LoadTheme(path)
		if err != nil {
			return nil, err
		}
		theme = t
	}
	if err := theme.RegisterFonts(face); err != nil {
		return nil, err
	}

	opts, err := board.Options(theme)
	if err != nil {
		return nil, err
	}
	if board.Width <= 0 {
		opts = append(opts, hashtags.WithWidth(width))
	}
	v := hashtags.New(append(opts, hashtags.WithMeasurer(measure.NewCache(face, 0)))...)
	v.AddTags(board.Tags...)
	return v, nil
}
