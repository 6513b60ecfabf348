package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/hashtags/config"
	"github.com/agiangrant/hashtags/internal/debug"
	"github.com/agiangrant/hashtags/measure"
	"github.com/agiangrant/hashtags/render"
)

// Render implements the 'hashtags render' command
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	themeFile, width, verbose := addThemeFlags(fs)
	outDir := fs.String("out", "build", "Output directory")
	iconFile := fs.String("icon", "", "Remove button icon (PNG, JPEG or GIF)")
	scale := fs.Float64("scale", 1, "Pixel scale")
	jobs := fs.Int("jobs", runtime.GOMAXPROCS(0), "Boards rendered at once")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setDebug(*verbose)

	boards, err := expandBoards(fs.Args())
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		return fmt.Errorf("no boards match %s", strings.Join(fs.Args(), " "))
	}

	theme, err := loadTheme(*themeFile)
	if err != nil {
		return err
	}
	base := measure.DefaultFace().Clone()
	if err := theme.Register(base); err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *outDir, err)
	}

	opts := render.Options{
		Scale: float32(*scale),
		Icon:  render.LoadIcon(*iconFile),
	}
	return renderBoards(context.Background(), boards, theme, base, opts, *outDir, float32(*width), *jobs)
}

// expandBoards resolves ** globs and returns the matching board files, sorted.
func expandBoards(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, err := config.FormatFor(m); err != nil || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

// renderBoards draws boards concurrently. Each worker owns a clone of base
// so glyph faces are never shared.
func renderBoards(ctx context.Context, boards []string, theme config.Theme, base *measure.Face, opts render.Options, outDir string, width float32, jobs int) error {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	var mu sync.Mutex
	for _, path := range boards {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			board, err := config.LoadBoard(path)
			if err != nil {
				return err
			}

			face := base.Clone()
			v, err := boardView(board, theme, face, width)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			o := opts
			o.Face = face
			out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".png")
			if err := render.WritePNG(out, v, o); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			debug.Logf("cli: rendered %s -> %s", path, out)
			mu.Lock()
			fmt.Fprintf(Stdout, "  ✓ %s\n", out)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
