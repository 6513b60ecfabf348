package render

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
)

// TerminalOptions returns View options sized for Text: one unit is one
// terminal cell, chips have one cell of side padding and no vertical
// padding, and rows are not separated.
func TerminalOptions() []hashtags.Option {
	cfg := hashtags.DefaultConfiguration()
	cfg.PaddingLeft, cfg.PaddingRight = 1, 1
	cfg.PaddingTop, cfg.PaddingBottom = 0, 0
	cfg.RemoveButtonSize = 1
	cfg.RemoveButtonSpacing = 1

	return []hashtags.Option{
		hashtags.WithMeasurer(measure.Terminal()),
		hashtags.WithConfiguration(cfg),
		hashtags.WithContainerPadding(layout.Insets{}),
		hashtags.WithSpacing(1, 0),
	}
}

// Text draws v as text, one character cell per unit. Chips are drawn as
// [text] boxes, removable chips as [text x]. Build the View with
// TerminalOptions for a compact preview.
func Text(v *hashtags.View) string {
	chips := v.Chips()
	if len(chips) == 0 {
		return ""
	}

	content := v.ContentSize()
	g := newGrid(cells(content.Width), cells(content.Height))

	for _, chip := range chips {
		f := chip.Frame
		x0, y0 := cells(f.X), cells(f.Y)
		x1 := cells(f.Right()) - 1
		g.set(x0, y0, "[")
		g.set(x1, y0, "]")

		t := chip.TextFrame
		lines := measure.Wrap(chip.Tag.Text, t.Width, func(s string) float32 {
			return float32(measure.Cells(s))
		})
		for i, line := range lines {
			row := cells(t.Y) + i
			if row >= cells(t.Bottom()) && i > 0 {
				break
			}
			g.write(cells(t.X), row, line.Text, cells(t.Right()))
		}

		if chip.Kind == hashtags.KindRemovable {
			g.set(cells(chip.RemoveFrame.X), cells(chip.RemoveFrame.Y), "x")
		}
	}
	return g.String()
}

func cells(v float32) int {
	return int(math.Round(float64(v)))
}

// grid holds one grapheme cluster per cell. A wide cluster occupies its
// cell and leaves the following cells empty.
type grid struct {
	width int
	rows  [][]string
}

func newGrid(width, height int) *grid {
	g := &grid{width: width}
	g.rows = make([][]string, height)
	for i := range g.rows {
		g.rows[i] = make([]string, width)
		for j := range g.rows[i] {
			g.rows[i][j] = " "
		}
	}
	return g
}

func (g *grid) set(x, y int, s string) {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= g.width {
		return
	}
	g.rows[y][x] = s
}

// write places text from x, stopping before limit.
func (g *grid) write(x, y int, text string, limit int) {
	limit = min(limit, g.width)
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		w := uniseg.StringWidth(cluster)
		if x+w > limit {
			return
		}
		g.set(x, y, cluster)
		for i := 1; i < w; i++ {
			g.set(x+i, y, "")
		}
		x += w
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for i, row := range g.rows {
		line := strings.TrimRight(strings.Join(row, ""), " ")
		b.WriteString(line)
		if i < len(g.rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
