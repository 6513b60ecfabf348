package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/config"
	"github.com/agiangrant/hashtags/layout"
	"github.com/agiangrant/hashtags/measure"
)

// LayoutReport is the --json output for one View.
type LayoutReport struct {
	Source        string       `json:"source"`
	Width         float32      `json:"width"`
	PreferredSize layout.Size  `json:"preferred_size"`
	ContentSize   layout.Size  `json:"content_size"`
	Rows          int          `json:"rows"`
	Chips         []ChipReport `json:"chips"`
}

// ChipReport is one chip in a LayoutReport.
type ChipReport struct {
	Text      string      `json:"text"`
	Removable bool        `json:"removable,omitempty"`
	Gold      bool        `json:"gold,omitempty"`
	Row       int         `json:"row"`
	Frame     layout.Rect `json:"frame"`
}

// Layout implements the 'hashtags layout' command
func Layout(args []string) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	themeFile, width, verbose := addThemeFlags(fs)
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setDebug(*verbose)

	theme, err := loadTheme(*themeFile)
	if err != nil {
		return err
	}
	face := measure.DefaultFace().Clone()
	if err := theme.Register(face); err != nil {
		return err
	}

	var reports []LayoutReport
	var loose []string
	for _, arg := range fs.Args() {
		if !isBoard(arg) {
			loose = append(loose, arg)
			continue
		}
		board, err := config.LoadBoard(arg)
		if err != nil {
			return err
		}
		v, err := boardView(board, theme, face, float32(*width))
		if err != nil {
			return err
		}
		reports = append(reports, report(arg, v))
	}

	if len(loose) > 0 {
		tags, err := parseTags(loose)
		if err != nil {
			return err
		}
		v, err := newView(theme, float32(*width), measure.NewCache(face, 0), tags)
		if err != nil {
			return err
		}
		reports = append(reports, report("args", v))
	}

	if len(reports) == 0 {
		return fmt.Errorf("no tags or boards given")
	}

	if *asJSON {
		enc := json.NewEncoder(Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}
	return printReports(reports)
}

func report(source string, v *hashtags.View) LayoutReport {
	res := v.Layout()
	r := LayoutReport{
		Source:        source,
		Width:         v.Width(),
		PreferredSize: v.PreferredSize(),
		ContentSize:   v.ContentSize(),
		Rows:          len(res.Rows),
		Chips:         make([]ChipReport, 0, v.Len()),
	}
	for i, chip := range v.Chips() {
		r.Chips = append(r.Chips, ChipReport{
			Text:      chip.Tag.Text,
			Removable: chip.Tag.IsRemovable,
			Gold:      chip.Tag.IsGold,
			Row:       res.RowOf(i),
			Frame:     chip.Frame,
		})
	}
	return r
}

func printReports(reports []LayoutReport) error {
	w := tabwriter.NewWriter(Stdout, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (width %g)\n", r.Source, r.Width)
		for _, c := range r.Chips {
			flags := ""
			if c.Removable {
				flags += "x"
			}
			if c.Gold {
				flags += "g"
			}
			fmt.Fprintf(w, "  #%s\t%s\trow %d\t%g,%g\t%gx%g\n",
				c.Text, flags, c.Row, c.Frame.X, c.Frame.Y, c.Frame.Width, c.Frame.Height)
		}
		fmt.Fprintf(w, "  preferred %gx%g, %d rows\n", r.PreferredSize.Width, r.PreferredSize.Height, r.Rows)
	}
	return w.Flush()
}
