package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/hashtags"
	"github.com/agiangrant/hashtags/render"
)

// Preview implements the 'hashtags preview' command
func Preview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	width := fs.Int("width", 80, "Terminal columns")
	classes := fs.String("classes", "", "Utility classes for the chips, e.g. px-2")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tags, err := parseTags(fs.Args())
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return fmt.Errorf("no tags given")
	}

	opts := append(render.TerminalOptions(),
		hashtags.WithWidth(float32(*width)),
		hashtags.WithClasses(*classes),
	)
	v := hashtags.New(opts...)
	v.AddTags(tags...)

	fmt.Fprintln(Stdout, render.Text(v))
	return nil
}
