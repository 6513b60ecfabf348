package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/hashtags/config"
)

// Init implements the 'hashtags init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	format := fs.String("format", "toml", "File format (toml or yaml)")
	force := fs.Bool("force", false, "Overwrite an existing theme")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := config.ParseFormat(*format)
	if err != nil {
		return err
	}
	path := "hashtags" + f.Ext()

	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveTheme(path, config.DefaultTheme()); err != nil {
		return err
	}
	fmt.Fprintf(Stdout, "  ✓ Created %s\n", path)
	return nil
}
