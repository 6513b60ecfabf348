package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/hashtags/cmd/hashtags/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	commands.LoadEnv()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "layout":
		err = commands.Layout(args)
	case "render":
		err = commands.Render(args)
	case "preview":
		err = commands.Preview(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("hashtags version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hashtags - hashtag chip layout

Usage: hashtags <command> [options]

Commands:
  layout    Print chip frames and the preferred size
  render    Render boards to PNG
  preview   Draw tags in the terminal
  init      Write a default hashtags.toml
  version   Print version information
  help      Show this help message

Tags:
  Arguments that are not board files are tags. Prefix with x: for a
  removable tag and gold: for a gold one, e.g. x:gold:golang.

Examples:
  hashtags layout --width 320 golang x:rust gold:zig
  hashtags layout --json boards/home.toml
  hashtags render --out build 'boards/**/*.toml'
  hashtags preview --width 40 golang x:rust

Configuration:
  Themes are read from --theme, $HASHTAGS_THEME or the nearest
  hashtags.toml / hashtags.yaml. A .env file in the working directory
  can set HASHTAGS_THEME, HASHTAGS_WIDTH and HASHTAGS_DEBUG.`)
}
