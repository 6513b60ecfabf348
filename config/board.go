package config

import (
	"fmt"
	"path/filepath"

	"github.com/agiangrant/hashtags"
)

// Board is a set of tags to lay out, read from a TOML or YAML file.
//
//	width = 320
//	theme = "hashtags.toml"
//
//	[[tags]]
//	text = "golang"
//	removable = true
type Board struct {
	Width   float32        `toml:"width" yaml:"width"`
	Theme   string         `toml:"theme,omitempty" yaml:"theme,omitempty"`
	Classes string         `toml:"classes,omitempty" yaml:"classes,omitempty"`
	Tags    []hashtags.Tag `toml:"tags" yaml:"tags"`

	path string
}

// LoadBoard reads and validates a board.
func LoadBoard(path string) (Board, error) {
	var board Board
	if err := readFile(path, &board); err != nil {
		return board, err
	}
	board.path = path

	for i, tag := range board.Tags {
		if err := tag.Validate(); err != nil {
			return board, fmt.Errorf("%s: tag %d: %w", path, i+1, err)
		}
	}
	return board, nil
}

// SaveBoard writes a board in the format of the path's extension.
func SaveBoard(path string, board Board) error {
	return writeFile(path, board)
}

// Path returns the file the board was loaded from.
func (b Board) Path() string {
	return b.path
}

// ThemePath resolves the board's theme relative to the board file.
// It is empty when the board names no theme.
func (b Board) ThemePath() string {
	if b.Theme == "" || filepath.IsAbs(b.Theme) || b.path == "" {
		return b.Theme
	}
	return filepath.Join(filepath.Dir(b.path), b.Theme)
}

// Options returns View options for the board: its width, its classes on
// top of the theme's, and its theme.
func (b Board) Options(theme Theme) ([]hashtags.Option, error) {
	opts, err := theme.Options()
	if err != nil {
		return nil, err
	}
	classes := theme.Classes
	if b.Classes != "" {
		classes += " " + b.Classes
	}
	return append(opts,
		hashtags.WithClasses(classes),
		hashtags.WithWidth(b.Width),
	), nil
}
