package hashtags

import (
	"errors"
	"strings"
)

// ErrEmptyTag is returned by Tag.Validate for tags without visible text.
var ErrEmptyTag = errors.New("hashtags: tag text is empty")

// Tag is one hashtag. Tags are values: two tags are the same tag when their
// text and flags are equal.
type Tag struct {
	Text        string `toml:"text" yaml:"text"`
	IsRemovable bool   `toml:"removable,omitempty" yaml:"removable,omitempty"`
	IsGold      bool   `toml:"gold,omitempty" yaml:"gold,omitempty"`
}

// NewTag creates a plain tag.
func NewTag(text string) Tag {
	return Tag{Text: text}
}

// WithRemovable returns a copy of t with the remove affordance switched on or off.
func (t Tag) WithRemovable(removable bool) Tag {
	t.IsRemovable = removable
	return t
}

// WithGold returns a copy of t using the gold text color.
func (t Tag) WithGold(gold bool) Tag {
	t.IsGold = gold
	return t
}

// Validate reports ErrEmptyTag when the text is blank. The View accepts
// any tag; Validate is for input read from files and the command line.
func (t Tag) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyTag
	}
	return nil
}

func (t Tag) String() string {
	return "#" + t.Text
}
