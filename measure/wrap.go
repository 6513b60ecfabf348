package measure

import (
	"strings"
	"unicode"
)

// Line is one line of wrapped text.
type Line struct {
	Text  string  // line content without trailing whitespace
	Start int     // rune index in the original text where the line starts
	End   int     // rune index where the line ends (exclusive)
	Width float32 // measured width of Text
}

// Wrap breaks text into lines no wider than maxWidth as measured by width.
// Hard newlines always break. Soft breaks happen after the last whitespace
// on the line; a word wider than maxWidth is split between runes. Every
// line holds at least one rune, so a single glyph wider than maxWidth still
// gets its own line. A non-positive maxWidth only breaks on newlines.
func Wrap(text string, maxWidth float32, width func(string) float32) []Line {
	if text == "" {
		return []Line{{}}
	}

	runes := []rune(text)
	var lines []Line
	emit := func(start, end int) {
		s := strings.TrimRightFunc(string(runes[start:end]), unicode.IsSpace)
		var w float32
		if s != "" {
			w = width(s)
		}
		lines = append(lines, Line{Text: s, Start: start, End: end, Width: w})
	}

	lineStart := 0
	lastBreak := -1 // rune index just after the last whitespace on this line
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			emit(lineStart, i)
			lineStart = i + 1
			lastBreak = -1
			continue
		}
		if maxWidth <= 0 {
			continue
		}
		// Trailing whitespace never forces a wrap
		if unicode.IsSpace(r) {
			lastBreak = i + 1
			continue
		}
		if i == lineStart || width(string(runes[lineStart:i+1])) <= maxWidth {
			continue
		}

		breakAt := i
		if lastBreak > lineStart {
			breakAt = lastBreak
		}
		emit(lineStart, breakAt)
		lineStart = breakAt
		lastBreak = -1
		// Rescan the carried-over word from the new line start
		i = lineStart - 1
	}
	emit(lineStart, len(runes))

	return lines
}
