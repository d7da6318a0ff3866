package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	DefaultWidth = 69

	padFill = "-"
)

// Leftpad right-justifies label within width columns. Labels wider than
// width are returned unchanged.
func Leftpad(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w > width {
		return label
	}
	return strings.Repeat(padFill, width-w) + label
}

// SelectiveWrap wraps every line of text to width, except lines containing
// a URL, which are passed through untouched.
func SelectiveWrap(text string, width int) string {
	if width < 1 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.Contains(line, "http") {
			continue
		}
		lines[i] = wrapLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, width int) string {
	if runewidth.StringWidth(line) <= width {
		return line
	}
	return wrap.String(wordwrap.String(line, width), width)
}
