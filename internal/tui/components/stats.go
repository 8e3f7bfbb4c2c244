package components

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// CharCount returns the number of code points in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// WordCount returns the number of whitespace-delimited non-empty tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Wrap wraps s to width terminal cells, keeping existing line breaks.
// Combining vowel signs and viramas take no cells, so Devanagari is measured
// by display width rather than by byte or rune length.
func Wrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}

	paragraphs := strings.Split(s, "\n")
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, wrapLine(p, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(s string, width int) string {
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
