package text

import (
	"regexp"
	"strings"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n\s*`)
	lineBreak      = regexp.MustCompile(`\n\s*`)
)

// Normalize collapses runs of whitespace while keeping line structure: single
// line breaks survive, blank lines become one paragraph break.
func Normalize(s string) string {
	s = strings.TrimSpace(s)

	s = strings.ReplaceAll(s, "\a", "")
	s = strings.ReplaceAll(s, "\r\n", "\n")

	s = paragraphBreak.ReplaceAllString(s, "\a\a")
	s = lineBreak.ReplaceAllString(s, "\a")

	s = strings.Join(strings.Fields(s), " ")

	s = strings.ReplaceAll(s, "\a", "\n")

	return strings.TrimSpace(s)
}
