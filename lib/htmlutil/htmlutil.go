package htmlutil

import (
	"regexp"
	"strings"
	"unicode"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// CleanText flattens the text content of a scraped element into
// something comparable: non-printable runes become spaces, runs of
// whitespace collapse to a single space, ends are trimmed.
func CleanText(s string) string {
	s = strings.Map(func(c rune) rune {
		if unicode.IsPrint(c) {
			return c
		}
		return ' '
	}, s)
	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.Trim(s, " ")
}
