package article

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	htmlTagRE  = regexp.MustCompile(`<[^>]+>`)
	linkRE     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdMarkerRE = regexp.MustCompile("[#*_`|>-]")
)

// StripTags removes HTML tags from text.
func StripTags(text string) string {
	return htmlTagRE.ReplaceAllString(text, "")
}

// ProseLength counts the visible prose characters of body: HTML tags are
// removed, markdown links collapse to their link text, markdown marker
// characters and all whitespace are dropped, and the remaining runes are
// counted. The result approximates the reader-visible length with the
// markup noise excluded.
func ProseLength(body string) int {
	text := StripTags(body)
	text = linkRE.ReplaceAllString(text, "$1")
	text = mdMarkerRE.ReplaceAllString(text, "")

	// Whitespace includes the full Unicode space property, not just
	// ASCII: Japanese prose separates with U+3000 (ideographic space),
	// which must not count toward the length.
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// IsTableLine reports whether line is part of a markdown table, i.e. it
// starts with a pipe after trimming.
func IsTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}
