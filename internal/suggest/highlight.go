package suggest

import (
	"strings"
	"unicode"
)

// Segments is a word split around the matched span.
type Segments struct {
	Before string
	Match  string
	After  string
}

// Highlight splits word around the first case-insensitive occurrence of the
// trimmed input. ok is false, and Before holds the whole word, when input is
// blank or does not occur in word.
func Highlight(word, input string) (seg Segments, ok bool) {
	query := []rune(strings.TrimSpace(input))
	runes := []rune(word)

	if len(query) == 0 || len(query) > len(runes) {
		return Segments{Before: word}, false
	}

	for start := 0; start+len(query) <= len(runes); start++ {
		if foldEqual(runes[start:start+len(query)], query) {
			end := start + len(query)
			return Segments{
				Before: string(runes[:start]),
				Match:  string(runes[start:end]),
				After:  string(runes[end:]),
			}, true
		}
	}

	return Segments{Before: word}, false
}

func foldEqual(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
