package wordlist

import (
	"strings"

	"github.com/bmdict/cli/internal/domain"
)

// columns holds the header positions of a tabular source. -1 means absent.
type columns struct {
	word, pos, definition int
}

func findColumns(header []string) (columns, bool) {
	c := columns{word: -1, pos: -1, definition: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "word":
			if c.word < 0 {
				c.word = i
			}
		case "pos":
			if c.pos < 0 {
				c.pos = i
			}
		case "definition":
			if c.definition < 0 {
				c.definition = i
			}
		}
	}
	return c, c.word >= 0
}

// entry builds an entry from one data row. Rows with an empty word cell are
// dropped.
func (c columns) entry(row []string) (domain.WordEntry, bool) {
	word := cell(row, c.word)
	if word == "" {
		return domain.WordEntry{}, false
	}
	return domain.WordEntry{
		Word:       word,
		Pos:        cell(row, c.pos),
		Definition: cell(row, c.definition),
	}, true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
