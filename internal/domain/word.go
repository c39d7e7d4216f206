package domain

import "strings"

// WordEntry is one dictionary record. Word is the lookup key; entries are
// not required to be unique by Word.
type WordEntry struct {
	Word       string `json:"word"`
	Pos        string `json:"pos,omitempty"`
	Definition string `json:"definition,omitempty"`
}

// Key returns the lowercased lookup key used for case-insensitive matching.
func (e WordEntry) Key() string {
	return strings.ToLower(e.Word)
}

// ImportRecord describes one completed `bmd import` run.
type ImportRecord struct {
	ID         string
	Source     string
	WordCount  int
	ImportedAt string
}
