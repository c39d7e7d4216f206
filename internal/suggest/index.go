// Package suggest implements the search box logic: a prefix index over the
// word list and a pure reducer over the suggestion state.
package suggest

import (
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bmdict/cli/internal/domain"
)

// Index answers prefix and exact queries over a fixed word list. Keys are
// lowercased words; each key holds the list positions carrying it, so
// results come back in list order.
type Index struct {
	entries []domain.WordEntry
	trie    *patricia.Trie
}

// NewIndex builds an index over entries. Entries with an empty word can never
// match a non-empty query and are not indexed.
func NewIndex(entries []domain.WordEntry) *Index {
	trie := patricia.NewTrie()
	for i, e := range entries {
		key := e.Key()
		if key == "" {
			continue
		}
		prefix := patricia.Prefix(key)
		if item := trie.Get(prefix); item != nil {
			trie.Set(prefix, append(item.([]int), i))
			continue
		}
		trie.Insert(prefix, []int{i})
	}
	return &Index{entries: entries, trie: trie}
}

// Len returns the number of entries the index was built from.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Prefix returns up to limit entries whose lowercased word starts with query,
// in list order. query must already be lowercased.
func (ix *Index) Prefix(query string, limit int) []domain.WordEntry {
	if ix == nil || query == "" || limit <= 0 {
		return nil
	}

	var positions []int
	_ = ix.trie.VisitSubtree(patricia.Prefix(query), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})

	slices.Sort(positions)
	if len(positions) > limit {
		positions = positions[:limit]
	}

	out := make([]domain.WordEntry, len(positions))
	for i, p := range positions {
		out[i] = ix.entries[p]
	}
	return out
}

// Exact returns the first entry in list order whose lowercased word equals
// query. query must already be lowercased.
func (ix *Index) Exact(query string) (domain.WordEntry, bool) {
	if ix == nil || query == "" {
		return domain.WordEntry{}, false
	}
	item := ix.trie.Get(patricia.Prefix(query))
	if item == nil {
		return domain.WordEntry{}, false
	}
	return ix.entries[item.([]int)[0]], true
}
