package wordlist

import "github.com/bmdict/cli/internal/domain"

// FromRecords keeps the records carrying a string "word" and converts them to
// entries in their original order.
func FromRecords(records []any) []domain.WordEntry {
	entries := make([]domain.WordEntry, 0, len(records))
	for _, r := range records {
		m, ok := asMap(r)
		if !ok {
			continue
		}
		word, ok := m["word"].(string)
		if !ok {
			continue
		}
		entries = append(entries, domain.WordEntry{
			Word:       word,
			Pos:        stringField(m, "pos"),
			Definition: stringField(m, "definition"),
		})
	}
	return entries
}

// asMap accepts both map shapes the decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
