package suggest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmdict/cli/internal/domain"
)

var table = domain.WordEntry{Word: "table", Pos: "noun", Definition: "a piece of furniture"}

func sampleIndex() *Index {
	return NewIndex([]domain.WordEntry{
		{Word: "tab", Pos: "noun"},
		table,
		{Word: "Tablet", Pos: "noun"},
		{Word: "cat", Pos: "noun"},
		{Word: "table", Pos: "verb", Definition: "to postpone"},
		{Word: ""},
		{Word: "tableau", Pos: "noun"},
	})
}

// linearPrefix is the straightforward filter the index must agree with.
func linearPrefix(entries []domain.WordEntry, query string, limit int) []domain.WordEntry {
	var out []domain.WordEntry
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Word), query) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func TestIndex_PrefixMatchesLinearFilter(t *testing.T) {
	var entries []domain.WordEntry
	for i := 0; i < 40; i++ {
		entries = append(entries, domain.WordEntry{Word: fmt.Sprintf("w%02d", 39-i)})
		entries = append(entries, domain.WordEntry{Word: fmt.Sprintf("W%d", i%3)})
	}
	ix := NewIndex(entries)

	for _, q := range []string{"w", "w0", "w1", "w2", "w3", "w39", "w00", "x", "w4"} {
		t.Run(q, func(t *testing.T) {
			require.Equal(t, linearPrefix(entries, q, MaxSuggestions), ix.Prefix(q, MaxSuggestions))
		})
	}
}

func TestIndex_Exact(t *testing.T) {
	ix := sampleIndex()

	got, ok := ix.Exact("table")
	require.True(t, ok)
	require.Equal(t, table, got, "first duplicate wins")

	got, ok = ix.Exact("tablet")
	require.True(t, ok)
	require.Equal(t, "Tablet", got.Word)

	_, ok = ix.Exact("tabl")
	require.False(t, ok)

	_, ok = ix.Exact("")
	require.False(t, ok)
}

func TestIndex_Nil(t *testing.T) {
	var ix *Index
	require.Zero(t, ix.Len())
	require.Empty(t, ix.Prefix("a", 10))
	_, ok := ix.Exact("a")
	require.False(t, ok)
}

func TestReduce_TextChanged(t *testing.T) {
	ix := sampleIndex()

	s, sel := Reduce(NewState(), TextChanged{Text: "  TAB "}, ix)
	require.Nil(t, sel)
	require.Equal(t, "  TAB ", s.Input)
	require.True(t, s.Visible)
	require.Equal(t, -1, s.Cursor)
	require.Len(t, s.Matches, 5)
	for _, m := range s.Matches {
		require.True(t, strings.HasPrefix(strings.ToLower(m.Word), "tab"))
	}
	require.Equal(t, "tab", s.Matches[0].Word)
	require.Equal(t, table, s.Matches[1])
	require.Equal(t, "Tablet", s.Matches[2].Word)

	s, _ = Reduce(s, TextChanged{Text: "zzz"}, ix)
	require.True(t, s.Visible)
	require.Empty(t, s.Matches)
}

func TestReduce_TextChangedCapsAtTen(t *testing.T) {
	var entries []domain.WordEntry
	for i := 0; i < 25; i++ {
		entries = append(entries, domain.WordEntry{Word: fmt.Sprintf("alpha%d", i)})
	}

	s, _ := Reduce(NewState(), TextChanged{Text: "a"}, NewIndex(entries))
	require.Len(t, s.Matches, MaxSuggestions)
	require.Equal(t, entries[:MaxSuggestions], s.Matches)
}

func TestReduce_ClearingInput(t *testing.T) {
	ix := sampleIndex()

	for _, text := range []string{"", "   ", "\t"} {
		s, _ := Reduce(NewState(), TextChanged{Text: "ta"}, ix)
		s, _ = Reduce(s, CursorDown{}, ix)

		s, _ = Reduce(s, TextChanged{Text: text}, ix)
		require.Empty(t, s.Matches)
		require.False(t, s.Visible)
		require.Equal(t, -1, s.Cursor)
	}
}

func TestReduce_CursorWraps(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)
	n := len(s.Matches)

	s, _ = Reduce(s, CursorUp{}, ix)
	require.Equal(t, n-1, s.Cursor, "up from -1 wraps to last")

	s, _ = Reduce(s, CursorDown{}, ix)
	require.Equal(t, 0, s.Cursor, "down from last wraps to 0")

	s, _ = Reduce(s, CursorUp{}, ix)
	require.Equal(t, n-1, s.Cursor, "up from 0 wraps to last")

	s.Cursor = -1
	s, _ = Reduce(s, CursorDown{}, ix)
	require.Equal(t, 0, s.Cursor)
	s, _ = Reduce(s, CursorDown{}, ix)
	require.Equal(t, 1, s.Cursor)
}

func TestReduce_CursorOnEmptyMatches(t *testing.T) {
	s := NewState()

	s, _ = Reduce(s, CursorDown{}, nil)
	require.Equal(t, -1, s.Cursor)
	require.True(t, s.Visible, "arrow down reveals the list")

	s, _ = Reduce(s, CursorUp{}, nil)
	require.Equal(t, -1, s.Cursor)
}

func TestReduce_CursorDownRevealsHiddenList(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)
	s, _ = Reduce(s, Escape{}, ix)
	require.False(t, s.Visible)

	s, _ = Reduce(s, CursorDown{}, ix)
	require.True(t, s.Visible)
	require.Equal(t, 0, s.Cursor)
}

func TestReduce_RecomputeResetsCursor(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "ta"}, ix)
	s, _ = Reduce(s, CursorDown{}, ix)
	s, _ = Reduce(s, CursorDown{}, ix)
	require.Equal(t, 1, s.Cursor)

	s, _ = Reduce(s, TextChanged{Text: "tab"}, ix)
	require.Equal(t, -1, s.Cursor)

	s, _ = Reduce(s, CursorDown{}, ix)
	s, _ = Reduce(s, SearchTriggered{}, ix)
	require.Equal(t, -1, s.Cursor)
}

func TestReduce_SearchTriggered(t *testing.T) {
	ix := sampleIndex()

	s := NewState()
	s.Input = "Table"
	s, sel := Reduce(s, SearchTriggered{}, ix)
	require.Nil(t, sel)
	require.Equal(t, []domain.WordEntry{table}, s.Matches)
	require.True(t, s.Visible)

	s.Input = "tabl"
	s, _ = Reduce(s, SearchTriggered{}, ix)
	require.Empty(t, s.Matches)
	require.True(t, s.Visible, "no results is distinct from nothing typed")

	s.Input = "  "
	s, _ = Reduce(s, SearchTriggered{}, ix)
	require.Empty(t, s.Matches)
	require.False(t, s.Visible)
}

func TestReduce_EnterWithoutHighlightSearches(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "table"}, ix)
	require.Len(t, s.Matches, 3)

	s, sel := Reduce(s, Enter{}, ix)
	require.Nil(t, sel)
	require.Equal(t, []domain.WordEntry{table}, s.Matches)
	require.True(t, s.Visible)
}

func TestReduce_EnterActivatesHighlighted(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)
	s, _ = Reduce(s, CursorDown{}, ix)
	s, _ = Reduce(s, CursorDown{}, ix)
	s, _ = Reduce(s, CursorDown{}, ix)

	s, sel := Reduce(s, Enter{}, ix)
	require.NotNil(t, sel)
	require.Equal(t, "Tablet", sel.Word)
	require.Equal(t, "Tablet", s.Input)
	require.Empty(t, s.Matches)
	require.False(t, s.Visible)
	require.Equal(t, -1, s.Cursor)
}

func TestReduce_Activate(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)

	s, sel := Reduce(s, Activate{Index: 1}, ix)
	require.NotNil(t, sel)
	require.Equal(t, table, *sel)
	require.Equal(t, "table", s.Input)
	require.Empty(t, s.Matches)
	require.False(t, s.Visible)

	before := s
	s, sel = Reduce(s, Activate{Index: 0}, ix)
	require.Nil(t, sel, "activating with no matches is ignored")
	require.Equal(t, before, s)
}

func TestReduce_EscapeKeepsMatchesAndInput(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)
	s, _ = Reduce(s, CursorDown{}, ix)
	matches := s.Matches

	s, _ = Reduce(s, Escape{}, ix)
	require.False(t, s.Visible)
	require.Equal(t, -1, s.Cursor)
	require.Equal(t, matches, s.Matches)
	require.Equal(t, "tab", s.Input)
}

func TestReduce_Hover(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)
	matches := s.Matches

	s, _ = Reduce(s, Hover{Index: 2}, ix)
	require.Equal(t, 2, s.Cursor)

	s, _ = Reduce(s, Hover{Index: 99}, ix)
	require.Equal(t, 2, s.Cursor, "out of range hover is ignored")

	s, _ = Reduce(s, Hover{Index: -1}, ix)
	require.Equal(t, -1, s.Cursor)
	require.Equal(t, matches, s.Matches)
}

func TestState_Highlighted(t *testing.T) {
	ix := sampleIndex()
	s, _ := Reduce(NewState(), TextChanged{Text: "tab"}, ix)

	_, ok := s.Highlighted()
	require.False(t, ok)

	s, _ = Reduce(s, CursorDown{}, ix)
	e, ok := s.Highlighted()
	require.True(t, ok)
	require.Equal(t, "tab", e.Word)
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		input  string
		want   Segments
		wantOK bool
	}{
		{name: "prefix", word: "Tablet", input: "tab", want: Segments{Match: "Tab", After: "let"}, wantOK: true},
		{name: "trimmed input", word: "table", input: "  BLE ", want: Segments{Before: "ta", Match: "ble"}, wantOK: true},
		{name: "middle", word: "notable", input: "tab", want: Segments{Before: "no", Match: "tab", After: "le"}, wantOK: true},
		{name: "first occurrence", word: "abab", input: "ab", want: Segments{Match: "ab", After: "ab"}, wantOK: true},
		{name: "unicode", word: "Ärger", input: "äR", want: Segments{Match: "Är", After: "ger"}, wantOK: true},
		{name: "absent", word: "cat", input: "dog", want: Segments{Before: "cat"}},
		{name: "blank input", word: "cat", input: "  ", want: Segments{Before: "cat"}},
		{name: "longer than word", word: "ca", input: "cat", want: Segments{Before: "ca"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Highlight(tt.word, tt.input)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.word, got.Before+got.Match+got.After)
		})
	}
}
