package suggest

import (
	"strings"

	"github.com/bmdict/cli/internal/domain"
)

// MaxSuggestions caps the prefix match list.
const MaxSuggestions = 10

// State is the search box state. Cursor is -1 when nothing is highlighted,
// otherwise a valid index into Matches.
type State struct {
	Input   string
	Matches []domain.WordEntry
	Cursor  int
	Visible bool
}

// NewState returns the empty search state.
func NewState() State {
	return State{Cursor: -1}
}

// Highlighted returns the entry under the cursor, if any.
func (s State) Highlighted() (domain.WordEntry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Matches) {
		return domain.WordEntry{}, false
	}
	return s.Matches[s.Cursor], true
}

// Event is an input to Reduce.
type Event interface {
	event()
}

type (
	// TextChanged carries the full input text after a keystroke.
	TextChanged struct{ Text string }
	// SearchTriggered runs an exact match on the current input.
	SearchTriggered struct{}
	CursorDown      struct{}
	CursorUp        struct{}
	// Enter activates the highlighted match, or triggers a search.
	Enter  struct{}
	Escape struct{}
	// Activate selects Matches[Index].
	Activate struct{ Index int }
	// Hover moves the cursor to Index, or clears it for -1.
	Hover struct{ Index int }
)

func (TextChanged) event()     {}
func (SearchTriggered) event() {}
func (CursorDown) event()      {}
func (CursorUp) event()        {}
func (Enter) event()           {}
func (Escape) event()          {}
func (Activate) event()        {}
func (Hover) event()           {}

// Reduce applies ev to s. The returned entry is non-nil only when ev
// activated a suggestion. s is not modified.
func Reduce(s State, ev Event, ix *Index) (State, *domain.WordEntry) {
	switch ev := ev.(type) {
	case TextChanged:
		s.Input = ev.Text
		query := normalize(ev.Text)
		s.Cursor = -1
		if query == "" {
			s.Matches = nil
			s.Visible = false
			return s, nil
		}
		s.Matches = ix.Prefix(query, MaxSuggestions)
		s.Visible = true
		return s, nil

	case SearchTriggered:
		return search(s, ix), nil

	case CursorDown:
		s.Visible = true
		n := len(s.Matches)
		switch {
		case n == 0:
			s.Cursor = -1
		case s.Cursor < n-1:
			s.Cursor++
		default:
			s.Cursor = 0
		}
		return s, nil

	case CursorUp:
		n := len(s.Matches)
		switch {
		case n == 0:
			s.Cursor = -1
		case s.Cursor > 0:
			s.Cursor--
		default:
			s.Cursor = n - 1
		}
		return s, nil

	case Enter:
		if s.Cursor >= 0 && s.Cursor < len(s.Matches) {
			return activate(s, s.Cursor)
		}
		return search(s, ix), nil

	case Escape:
		s.Visible = false
		s.Cursor = -1
		return s, nil

	case Activate:
		if ev.Index < 0 || ev.Index >= len(s.Matches) {
			return s, nil
		}
		return activate(s, ev.Index)

	case Hover:
		if ev.Index == -1 || (ev.Index >= 0 && ev.Index < len(s.Matches)) {
			s.Cursor = ev.Index
		}
		return s, nil
	}

	return s, nil
}

func search(s State, ix *Index) State {
	query := normalize(s.Input)
	s.Cursor = -1
	if query == "" {
		s.Matches = nil
		s.Visible = false
		return s
	}

	s.Visible = true
	if entry, ok := ix.Exact(query); ok {
		s.Matches = []domain.WordEntry{entry}
	} else {
		s.Matches = nil
	}
	return s
}

func activate(s State, i int) (State, *domain.WordEntry) {
	entry := s.Matches[i]
	s.Input = entry.Word
	s.Matches = nil
	s.Visible = false
	s.Cursor = -1
	return s, &entry
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
