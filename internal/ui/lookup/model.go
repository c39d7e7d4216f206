// Package lookup is the interactive dictionary: a search box with live
// suggestions over the loaded word list and a detail panel for the chosen
// entry.
package lookup

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/suggest"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/wordlist"
)

// LoadFunc fetches the word list. It runs once, off the event loop.
type LoadFunc func(ctx context.Context) ([]domain.WordEntry, error)

// Config wires a Model to its collaborators.
type Config struct {
	Source string
	Load   LoadFunc
	Theme  *theme.Controller
	Copy   func(string) error
	Logger domain.Logger
}

type wordsLoadedMsg struct {
	entries []domain.WordEntry
	err     error
}

// Model is the bubbletea model for `bmd lookup`.
type Model struct {
	ctx    context.Context
	source string
	load   LoadFunc
	copy   func(string) error
	logger domain.Logger
	theme  *theme.Controller

	words *wordlist.Store
	index *suggest.Index
	state suggest.State

	selected *domain.WordEntry
	hovering bool

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width  int
	height int
	status string
}

// New builds the model in its loading state.
func New(ctx context.Context, cfg Config) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Search for a word"
	input.CharLimit = 0

	m := Model{
		ctx:     ctx,
		source:  cfg.Source,
		load:    cfg.Load,
		copy:    cfg.Copy,
		logger:  cfg.Logger,
		theme:   cfg.Theme,
		words:   wordlist.NewStore(cfg.Logger),
		state:   suggest.NewState(),
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.restyle()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadWords())
}

func (m Model) loadWords() tea.Cmd {
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		if load == nil {
			return wordsLoadedMsg{err: fmt.Errorf("no word list loader")}
		}
		entries, err := load(ctx)
		return wordsLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case wordsLoadedMsg:
		m.words.Finish(m.source, msg.entries, msg.err)
		m.index = suggest.NewIndex(m.words.Entries())
		return m, m.input.Focus()

	case spinner.TickMsg:
		if !m.words.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.words.Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.words.InputEnabled() {
		return m, nil
	}

	// The detail panel is modal.
	if m.selected != nil {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.selected = nil
			m.status = ""
		case key.Matches(msg, m.keys.Copy):
			m.copySelected()
		case key.Matches(msg, m.keys.Theme):
			m.toggleTheme()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.dispatch(suggest.CursorUp{})
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.dispatch(suggest.CursorDown{})
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.dispatch(suggest.Enter{})
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.dispatch(suggest.SearchTriggered{})
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.dispatch(suggest.Escape{})
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.status = ""
		m.dispatch(suggest.TextChanged{Text: after})
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.words.InputEnabled() {
		return m, nil
	}

	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.selected != nil {
		if leftPress {
			panel := centered(m.width, m.height, RenderDetail(m.selected, m.width))
			if closeTarget(panel).contains(msg.X, msg.Y) {
				m.selected = nil
				m.status = ""
			}
		}
		return m, nil
	}

	row := rowAt(m.state, msg.Y)
	switch {
	case leftPress && row >= 0:
		m.hovering = false
		m.dispatch(suggest.Activate{Index: row})
	case msg.Action == tea.MouseActionMotion && row >= 0:
		m.hovering = true
		m.dispatch(suggest.Hover{Index: row})
	case msg.Action == tea.MouseActionMotion && m.hovering:
		m.hovering = false
		m.dispatch(suggest.Hover{Index: -1})
	}
	return m, nil
}

// dispatch runs ev through the reducer and takes ownership of any selection
// it produces.
func (m *Model) dispatch(ev suggest.Event) {
	var picked *domain.WordEntry
	m.state, picked = suggest.Reduce(m.state, ev, m.index)
	if picked != nil {
		m.selected = picked
		m.input.SetValue(picked.Word)
		m.input.CursorEnd()
	}
}

func (m *Model) toggleTheme() {
	if m.theme == nil {
		return
	}
	next, err := m.theme.Toggle()
	m.restyle()
	if err != nil {
		m.status = fmt.Sprintf("Theme: %s (not saved)", next)
		return
	}
	m.status = "Theme: " + next.String()
}

func (m *Model) copySelected() {
	if m.selected == nil {
		return
	}
	if m.copy == nil {
		m.status = "Clipboard unavailable"
		return
	}
	if err := m.copy(CopyText(*m.selected)); err != nil {
		if m.logger != nil {
			m.logger.Warn("lookup: copy to clipboard failed: %v", err)
		}
		m.status = "Copy failed"
		return
	}
	m.status = "Copied " + m.selected.Word
}

// restyle picks up the active palette after a theme change.
func (m *Model) restyle() {
	colors := style.GetColors()
	active := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIActive))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))

	m.input.PromptStyle = active
	m.input.PlaceholderStyle = muted
	m.spinner.Style = active
	m.help.Styles.ShortKey = active
	m.help.Styles.ShortDesc = muted
	m.help.Styles.ShortSeparator = muted
}

// Selected returns the entry shown in the detail panel, if any.
func (m Model) Selected() *domain.WordEntry {
	return m.selected
}

// State returns the current search state.
func (m Model) State() suggest.State {
	return m.state
}

func (m Model) View() string {
	base := m.baseView()
	if m.selected == nil {
		return base
	}
	return overlay.Composite(
		RenderDetail(m.selected, m.width),
		base,
		overlay.Center,
		overlay.Center,
		0, 0,
	)
}

func (m Model) baseView() string {
	colors := style.GetColors()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Info))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))

	header := titleStyle.Render("bmd lookup")
	if !m.words.Loading() {
		header += mutedStyle.Render(fmt.Sprintf(" (%d words)", len(m.words.Entries())))
	}
	if m.theme != nil {
		header += mutedStyle.Render("  theme: " + m.theme.Current().String())
	}

	var body string
	if m.words.Loading() {
		body = m.spinner.View() + " Loading words..."
	} else {
		body = renderSuggestions(m.state, m.width)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		mutedStyle.Render(m.status),
		m.input.View(),
		"",
		body,
	)

	bindings := m.keys.searchHelp()
	if m.selected != nil {
		bindings = m.keys.detailHelp()
	}
	footer := m.help.ShortHelpView(bindings)

	if m.height <= 1 {
		return content + "\n" + footer
	}
	return lipgloss.NewStyle().Height(m.height-1).Render(content) + "\n" + footer
}
