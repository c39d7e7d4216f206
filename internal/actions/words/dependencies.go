package words

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/bmdict/cli/internal/config"
	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/log"
	"github.com/bmdict/cli/internal/paths"
	"github.com/bmdict/cli/internal/store"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/wordlist"
)

type Deps struct {
	// Source resolution
	Getenv     func(string) string
	ConfigGet  func(string) (string, bool)
	DBPath     func() string
	DBHasWords func(string) bool

	// Loading and storage
	Load      func(context.Context, string) ([]domain.WordEntry, error)
	OpenStore func(string) (domain.WordRepository, error)

	// Interactive lookup
	IsTerminal  func() bool
	RunProgram  func(tea.Model) error
	Copy        func(string) error
	ThemeConfig domain.ConfigProvider
	SystemDark  theme.SystemSignal
	ApplyTheme  func(theme.Theme)

	Logger  domain.Logger
	Now     func() time.Time
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Getenv:      os.Getenv,
		ConfigGet:   config.Get,
		DBPath:      paths.DBPath,
		DBHasWords:  wordlist.DBHasWords,
		Load:        wordlist.Load,
		OpenStore:   openStore,
		IsTerminal:  isInteractive,
		RunProgram:  runProgram,
		Copy:        clipboard.WriteAll,
		ThemeConfig: config.NewProvider(),
		SystemDark:  theme.TerminalDark,
		ApplyTheme:  func(t theme.Theme) { style.Apply(t.String()) },
		Logger:      log.Default(),
		Now:         time.Now,
		Printf:      fmt.Printf,
		Println:     fmt.Println,
	}
}

func openStore(path string) (domain.WordRepository, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runProgram(m tea.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}

// source picks the word list: --words, $BMD_WORDS, the words config key, the
// imported database, then wordnet.json.
func (d Deps) source(flags *dispatchers.ParsedFlags) string {
	configured, _ := d.ConfigGet("words")
	return wordlist.ResolveSource(wordlist.SourceOptions{
		Flag:       flags.String("--words", ""),
		Env:        d.Getenv("BMD_WORDS"),
		Config:     configured,
		DBPath:     d.DBPath(),
		DBHasWords: d.DBHasWords,
	})
}
