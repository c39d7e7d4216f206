package app

import (
	"github.com/bmdict/cli/internal/config"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/log"
	"github.com/bmdict/cli/internal/paths"
	"github.com/bmdict/cli/internal/store"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui"
	"github.com/bmdict/cli/internal/ui/style"
)

// Version is set at build time with -ldflags "-X github.com/bmdict/cli/internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
	Theme        theme.Theme

	// DBPath is the word database; empty uses paths.DBPath.
	DBPath string
}

// DefaultOptions reads logging and style settings from the config file and
// resolves the starting theme from the saved preference or the terminal.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled != "false",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		Theme:        theme.Resolve(theme.NewConfigStore(config.NewProvider()), theme.TerminalDark),
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// A log file that cannot be opened leaves logging off.
		if err := log.Init(logPath, opts.LogLevel); err == nil {
			logger = log.GetLogger()
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBPath()
	}
	words, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	current := opts.Theme
	if current == "" {
		current = theme.Light
	}
	style.Init(opts.StyleEnabled, current.String(), opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		ui.DisablePager()
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		ui.SetPagerOverride(opts.PagerOverride)
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	logger.Debug("app: started with theme %s, words db %s", current, dbPath)

	return &domain.Application{
		Words:  words,
		Config: config.NewProvider(),
		Logger: logger,
		Output: ui.NewWriter(writerOpts...),
		Styler: style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Words is left nil; callers that need it supply their own store.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Words != nil {
		_ = app.Words.Close()
	}
	return nil
}
