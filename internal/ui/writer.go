package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/bmdict/cli/internal/config"
	"github.com/bmdict/cli/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithConfigGetter sets where the "pager" key is read from.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter replaces os.Getenv for $PAGER lookups.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a Writer on stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager shows content through the resolved pager when the output is a
// terminal, and prints it directly otherwise.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled || PagerDisabled() || !w.isTerminal() {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	var configPager, envPager string
	if w.configGetter != nil {
		configPager, _ = w.configGetter("pager")
	}
	if w.envGetter != nil {
		envPager = w.envGetter("PAGER")
	}
	if override := PagerOverride(); override != "" {
		configPager = override
	}

	argv := ResolvePager(configPager, envPager)
	if argv == nil {
		_, _ = fmt.Fprint(w.out, content)
		return
	}
	runPager(argv, content, w.out)
}

func (w *Writer) isTerminal() bool {
	f, ok := w.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ domain.OutputWriter = (*Writer)(nil)

// Pager pages content on stdout with the pager from config or $PAGER.
func Pager(content string) {
	NewWriter(WithConfigGetter(config.Get)).Pager(content)
}
