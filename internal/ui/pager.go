// Package ui holds terminal output helpers: the stdout writer and the pager.
//
// The pager command comes from config or $PAGER and is executed as given,
// the same way git and man treat their pager settings.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

const defaultPager = "less -FRSX"

var (
	pagerDisabled bool
	pagerOverride string
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager for this process (--no-pager).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// PagerDisabled reports whether DisablePager was called.
func PagerDisabled() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled
}

// SetPagerOverride makes cmd the pager for this process (--pager), ahead of
// config and $PAGER.
func SetPagerOverride(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// PagerOverride returns the command set by SetPagerOverride.
func PagerOverride() string {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerOverride
}

// ResolvePager picks the pager argv.
//
// Precedence:
//  1. config pager
//  2. $PAGER
//  3. "less -FRSX"
//
// A nil result means "print directly": the chosen command is "cat" or blank.
func ResolvePager(configPager, envPager string) []string {
	cmd := defaultPager
	switch {
	case configPager != "":
		cmd = configPager
	case envPager != "":
		cmd = envPager
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

// runPager pipes content through argv, falling back to out on failure.
func runPager(argv []string, content string, out io.Writer) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_, _ = fmt.Fprint(out, content)
	}
}
