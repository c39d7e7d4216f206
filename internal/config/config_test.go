package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setupTempHome(t *testing.T) string {
	t.Helper()
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	return tempHome
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bmdrc"), []byte(content), 0600))
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name         string
		setupContent string
		wantLines    []string
	}{
		{
			name:         "single line",
			setupContent: "theme=dark\n",
			wantLines:    []string{"theme=dark"},
		},
		{
			name:         "multiple lines",
			setupContent: "theme=dark\npager=more\nwords=/tmp/w.json\n",
			wantLines:    []string{"theme=dark", "pager=more", "words=/tmp/w.json"},
		},
		{
			name:         "lines with comments",
			setupContent: "# Comment\ntheme=light\n",
			wantLines:    []string{"# Comment", "theme=light"},
		},
		{
			name:         "Windows CRLF line endings",
			setupContent: "theme=dark\r\npager=more\r\n",
			wantLines:    []string{"theme=dark", "pager=more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)
			writeConfig(t, tempHome, tt.setupContent)

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.wantLines, got)

			info, err := os.Stat(filepath.Join(tempHome, ".bmdrc"))
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_SeedsDefaultsWhenMissing(t *testing.T) {
	tempHome := setupTempHome(t)
	configPath := filepath.Join(tempHome, ".bmdrc")

	_, err := os.Stat(configPath)
	require.True(t, os.IsNotExist(err))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, DefaultLines(), lines)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "# bmd configuration")
	require.Contains(t, string(content), "pager=\"less -FRSX\"")
	require.Contains(t, string(content), "# theme=")
}

func TestDefaultLines_ParseToDefaults(t *testing.T) {
	cfg, err := Parse(DefaultLines())
	require.NoError(t, err)

	require.Equal(t, "less -FRSX", cfg["pager"])
	require.Equal(t, "true", cfg["enable_log"])
	require.Equal(t, "info", cfg["log_level"])

	_, hasTheme := cfg["theme"]
	require.False(t, hasTheme, "empty defaults stay commented out")
	_, hasOverride := cfg["color_match"]
	require.False(t, hasOverride)
}

func TestWriteLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty lines", lines: []string{}},
		{name: "single line", lines: []string{"theme=dark"}},
		{name: "lines with comments", lines: []string{"# Comment", "theme=dark", "# Another comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)

			require.NoError(t, WriteLines(tt.lines))

			configPath := filepath.Join(tempHome, ".bmdrc")
			content, err := os.ReadFile(configPath)
			require.NoError(t, err)

			expected := ""
			for _, line := range tt.lines {
				expected += line + "\n"
			}
			require.Equal(t, expected, string(content))

			info, err := os.Stat(configPath)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())

			entries, err := os.ReadDir(tempHome)
			require.NoError(t, err)
			require.Len(t, entries, 1, "temp file should be renamed away")
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "theme",
			value:        "dark",
			wantLines:    []string{"theme=dark"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"theme=light", "pager=more"},
			key:          "theme",
			value:        "dark",
			wantLines:    []string{"theme=dark", "pager=more"},
			wantUpdated:  true,
		},
		{
			name:         "commented key is not updated",
			initialLines: []string{"# theme=", ""},
			key:          "theme",
			value:        "dark",
			wantLines:    []string{"# theme=", "", "theme=dark"},
		},
		{
			name:         "handles whitespace in existing line",
			initialLines: []string{"  theme  =  light  "},
			key:          "theme",
			value:        "dark",
			wantLines:    []string{"theme=dark"},
			wantUpdated:  true,
		},
		{
			name:         "quotes values with spaces",
			initialLines: []string{},
			key:          "pager",
			value:        "less -R",
			wantLines:    []string{"pager=\"less -R\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		wantLines    []string
		wantRemoved  bool
	}{
		{
			name:         "remove from empty",
			initialLines: []string{},
			key:          "theme",
			wantLines:    nil,
		},
		{
			name:         "remove existing key",
			initialLines: []string{"theme=dark", "pager=more"},
			key:          "theme",
			wantLines:    []string{"pager=more"},
			wantRemoved:  true,
		},
		{
			name:         "remove non-existent key",
			initialLines: []string{"theme=dark"},
			key:          "pager",
			wantLines:    []string{"theme=dark"},
		},
		{
			name:         "preserves comments and blank lines",
			initialLines: []string{"# Comment", "", "theme=dark", "pager=more"},
			key:          "theme",
			wantLines:    []string{"# Comment", "", "pager=more"},
			wantRemoved:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Unset(tt.initialLines, tt.key)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		key       string
		wantValue string
		wantFound bool
	}{
		{name: "set in file", content: "theme=dark\n", key: "theme", wantValue: "dark", wantFound: true},
		{name: "falls back to default", content: "theme=dark\n", key: "pager", wantValue: "less -FRSX", wantFound: true},
		{name: "known key with empty default", content: "pager=more\n", key: "words", wantValue: "", wantFound: true},
		{name: "unknown key set in file", content: "custom=1\n", key: "custom", wantValue: "1", wantFound: true},
		{name: "unknown key", content: "theme=dark\n", key: "nope", wantValue: "", wantFound: false},
		{name: "malformed file uses defaults", content: "garbage\n", key: "log_level", wantValue: "info", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)
			writeConfig(t, tempHome, tt.content)

			value, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGetAll(t *testing.T) {
	tempHome := setupTempHome(t)
	writeConfig(t, tempHome, "theme=dark\nlog_level=debug\n")

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "dark", all["theme"])
	require.Equal(t, "debug", all["log_level"])
	require.Equal(t, "less -FRSX", all["pager"])
	require.Contains(t, all, "color_match")
}

func TestProvider_SetUnset(t *testing.T) {
	tempHome := setupTempHome(t)
	p := NewProvider()

	require.NoError(t, p.Set("theme", "dark"))
	value, _ := p.Get("theme")
	require.Equal(t, "dark", value)

	require.NoError(t, p.Set("pager", "less -R"))
	value, _ = p.Get("pager")
	require.Equal(t, "less -R", value)

	require.NoError(t, p.Unset("theme"))
	value, found := p.Get("theme")
	require.True(t, found)
	require.Equal(t, "", value)

	_, err := os.Stat(filepath.Join(tempHome, lockFileName))
	require.True(t, os.IsNotExist(err), "lock file should be released")
}

func shortLockWait(t *testing.T) {
	t.Helper()
	prev := lockWait
	lockWait = 200 * time.Millisecond
	t.Cleanup(func() { lockWait = prev })
}

func TestWithLock_Timeout(t *testing.T) {
	tempHome := setupTempHome(t)
	shortLockWait(t)
	lockPath := filepath.Join(tempHome, lockFileName)
	require.NoError(t, os.WriteFile(lockPath, []byte("4242\n"), 0600))

	called := false
	err := WithLock(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrLockTimeout)
	require.False(t, called)

	var lockErr *LockTimeoutError
	require.ErrorAs(t, err, &lockErr)
	require.Equal(t, 4242, lockErr.PID)
	require.Contains(t, err.Error(), "held by process 4242")
}

func TestWithLock_UnreadableHolder(t *testing.T) {
	tempHome := setupTempHome(t)
	shortLockWait(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempHome, lockFileName), []byte("?"), 0600))

	err := WithLock(func() error { return nil })
	require.ErrorIs(t, err, ErrLockTimeout)
	require.Contains(t, err.Error(), "held by another process")
}

func TestWithLock_StaleLockIsTakenOver(t *testing.T) {
	tempHome := setupTempHome(t)
	shortLockWait(t)
	lockPath := filepath.Join(tempHome, lockFileName)
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	called := false
	require.NoError(t, WithLock(func() error {
		called = true
		return nil
	}))
	require.True(t, called)
	_, err := os.Stat(lockPath)
	require.True(t, os.IsNotExist(err))
}
