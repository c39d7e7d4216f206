package format

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.UTC)

func getter(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLayoutsFrom(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{name: "defaults", values: nil, want: "2024-01-23 15:04"},
		{name: "dd/mm/yyyy", values: map[string]string{"display_date": "dd/mm/yyyy"}, want: "23/01/2024 15:04"},
		{name: "mm/dd/yyyy 12h", values: map[string]string{"display_date": "mm/dd/yyyy", "display_time": "12h"}, want: "01/23/2024 3:04 PM"},
		{name: "custom layout", values: map[string]string{"display_date": "Jan 02"}, want: "Jan 23 15:04"},
		{name: "unknown time falls back to 24h", values: map[string]string{"display_time": "36h"}, want: "2024-01-23 15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutsFrom(getter(tt.values))
			require.Equal(t, tt.want, testTime.In(time.UTC).Format(l.Date+" "+l.Time))
		})
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: -time.Hour, want: "just now"},
		{ago: 10 * time.Second, want: "just now"},
		{ago: time.Minute, want: "1 minute ago"},
		{ago: 45 * time.Minute, want: "45 minutes ago"},
		{ago: 3 * time.Hour, want: "3 hours ago"},
		{ago: 24 * time.Hour, want: "1 day ago"},
		{ago: 65 * 24 * time.Hour, want: "2 months ago"},
		{ago: 800 * 24 * time.Hour, want: "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Relative(testTime.Add(-tt.ago), testTime))
		})
	}
}

func TestTimestamp(t *testing.T) {
	l := Layouts{Date: "2006-01-02", Time: "15:04"}
	imported := testTime.Add(-2 * time.Hour).Format(time.RFC3339)

	got := Timestamp(imported, l, testTime)
	require.Contains(t, got, "(2 hours ago)")

	require.Equal(t, "not a time", Timestamp("not a time", l, testTime))
}

func TestDateTime_ReadsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bmdrc"), []byte("display_date=Jan 02 2006\n"), 0600))

	local := time.Date(2024, 1, 23, 15, 4, 0, 0, time.Local)
	require.Equal(t, "Jan 23 2024 15:04", DateTime(local))
}
