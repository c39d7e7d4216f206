package main

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/bmdict/cli/internal/usage"
)

func TestExtractFlagsAndCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantCommands []string
	}{
		{
			name:         "no flags or commands",
			args:         []string{},
			wantFlags:    []string{},
			wantCommands: []string{},
		},
		{
			name:         "only commands",
			args:         []string{"theme", "toggle"},
			wantFlags:    []string{},
			wantCommands: []string{"theme", "toggle"},
		},
		{
			name:         "boolean flags",
			args:         []string{"--help", "-h", "--json"},
			wantFlags:    []string{"--help", "-h", "--json"},
			wantCommands: []string{},
		},
		{
			name:         "numeric shorthand -5",
			args:         []string{"-5"},
			wantFlags:    []string{"--limit=5"},
			wantCommands: []string{},
		},
		{
			name:         "numeric shorthand -10",
			args:         []string{"-10"},
			wantFlags:    []string{"--limit=10"},
			wantCommands: []string{},
		},
		{
			name:         "invalid numeric -0",
			args:         []string{"-0"},
			wantFlags:    []string{"-0"},
			wantCommands: []string{},
		},
		{
			name:         "-n with space-separated value",
			args:         []string{"-n", "3"},
			wantFlags:    []string{"--limit=3"},
			wantCommands: []string{},
		},
		{
			name:         "-n with equals",
			args:         []string{"-n=5"},
			wantFlags:    []string{"--limit=5"},
			wantCommands: []string{},
		},
		{
			name:         "--limit with space-separated value",
			args:         []string{"--limit", "10"},
			wantFlags:    []string{"--limit=10"},
			wantCommands: []string{},
		},
		{
			name:         "--words with space-separated value",
			args:         []string{"lookup", "--words", "list.xlsx"},
			wantFlags:    []string{"--words=list.xlsx"},
			wantCommands: []string{"lookup"},
		},
		{
			name:         "--words url with equals",
			args:         []string{"--words=https://example.com/w.json?v=1"},
			wantFlags:    []string{"--words=https://example.com/w.json?v=1"},
			wantCommands: []string{},
		},
		{
			name:         "pager flag",
			args:         []string{"--pager", "less"},
			wantFlags:    []string{"--pager=less"},
			wantCommands: []string{},
		},
		{
			name:         "-n without value",
			args:         []string{"-n"},
			wantFlags:    []string{"-n"},
			wantCommands: []string{},
		},
		{
			name:         "value flag followed by flag",
			args:         []string{"--words", "--json"},
			wantFlags:    []string{"--words", "--json"},
			wantCommands: []string{},
		},
		{
			name:         "real-world suggest",
			args:         []string{"suggest", "ap", "-3", "--json", "--words", "w.json"},
			wantFlags:    []string{"--limit=3", "--json", "--words=w.json"},
			wantCommands: []string{"suggest", "ap"},
		},
		{
			name:         "empty argument skipped",
			args:         []string{"define", ""},
			wantFlags:    []string{},
			wantCommands: []string{"define"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotCommands := extractFlagsAndCommands(tt.args)

			if !reflect.DeepEqual(gotFlags, tt.wantFlags) {
				t.Errorf("extractFlagsAndCommands() flags = %v, want %v", gotFlags, tt.wantFlags)
			}
			if !reflect.DeepEqual(gotCommands, tt.wantCommands) {
				t.Errorf("extractFlagsAndCommands() commands = %v, want %v", gotCommands, tt.wantCommands)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		wantOut string
	}{
		{name: "nil", err: nil, want: 0, wantOut: ""},
		{name: "missing argument", err: usage.MissingArgument("word"), want: 2},
		{name: "not found", err: usage.NotFound("zzz"), want: 1},
		{name: "plain error", err: errors.New("boom"), want: 1, wantOut: "boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got := exitCode(tt.err, &stderr)
			if got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
			if tt.wantOut != "" && stderr.String() != tt.wantOut {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantOut)
			}
			if tt.err != nil && stderr.Len() == 0 {
				t.Error("expected error on stderr")
			}
		})
	}
}
