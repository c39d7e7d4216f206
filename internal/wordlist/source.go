package wordlist

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/paths"
)

// Format identifies how a source is decoded.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatHTTP
	FormatMsgpack
	FormatXLSX
	FormatHTML
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatHTTP:
		return "http"
	case FormatMsgpack:
		return "msgpack"
	case FormatXLSX:
		return "xlsx"
	case FormatHTML:
		return "html"
	case FormatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// DetectFormat picks the decoder for src from its scheme or extension.
func DetectFormat(src string) (Format, error) {
	lower := strings.ToLower(strings.TrimSpace(src))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return FormatHTTP, nil
	}

	switch filepath.Ext(lower) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".db", ".sqlite":
		return FormatSQLite, nil
	}
	return FormatUnknown, fmt.Errorf("unsupported word list format: %q", src)
}

// Load reads the whole list from src. Only HTTP sources observe ctx.
func Load(ctx context.Context, src string) ([]domain.WordEntry, error) {
	format, err := DetectFormat(src)
	if err != nil {
		return nil, err
	}

	var entries []domain.WordEntry
	switch format {
	case FormatHTTP:
		entries, err = fetchJSON(ctx, src)
	case FormatJSON:
		entries, err = loadJSON(src)
	case FormatMsgpack:
		entries, err = loadMsgpack(src)
	case FormatXLSX:
		entries, err = loadXLSX(src)
	case FormatHTML:
		entries, err = loadHTML(src)
	case FormatSQLite:
		entries, err = loadSQLite(src)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	return entries, nil
}

// SourceOptions are the inputs ResolveSource chooses between.
type SourceOptions struct {
	Flag       string // --words
	Env        string // $BMD_WORDS
	Config     string // config key "words"
	DBPath     string
	DBHasWords func(path string) bool
}

// ResolveSource returns the first non-empty of flag, env and config; then
// the imported database when it holds words; then wordnet.json in the working
// directory.
func ResolveSource(opts SourceOptions) string {
	for _, s := range []string{opts.Flag, opts.Env, opts.Config} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	if opts.DBPath != "" && opts.DBHasWords != nil && opts.DBHasWords(opts.DBPath) {
		return opts.DBPath
	}
	return paths.DefaultWordsFile
}
