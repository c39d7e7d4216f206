package wordlist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bmdict/cli/internal/domain"
)

func decodeJSON(r io.Reader) ([]domain.WordEntry, error) {
	var records []any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return FromRecords(records), nil
}

func loadJSON(path string) ([]domain.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return decodeJSON(f)
}
