package wordlist

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bmdict/cli/internal/domain"
)

func decodeMsgpack(r io.Reader) ([]domain.WordEntry, error) {
	var records []any
	if err := msgpack.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode msgpack: %w", err)
	}
	return FromRecords(records), nil
}

func loadMsgpack(path string) ([]domain.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return decodeMsgpack(f)
}

// EncodeMsgpack writes entries as a msgpack array of maps, the layout
// decodeMsgpack reads back.
func EncodeMsgpack(w io.Writer, entries []domain.WordEntry) error {
	records := make([]map[string]string, len(entries))
	for i, e := range entries {
		records[i] = map[string]string{
			"word":       e.Word,
			"pos":        e.Pos,
			"definition": e.Definition,
		}
	}
	return msgpack.NewEncoder(w).Encode(records)
}
