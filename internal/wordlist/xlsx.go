package wordlist

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bmdict/cli/internal/domain"
)

func loadXLSX(path string) ([]domain.WordEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, ok := findColumns(rows[0])
	if !ok {
		return nil, fmt.Errorf("sheet %q: header has no word column", sheets[0])
	}

	var entries []domain.WordEntry
	for _, row := range rows[1:] {
		if e, ok := cols.entry(row); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// WriteXLSX saves entries to a one-sheet workbook with a word/pos/definition
// header.
func WriteXLSX(path string, entries []domain.WordEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []any{"word", "pos", "definition"}); err != nil {
		return err
	}
	for i, e := range entries {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(addr, []any{e.Word, e.Pos, e.Definition}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}
