package wordlist

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"

	"github.com/bmdict/cli/internal/domain"
)

var errNoWordTable = errors.New("no table with a word column")

func decodeHTML(r io.Reader) ([]domain.WordEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var (
		entries []domain.WordEntry
		found   bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}

		cols, ok := findColumns(rowTexts(rows.First()))
		if !ok {
			return true
		}

		found = true
		rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
			if e, ok := cols.entry(rowTexts(tr)); ok {
				entries = append(entries, e)
			}
		})
		return false
	})

	if !found {
		return nil, errNoWordTable
	}
	return entries, nil
}

func rowTexts(tr *goquery.Selection) []string {
	return tr.Find("th, td").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func loadHTML(path string) ([]domain.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return decodeHTML(f)
}
