package wordlist

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bmdict/cli/internal/domain"
)

// HTTPTimeout bounds a word list download.
const HTTPTimeout = 10 * time.Second

var httpClient = &http.Client{Timeout: HTTPTimeout}

func fetchJSON(ctx context.Context, url string) ([]domain.WordEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "bmd-cli")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	return decodeJSON(resp.Body)
}
