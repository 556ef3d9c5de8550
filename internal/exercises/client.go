package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"therapy-backend/internal/shared/telemetry"
)

// DefaultCatalogURL is the public exercise catalog the backend loads from.
const DefaultCatalogURL = "https://raw.githubusercontent.com/yuhonas/free-exercise-db/main/dist/exercises.json"

const maxCatalogBytes = 32 << 20 // 32MB

// Client fetches the remote exercise catalog. The base URL and timeout are
// explicit configuration, not process-wide globals.
type Client struct {
	catalogURL string
	httpClient *http.Client
}

// NewClient builds a catalog client. Empty catalogURL falls back to the
// public catalog; timeout <= 0 falls back to 30s.
func NewClient(catalogURL string, timeout time.Duration) *Client {
	if catalogURL == "" {
		catalogURL = DefaultCatalogURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		catalogURL: catalogURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes the catalog. Malformed entries are skipped
// individually, matching how partial catalog corruption should degrade; the
// call as a whole fails only when the payload itself is unusable.
func (c *Client) Fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read catalog body: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("decode catalog: %w", err)
	}

	records := make([]Exercise, 0, len(raw))
	skipped := 0
	for _, entry := range raw {
		var ex Exercise
		if err := json.Unmarshal(entry, &ex); err != nil {
			skipped++
			continue
		}
		if ex.Name == "" {
			skipped++
			continue
		}
		if ex.Level == "" {
			ex.Level = "beginner"
		}
		if ex.Category == "" {
			ex.Category = "general"
		}
		records = append(records, ex)
	}

	if skipped > 0 {
		telemetry.Info("catalog.entries_skipped", map[string]any{
			"skipped": skipped,
			"parsed":  len(records),
		})
	}

	return Snapshot{
		Exercises: records,
		FetchedAt: time.Now().UTC(),
		Source:    SourceRemote,
	}, nil
}
