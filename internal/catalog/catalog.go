// Package catalog supplies the immutable list of names to learn. The list
// can come from a remote JSON catalog or from the bundled dataset; remote
// failures always degrade to the bundled copy so the caller gets a usable
// snapshot either way.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/example/husnabot/pkg/models"
)

// Provider fetches the name catalog.
type Provider struct {
	url    string
	client *http.Client
}

// NewProvider creates a provider. The remote catalog URL is taken from the
// CATALOG_URL environment variable; when unset only the bundled dataset is
// used.
func NewProvider() *Provider {
	return &Provider{
		url: os.Getenv("CATALOG_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// remoteName is the wire form of a catalog entry.
type remoteName struct {
	Number          int      `json:"number"`
	Transliteration string   `json:"transliteration"`
	Arabic          string   `json:"arabic"`
	Meaning         string   `json:"meaning"`
	Aliases         []string `json:"aliases"`
}

// Names returns the catalog snapshot. A configured remote catalog is
// preferred; any fetch or decode failure falls back to the bundled
// dataset.
func (p *Provider) Names(ctx context.Context) []models.Name {
	if p.url == "" {
		return BundledNames()
	}

	names, err := p.fetchRemote(ctx)
	if err != nil {
		log.Printf("Remote catalog unavailable, using bundled dataset: %v", err)
		return BundledNames()
	}
	return names
}

// fetchRemote downloads and decodes the remote catalog.
func (p *Provider) fetchRemote(ctx context.Context) ([]models.Name, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %v", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch returned status %d", resp.StatusCode)
	}

	var entries []remoteName
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %v", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("remote catalog is empty")
	}

	names := make([]models.Name, 0, len(entries))
	for _, e := range entries {
		if e.Transliteration == "" || e.Meaning == "" {
			continue
		}
		names = append(names, models.Name{
			ID:              int64(e.Number),
			Number:          e.Number,
			Transliteration: e.Transliteration,
			Arabic:          e.Arabic,
			Meaning:         e.Meaning,
			Aliases:         e.Aliases,
		})
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("remote catalog had no usable entries")
	}
	return names, nil
}
