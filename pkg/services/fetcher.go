package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tikey/worlds/pkg/catalog"
	"github.com/tikey/worlds/pkg/utils"
)

// Fetcher loads the remote index document and normalizes it into catalog
// entries.
type Fetcher struct {
	client *utils.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: utils.NewClient(20 * time.Second)}
}

// FetchCatalog performs one GET of indexURL and returns the normalized
// entries. Relative paths inside the document resolve against baseURL.
// Undecodable bytes in the body are replaced rather than treated as an
// error.
func (f *Fetcher) FetchCatalog(indexURL, baseURL string) ([]catalog.Entry, error) {
	body, err := f.client.Fetch(indexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	text := strings.ToValidUTF8(string(body), "�")
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid catalog document: %w", err)
	}

	return catalog.Parse(raw, baseURL), nil
}
