package client

import (
	"context"
	"encoding/json"
	"errors"
	"file-shop-demo/internal/config"
	"file-shop-demo/internal/model"
	"fmt"
	"net/http"
	"os"
)

// ErrCatalogUnavailable means the catalog source could not be reached or its
// payload could not be parsed. Callers degrade to an empty listing.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

type CatalogClient interface {
	FetchTree(ctx context.Context) ([]*model.CatalogNode, error)
}

type httpCatalogClient struct {
	httpClient *http.Client
	catalogURL string
}

type fileCatalogClient struct {
	path string
}

// NewCatalogClient picks the HTTP source when a catalog URL is configured and
// falls back to the local file otherwise.
func NewCatalogClient(catalogCfg *config.Catalog) CatalogClient {
	if catalogCfg.URL != "" {
		return &httpCatalogClient{
			httpClient: &http.Client{
				Timeout: catalogCfg.FetchTimeout,
			},
			catalogURL: catalogCfg.URL,
		}
	}
	return &fileCatalogClient{path: catalogCfg.File}
}

func (c *httpCatalogClient) FetchTree(ctx context.Context) ([]*model.CatalogNode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: catalog source returned %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	var tree []*model.CatalogNode
	if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %v", ErrCatalogUnavailable, err)
	}

	return tree, nil
}

func (c *fileCatalogClient) FetchTree(ctx context.Context) ([]*model.CatalogNode, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	var tree []*model.CatalogNode
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %v", ErrCatalogUnavailable, err)
	}

	return tree, nil
}
