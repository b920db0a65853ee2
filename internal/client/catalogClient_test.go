package client

import (
	"context"
	"errors"
	"file-shop-demo/internal/config"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeJSON = `[
  {"id": 1, "name": "Docs", "type": "folder", "path": "/Docs", "children": [
    {"id": 2, "name": "a.pdf", "type": "file", "path": "/Docs/a.pdf", "price": 50, "children": []}
  ]}
]`

func TestFileClientFetchTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fileData.json")
	require.NoError(t, os.WriteFile(path, []byte(treeJSON), 0o600))

	c := NewCatalogClient(&config.Catalog{File: path})

	tree, err := c.FetchTree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Docs", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, 50, tree[0].Children[0].Price)
}

func TestFileClientMissingFile(t *testing.T) {
	c := NewCatalogClient(&config.Catalog{File: filepath.Join(t.TempDir(), "nope.json")})

	_, err := c.FetchTree(context.Background())
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestFileClientBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fileData.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	c := NewCatalogClient(&config.Catalog{File: path})

	_, err := c.FetchTree(context.Background())
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestHTTPClientFetchTree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(treeJSON))
	}))
	defer srv.Close()

	c := NewCatalogClient(&config.Catalog{URL: srv.URL, FetchTimeout: 5 * time.Second})

	tree, err := c.FetchTree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, 1, tree[0].ID)
}

func TestHTTPClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCatalogClient(&config.Catalog{URL: srv.URL, FetchTimeout: 5 * time.Second})

	_, err := c.FetchTree(context.Background())
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}

func TestHTTPClientUnreachable(t *testing.T) {
	c := NewCatalogClient(&config.Catalog{URL: "http://127.0.0.1:1", FetchTimeout: time.Second})

	_, err := c.FetchTree(context.Background())
	assert.True(t, errors.Is(err, ErrCatalogUnavailable))
}
