package service

import (
	"context"
	"file-shop-demo/internal/client"
	"file-shop-demo/internal/model"
	"strconv"
	"sync"
)

// CatalogService resolves folder ids to their immediate children. The tree is
// fetched from the external source once and cached; Refresh re-fetches.
type CatalogService interface {
	// ListChildren returns the root listing for an empty folderID, the first
	// preorder match's children for a known id, and an empty slice for an
	// unknown one. The returned slice is a copy callers may reorder freely.
	ListChildren(ctx context.Context, folderID string) ([]*model.CatalogNode, error)
	FindNode(ctx context.Context, nodeID string) (*model.CatalogNode, error)
	Refresh(ctx context.Context) error
}

type catalogServiceImpl struct {
	catalogClient client.CatalogClient

	mu    sync.RWMutex
	roots []*model.CatalogNode
	index map[string]*model.CatalogNode // preorder, first write wins
}

func NewCatalogService(catalogClient client.CatalogClient) CatalogService {
	return &catalogServiceImpl{
		catalogClient: catalogClient,
	}
}

func (s *catalogServiceImpl) ListChildren(ctx context.Context, folderID string) ([]*model.CatalogNode, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if folderID == "" {
		return copyNodes(s.roots), nil
	}

	node, ok := s.index[folderID]
	if !ok {
		// unknown folder id is "no items", not an error
		return []*model.CatalogNode{}, nil
	}

	// First preorder match wins even when its children are empty; the index
	// never overwrites, so duplicate ids resolve the same way a depth-first
	// walk would.
	return copyNodes(node.Children), nil
}

func (s *catalogServiceImpl) FindNode(ctx context.Context, nodeID string) (*model.CatalogNode, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index[nodeID], nil
}

func (s *catalogServiceImpl) Refresh(ctx context.Context) error {
	tree, err := s.catalogClient.FetchTree(ctx)
	if err != nil {
		return err
	}

	index := make(map[string]*model.CatalogNode)
	for _, root := range tree {
		indexSubtree(root, index)
	}

	s.mu.Lock()
	s.roots = tree
	s.index = index
	s.mu.Unlock()

	return nil
}

func (s *catalogServiceImpl) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.index != nil
	s.mu.RUnlock()

	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// indexSubtree records nodes keyed by the string form of their id, preorder.
// Folder ids arrive from callers as strings, so the comparison stays in
// string space instead of parsing at every lookup.
func indexSubtree(node *model.CatalogNode, index map[string]*model.CatalogNode) {
	if node == nil {
		return
	}
	key := strconv.Itoa(node.ID)
	if _, exists := index[key]; !exists {
		index[key] = node
	}
	for _, child := range node.Children {
		indexSubtree(child, index)
	}
}

func copyNodes(nodes []*model.CatalogNode) []*model.CatalogNode {
	out := make([]*model.CatalogNode, len(nodes))
	copy(out, nodes)
	return out
}
