package service

import (
	"context"
	"errors"
	"file-shop-demo/internal/client"
	"file-shop-demo/internal/model"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogClientStub struct {
	tree  []*model.CatalogNode
	err   error
	calls int
}

func (c *catalogClientStub) FetchTree(ctx context.Context) ([]*model.CatalogNode, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.tree, nil
}

func sampleTree() []*model.CatalogNode {
	return []*model.CatalogNode{
		{
			ID: 1, Name: "Docs", Type: model.NodeTypeFolder, Path: "/Docs",
			Children: []*model.CatalogNode{
				{ID: 2, Name: "a.pdf", Type: model.NodeTypeFile, Path: "/Docs/a.pdf", Price: 50, Children: []*model.CatalogNode{}},
				{
					ID: 3, Name: "Nested", Type: model.NodeTypeFolder, Path: "/Docs/Nested",
					Children: []*model.CatalogNode{
						{ID: 4, Name: "b.txt", Type: model.NodeTypeFile, Path: "/Docs/Nested/b.txt", Children: []*model.CatalogNode{}},
					},
				},
			},
		},
		{ID: 5, Name: "readme.txt", Type: model.NodeTypeFile, Path: "/readme.txt", Children: []*model.CatalogNode{}},
	}
}

func TestListChildrenRoot(t *testing.T) {
	svc := NewCatalogService(&catalogClientStub{tree: sampleTree()})

	items, err := svc.ListChildren(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 5, items[1].ID)
}

func TestListChildrenByFolderID(t *testing.T) {
	svc := NewCatalogService(&catalogClientStub{tree: sampleTree()})

	items, err := svc.ListChildren(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a.pdf", items[0].Name)

	nested, err := svc.ListChildren(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, nested, 1)
	assert.Equal(t, "b.txt", nested[0].Name)
}

func TestListChildrenUnknownID(t *testing.T) {
	svc := NewCatalogService(&catalogClientStub{tree: sampleTree()})

	items, err := svc.ListChildren(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, items)
}

// First preorder match wins even when its children are empty; a later node
// with the same id is never consulted.
func TestListChildrenFirstMatchWins(t *testing.T) {
	tree := []*model.CatalogNode{
		{ID: 1, Name: "Empty", Type: model.NodeTypeFolder, Children: []*model.CatalogNode{}},
		{
			ID: 2, Name: "Other", Type: model.NodeTypeFolder,
			Children: []*model.CatalogNode{
				{ID: 1, Name: "Duplicate", Type: model.NodeTypeFolder, Children: []*model.CatalogNode{
					{ID: 9, Name: "hidden.txt", Type: model.NodeTypeFile, Children: []*model.CatalogNode{}},
				}},
			},
		},
	}
	svc := NewCatalogService(&catalogClientStub{tree: tree})

	items, err := svc.ListChildren(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListChildrenCatalogUnavailable(t *testing.T) {
	stub := &catalogClientStub{err: fmt.Errorf("%w: connection refused", client.ErrCatalogUnavailable)}
	svc := NewCatalogService(stub)

	items, err := svc.ListChildren(context.Background(), "")
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, client.ErrCatalogUnavailable))
}

func TestTreeFetchedOnce(t *testing.T) {
	stub := &catalogClientStub{tree: sampleTree()}
	svc := NewCatalogService(stub)

	ctx := context.Background()
	for _, id := range []string{"", "1", "3", ""} {
		_, err := svc.ListChildren(ctx, id)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, stub.calls)
}

func TestRefreshRefetches(t *testing.T) {
	stub := &catalogClientStub{tree: sampleTree()}
	svc := NewCatalogService(stub)

	ctx := context.Background()
	_, err := svc.ListChildren(ctx, "")
	require.NoError(t, err)

	stub.tree = []*model.CatalogNode{
		{ID: 8, Name: "new.txt", Type: model.NodeTypeFile, Children: []*model.CatalogNode{}},
	}
	require.NoError(t, svc.Refresh(ctx))

	items, err := svc.ListChildren(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 8, items[0].ID)
}

func TestListChildrenReturnsCopy(t *testing.T) {
	svc := NewCatalogService(&catalogClientStub{tree: sampleTree()})
	ctx := context.Background()

	first, err := svc.ListChildren(ctx, "")
	require.NoError(t, err)
	first[0], first[1] = first[1], first[0]

	second, err := svc.ListChildren(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, second[0].ID)
}

func TestFindNode(t *testing.T) {
	svc := NewCatalogService(&catalogClientStub{tree: sampleTree()})
	ctx := context.Background()

	node, err := svc.FindNode(ctx, "4")
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "b.txt", node.Name)

	missing, err := svc.FindNode(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
