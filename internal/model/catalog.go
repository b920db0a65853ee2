package model

// DefaultFilePrice is charged when a file node carries no explicit price.
const DefaultFilePrice = 99

const (
	NodeTypeFolder = "folder"
	NodeTypeFile   = "file"
)

// CatalogNode is one folder or file entry in the catalog tree, as delivered
// by the external catalog source.
type CatalogNode struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"` // folder | file
	Path     string         `json:"path"`
	Price    int            `json:"price,omitempty"`
	Children []*CatalogNode `json:"children"`
}

func (n *CatalogNode) IsFolder() bool {
	return n.Type == NodeTypeFolder
}

func (n *CatalogNode) IsFile() bool {
	return n.Type == NodeTypeFile
}

// EffectivePrice returns the price charged for this node.
func (n *CatalogNode) EffectivePrice() int {
	if n.Price > 0 {
		return n.Price
	}
	return DefaultFilePrice
}
