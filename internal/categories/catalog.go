// Package categories loads the forum's section list from embedded YAML.
package categories

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"forum/internal/domain/models/forum"
)

//go:embed config/categories.yaml
var configFiles embed.FS

type catalogFile struct {
	Categories []forum.Category `yaml:"categories"`
}

// Catalog is the read-only list of forum categories.
type Catalog struct {
	ordered []forum.Category
	byID    map[string]forum.Category
}

// NewCatalog loads the embedded category list.
func NewCatalog() (*Catalog, error) {
	data, err := configFiles.ReadFile("config/categories.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML. IDs must be unique and types known.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	c := &Catalog{byID: make(map[string]forum.Category, len(file.Categories))}
	for _, cat := range file.Categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %q has no id", cat.Name)
		}
		if cat.Type != forum.CategoryTools && cat.Type != forum.CategoryOpenSource {
			return nil, fmt.Errorf("category %s: unknown type %q", cat.ID, cat.Type)
		}
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %s", cat.ID)
		}
		c.byID[cat.ID] = cat
		c.ordered = append(c.ordered, cat)
	}
	return c, nil
}

// Get returns the category with the given id.
func (c *Catalog) Get(id string) (forum.Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// All returns every category in catalog order.
func (c *Catalog) All() []forum.Category {
	return append([]forum.Category(nil), c.ordered...)
}
