package schema

import (
	"fmt"
	"sort"

	"cleansweep/models"
)

// Registry is the static catalog of block schemas. It is populated once from
// the built-in catalog at construction and exposes no mutation API to
// callers; adding a new block type means adding an entry to the catalog
// without touching the validator.
type Registry struct {
	schemas map[string]models.BlockSchema
}

// NewRegistry builds a registry preloaded with the default block catalog.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[string]models.BlockSchema, len(defaultCatalog))}
	for _, s := range defaultCatalog {
		r.schemas[s.BlockType] = s
	}
	return r
}

// Get returns the schema for the given block type.
func (r *Registry) Get(blockType string) (models.BlockSchema, error) {
	s, ok := r.schemas[blockType]
	if !ok {
		return models.BlockSchema{}, fmt.Errorf("unknown block type %q", blockType)
	}
	return s, nil
}

// Has reports whether a schema exists for the given block type.
func (r *Registry) Has(blockType string) bool {
	_, ok := r.schemas[blockType]
	return ok
}

// Types returns the registered block type identifiers in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.schemas))
	for t := range r.schemas {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
