package entities

import "errors"

// Product is served as stored; the catalog file owns its shape.
type Product map[string]any

type Partner map[string]any

var ErrProductNotFound = errors.New("product not found")

// Matches reports whether key equals the product's slug or string id.
func (p Product) Matches(key string) bool {
	if slug, ok := p["slug"].(string); ok && slug == key {
		return true
	}
	if id, ok := p["id"].(string); ok && id == key {
		return true
	}
	return false
}
