package inventory

import (
	"fmt"

	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
)

// Registry is the canonical, insertion-ordered collection of a store's
// items, keyed by UPC. Display cells reference items through it rather than
// holding copies, so quantity and transaction history have a single source
// of truth. Not safe for concurrent use.
type Registry struct {
	byUPC map[string]*StoreItem
	order []string
}

// NewRegistry returns an empty item registry.
func NewRegistry() *Registry {
	return &Registry{byUPC: map[string]*StoreItem{}}
}

// Add registers an item. Duplicate UPCs are rejected with CodeConflict.
func (r *Registry) Add(item *StoreItem) error {
	if item == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item is required")
	}
	if _, exists := r.byUPC[item.UPC]; exists {
		return pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("item with upc %s already registered", item.UPC))
	}
	r.byUPC[item.UPC] = item
	r.order = append(r.order, item.UPC)
	return nil
}

// Item looks up an item by UPC.
func (r *Registry) Item(upc string) (*StoreItem, error) {
	item, ok := r.byUPC[upc]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound,
			fmt.Sprintf("no item with upc %s", upc))
	}
	return item, nil
}

// Items returns the registered items in insertion order.
func (r *Registry) Items() []*StoreItem {
	out := make([]*StoreItem, 0, len(r.order))
	for _, upc := range r.order {
		out = append(out, r.byUPC[upc])
	}
	return out
}

// Len reports the number of registered items.
func (r *Registry) Len() int {
	return len(r.order)
}
