// Package layout models the physical display hierarchy of a store:
// Store → Fixture → DisplayLocation → FixtureCell. Cells reference items by
// UPC only; the inventory registry stays the single source of truth for
// quantity and transaction history.
package layout

import (
	"fmt"

	"github.com/designsbyblanc/retailstore/internal/inventory"
	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
)

// FixtureCell is one display slot on a fixture, addressed by row and column.
type FixtureCell struct {
	Row      int
	Column   int
	ItemUPCs []string
}

// DisplayLocation is a named group of fixture cells ("Main Shelf",
// "End Cap A").
type DisplayLocation struct {
	Name  string
	Cells []FixtureCell
}

// Fixture is a physical display unit holding one or more locations.
type Fixture struct {
	Name      string
	Locations []DisplayLocation
}

// Store is the root of the display hierarchy. Items are reachable through
// it, but an item can exist in the registry without being placed anywhere.
type Store struct {
	Name     string
	Fixtures []Fixture
}

// Locations returns every display location in document order.
func (s *Store) Locations() []DisplayLocation {
	var out []DisplayLocation
	for _, fixture := range s.Fixtures {
		out = append(out, fixture.Locations...)
	}
	return out
}

// ItemsAt resolves the items referenced by the named display location,
// de-duplicated in cell order. A UPC that is not in the registry is an
// error; the layout must never point at phantom stock.
func (s *Store) ItemsAt(reg *inventory.Registry, locationName string) ([]*inventory.StoreItem, error) {
	if reg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item registry required")
	}

	found := false
	var items []*inventory.StoreItem
	seen := map[string]bool{}

	for _, loc := range s.Locations() {
		if loc.Name != locationName {
			continue
		}
		found = true
		for _, cell := range loc.Cells {
			for _, upc := range cell.ItemUPCs {
				if seen[upc] {
					continue
				}
				item, err := reg.Item(upc)
				if err != nil {
					return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err,
						fmt.Sprintf("location %s references unknown upc %s", locationName, upc))
				}
				seen[upc] = true
				items = append(items, item)
			}
		}
	}

	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound,
			fmt.Sprintf("no display location named %s", locationName))
	}
	return items, nil
}

// AllItems resolves every placed item in document order, de-duplicated.
func (s *Store) AllItems(reg *inventory.Registry) ([]*inventory.StoreItem, error) {
	if reg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item registry required")
	}

	var items []*inventory.StoreItem
	seen := map[string]bool{}

	for _, loc := range s.Locations() {
		for _, cell := range loc.Cells {
			for _, upc := range cell.ItemUPCs {
				if seen[upc] {
					continue
				}
				item, err := reg.Item(upc)
				if err != nil {
					return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err,
						fmt.Sprintf("cell (%d,%d) references unknown upc %s", cell.Row, cell.Column, upc))
				}
				seen[upc] = true
				items = append(items, item)
			}
		}
	}

	return items, nil
}
