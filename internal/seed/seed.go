// Package seed builds deterministic demo inventory: the randomness source
// is injected, so the same seed always yields the same store.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/multierr"

	"github.com/designsbyblanc/retailstore/internal/inventory"
	"github.com/designsbyblanc/retailstore/internal/layout"
	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
)

const (
	defaultStoreName       = "Demo Retail Store"
	defaultMinReceivedDays = 8
	defaultMaxReceivedDays = 12
)

// ItemSpec declares one item to generate, with the inclusive range of units
// the initial sales simulation moves.
type ItemSpec struct {
	Name     string `validate:"required"`
	UPC      string `validate:"required"`
	Category string `validate:"required"`
	Location string `validate:"required"`
	Quantity int    `validate:"min=0"`
	MinSale  int    `validate:"min=0"`
	MaxSale  int    `validate:"min=0,gtefield=MinSale"`
}

// Options configures generation. Rand is required; everything else has a
// default.
type Options struct {
	Rand            *rand.Rand
	Now             func() time.Time
	StoreName       string
	MinReceivedDays int
	MaxReceivedDays int
	SimulateSales   bool
}

// DefaultItemSpecs returns the demo catalog: five items, quantity 20 each,
// with per-item sale ranges tuned so the pie chart has a spread.
func DefaultItemSpecs() []ItemSpec {
	return []ItemSpec{
		{Name: "Baby Yoda Keychain", UPC: "57023", Category: "Keychain", Location: "Front Counter", Quantity: 20, MinSale: 10, MaxSale: 15},
		{Name: "iPhone 15 Case", UPC: "88002", Category: "Accessory", Location: "End Cap A", Quantity: 20, MinSale: 6, MaxSale: 10},
		{Name: "Disney Princess Keychain", UPC: "99011", Category: "Keychain", Location: "Main Shelf", Quantity: 20, MinSale: 5, MaxSale: 9},
		{Name: "Mandalorian Keychain", UPC: "57089", Category: "Keychain", Location: "Main Shelf", Quantity: 20, MinSale: 4, MaxSale: 8},
		{Name: "LED Lanyard", UPC: "44022", Category: "Accessory", Location: "Rotating Rack", Quantity: 20, MinSale: 1, MaxSale: 5},
	}
}

// Generate builds the canonical registry and display layout from the given
// specs. When opts.SimulateSales is set, each item sells a random number of
// units inside its spec's range. Per-spec failures are aggregated.
func Generate(specs []ItemSpec, opts Options) (*inventory.Registry, *layout.Store, error) {
	if opts.Rand == nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "random source is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.StoreName == "" {
		opts.StoreName = defaultStoreName
	}
	if opts.MinReceivedDays == 0 {
		opts.MinReceivedDays = defaultMinReceivedDays
	}
	if opts.MaxReceivedDays == 0 {
		opts.MaxReceivedDays = defaultMaxReceivedDays
	}
	if opts.MinReceivedDays < 1 || opts.MaxReceivedDays < opts.MinReceivedDays {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "received-day bounds are inverted").
			WithDetails(map[string]int{"min": opts.MinReceivedDays, "max": opts.MaxReceivedDays})
	}

	reg := inventory.NewRegistry()
	var errs []error

	for _, spec := range specs {
		if err := validateSpec(spec); err != nil {
			errs = append(errs, err)
			continue
		}

		tracking, err := randomShelfTracking(opts.Rand, opts.Now(), opts.MinReceivedDays, opts.MaxReceivedDays)
		if err != nil {
			errs = append(errs, fmt.Errorf("spec %s: %w", spec.UPC, err))
			continue
		}

		item, err := inventory.NewStoreItem(inventory.NewStoreItemInput{
			Name:          spec.Name,
			UPC:           spec.UPC,
			Category:      spec.Category,
			Location:      spec.Location,
			Quantity:      spec.Quantity,
			ShelfTracking: tracking,
		}, inventory.WithClock(opts.Now))
		if err != nil {
			errs = append(errs, fmt.Errorf("spec %s: %w", spec.UPC, err))
			continue
		}

		if err := reg.Add(item); err != nil {
			errs = append(errs, fmt.Errorf("spec %s: %w", spec.UPC, err))
			continue
		}

		if opts.SimulateSales && spec.MaxSale > 0 {
			qty := randBetween(opts.Rand, spec.MinSale, spec.MaxSale)
			if qty > 0 {
				if _, err := item.Purchase(qty); err != nil {
					errs = append(errs, fmt.Errorf("simulating sales for %s: %w", spec.UPC, err))
				}
			}
		}
	}

	if combined := multierr.Combine(errs...); combined != nil {
		return nil, nil, combined
	}

	return reg, buildLayout(opts.StoreName, reg), nil
}

// buildLayout arranges the registry into one fixture per distinct location,
// first-seen order, one single-row cell per item.
func buildLayout(storeName string, reg *inventory.Registry) *layout.Store {
	store := &layout.Store{Name: storeName}
	index := map[string]int{}

	for _, item := range reg.Items() {
		i, ok := index[item.Location]
		if !ok {
			i = len(store.Fixtures)
			index[item.Location] = i
			store.Fixtures = append(store.Fixtures, layout.Fixture{
				Name:      item.Location,
				Locations: []layout.DisplayLocation{{Name: item.Location}},
			})
		}
		loc := &store.Fixtures[i].Locations[0]
		loc.Cells = append(loc.Cells, layout.FixtureCell{
			Row:      0,
			Column:   len(loc.Cells),
			ItemUPCs: []string{item.UPC},
		})
	}

	return store
}

// randomShelfTracking places the receipt between min and max days ago and
// the display somewhere between then and one day ago, so the display date
// never precedes the receipt.
func randomShelfTracking(rng *rand.Rand, now time.Time, minDays, maxDays int) (inventory.ShelfTracking, error) {
	receivedDays := randBetween(rng, minDays, maxDays)
	displayedDays := randBetween(rng, 1, receivedDays)
	return inventory.NewShelfTracking(
		now.Add(-time.Duration(receivedDays)*24*time.Hour),
		now.Add(-time.Duration(displayedDays)*24*time.Hour),
	)
}

// randBetween returns a value in [low, high], inclusive on both ends.
func randBetween(rng *rand.Rand, low, high int) int {
	if high <= low {
		return low
	}
	return low + rng.Intn(high-low+1)
}
