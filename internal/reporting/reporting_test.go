package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designsbyblanc/retailstore/internal/inventory"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

// soldItem builds an item at the given location, sells sold units with the
// given days-on-shelf, then returns returned units.
func soldItem(t *testing.T, name, upc, location string, daysOnShelf, sold, returned int) *inventory.StoreItem {
	t.Helper()

	tracking, err := inventory.NewShelfTracking(
		testNow.Add(-time.Duration(daysOnShelf+2)*24*time.Hour),
		testNow.Add(-time.Duration(daysOnShelf)*24*time.Hour),
	)
	require.NoError(t, err)

	item, err := inventory.NewStoreItem(inventory.NewStoreItemInput{
		Name:          name,
		UPC:           upc,
		Category:      "Keychain",
		Location:      location,
		Quantity:      100,
		ShelfTracking: tracking,
	}, inventory.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)

	if sold > 0 {
		_, err = item.Purchase(sold)
		require.NoError(t, err)
	}
	if returned > 0 {
		_, err = item.Return(returned)
		require.NoError(t, err)
	}
	return item
}

func TestUnitsSoldByLocation(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "Disney Princess Keychain", "99011", "Main Shelf", 4, 8, 0),
		soldItem(t, "Mandalorian Keychain", "57089", "Main Shelf", 6, 3, 0),
		soldItem(t, "LED Lanyard", "44022", "Rotating Rack", 2, 5, 0),
	}

	got := UnitsSoldByLocation(items)
	assert.Equal(t, map[string]int{"Main Shelf": 11, "Rotating Rack": 5}, got)
}

func TestUnitsSoldByLocationIgnoresReturns(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "iPhone 15 Case", "88002", "End Cap A", 3, 6, 2),
	}

	// Gross units per location; the return does not reduce the heat map.
	assert.Equal(t, map[string]int{"End Cap A": 6}, UnitsSoldByLocation(items))
}

func TestAvgDaysToSellByLocation(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "Poster A", "11111", "Wall A", 4, 2, 0),
		soldItem(t, "Poster B", "22222", "Wall A", 6, 9, 0),
	}

	got := AvgDaysToSellByLocation(items)
	require.Contains(t, got, "Wall A")
	// Simple mean of per-item means, not unit-weighted.
	assert.InDelta(t, 5.0, got["Wall A"], 1e-9)
}

func TestAvgDaysToSellUnsoldItemCountsAsZero(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "Poster A", "11111", "Wall A", 4, 4, 0),
		soldItem(t, "Poster B", "22222", "Wall A", 6, 0, 0),
	}

	got := AvgDaysToSellByLocation(items)
	assert.InDelta(t, 2.0, got["Wall A"], 1e-9)
}

func TestUnitsSoldByItemIsNetOfReturns(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "Baby Yoda Keychain", "57023", "Front Counter", 5, 12, 3),
		soldItem(t, "LED Lanyard", "44022", "Rotating Rack", 2, 4, 0),
	}

	got := UnitsSoldByItem(items)
	assert.Equal(t, map[string]int{
		"Baby Yoda Keychain": 9,
		"LED Lanyard":        4,
	}, got)
}

func TestSummarize(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "Baby Yoda Keychain", "57023", "Front Counter", 5, 12, 2),
		soldItem(t, "Disney Princess Keychain", "99011", "Main Shelf", 4, 8, 0),
		soldItem(t, "Mandalorian Keychain", "57089", "Main Shelf", 6, 3, 0),
	}

	got := Summarize(items)
	assert.Equal(t, 21, got.TotalUnitsSold)
	assert.InDelta(t, 5.0, got.AvgSellTimeDays, 1e-9) // (5+4+6)/3
	assert.Equal(t, "Front Counter", got.TopLocation) // 12 gross vs 11
}

func TestSummarizeTieBreaksLexicographically(t *testing.T) {
	items := []*inventory.StoreItem{
		soldItem(t, "A", "1", "Wall B", 2, 5, 0),
		soldItem(t, "B", "2", "Wall A", 2, 5, 0),
	}

	assert.Equal(t, "Wall A", Summarize(items).TopLocation)
}

func TestEmptyInputYieldsEmptyResults(t *testing.T) {
	assert.Empty(t, UnitsSoldByLocation(nil))
	assert.Empty(t, AvgDaysToSellByLocation(nil))
	assert.Empty(t, UnitsSoldByItem(nil))
	assert.Equal(t, Summary{}, Summarize(nil))
}
