// Package reporting folds read-only item collections into the label→number
// mappings the dashboard consumers render (pie chart, heat maps, KPI row).
// All functions are pure; empty or nil input yields an empty result.
package reporting

import (
	"sort"

	"github.com/designsbyblanc/retailstore/internal/inventory"
)

// UnitsSoldByLocation sums gross units sold (purchase transactions only)
// per display location.
func UnitsSoldByLocation(items []*inventory.StoreItem) map[string]int {
	out := map[string]int{}
	for _, item := range items {
		out[item.Location] += item.UnitsSold()
	}
	return out
}

// AvgDaysToSellByLocation averages each item's own average days-to-sell per
// location. The mean is over items, not units, so a slow-moving item is not
// drowned out by a high-volume neighbor.
func AvgDaysToSellByLocation(items []*inventory.StoreItem) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, item := range items {
		sums[item.Location] += item.AverageDaysToSell()
		counts[item.Location]++
	}

	out := make(map[string]float64, len(sums))
	for loc, sum := range sums {
		out[loc] = sum / float64(counts[loc])
	}
	return out
}

// UnitsSoldByItem maps item name to net units sold (purchases minus
// returns), the series behind the popularity pie chart.
func UnitsSoldByItem(items []*inventory.StoreItem) map[string]int {
	out := map[string]int{}
	for _, item := range items {
		out[item.Name] += item.NetUnitsSold()
	}
	return out
}

// Summary is the dashboard KPI row.
type Summary struct {
	TotalUnitsSold  int
	AvgSellTimeDays float64
	TopLocation     string
}

// Summarize computes the KPI row: net units sold across the store, the mean
// of per-item average sell times, and the location with the most gross
// units sold (lexicographically first on ties, empty with no items).
func Summarize(items []*inventory.StoreItem) Summary {
	var s Summary
	if len(items) == 0 {
		return s
	}

	var avgSum float64
	for _, item := range items {
		s.TotalUnitsSold += item.NetUnitsSold()
		avgSum += item.AverageDaysToSell()
	}
	s.AvgSellTimeDays = avgSum / float64(len(items))

	byLocation := UnitsSoldByLocation(items)
	locations := make([]string, 0, len(byLocation))
	for loc := range byLocation {
		locations = append(locations, loc)
	}
	sort.Strings(locations)
	best := locations[0]
	for _, loc := range locations[1:] {
		if byLocation[loc] > byLocation[best] {
			best = loc
		}
	}
	s.TopLocation = best

	return s
}
