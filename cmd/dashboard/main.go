package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/designsbyblanc/retailstore/internal/inventory"
	"github.com/designsbyblanc/retailstore/internal/reporting"
	"github.com/designsbyblanc/retailstore/internal/seed"
	"github.com/designsbyblanc/retailstore/pkg/config"
	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
	"github.com/designsbyblanc/retailstore/pkg/logger"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "dashboard"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "dashboard",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	seedValue := cfg.Seed.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	ctx = logg.WithFields(ctx, map[string]any{
		"env":   cfg.App.Env,
		"store": cfg.Store.Name,
		"seed":  seedValue,
	})

	reg, store, err := seed.Generate(seed.DefaultItemSpecs(), seed.Options{
		Rand:            rng,
		StoreName:       cfg.Store.Name,
		MinReceivedDays: cfg.Seed.MinReceivedDays,
		MaxReceivedDays: cfg.Seed.MaxReceivedDays,
		SimulateSales:   cfg.Seed.SimulateSales,
	})
	requireResource(ctx, logg, "seed store", err)

	svc, err := inventory.NewService(reg, logg)
	requireResource(ctx, logg, "inventory service", err)

	logg.Info(ctx, fmt.Sprintf("seeded %d items across %d fixtures", reg.Len(), len(store.Fixtures)))

	items := svc.Items()
	summary := reporting.Summarize(items)

	fmt.Printf("\n%s\n\n", store.Name)
	fmt.Printf("Units Sold: %d    Avg Sell Time: %.1f days    Top Location: %s\n",
		summary.TotalUnitsSold, summary.AvgSellTimeDays, summary.TopLocation)

	printIntTable("Most Popular Items", "Units Sold", reporting.UnitsSoldByItem(items))
	printIntTable("Sales by Location", "Units Sold", reporting.UnitsSoldByLocation(items))
	printFloatTable("Avg Days to Sell by Location", "Avg Days", reporting.AvgDaysToSellByLocation(items))
}

func printIntTable(title, column string, data map[string]int) {
	fmt.Printf("\n%s\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\n", "Label", column)
	for _, label := range sortedKeys(data) {
		fmt.Fprintf(w, "  %s\t%d\n", label, data[label])
	}
	_ = w.Flush()
}

func printFloatTable(title, column string, data map[string]float64) {
	fmt.Printf("\n%s\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\n", "Label", column)

	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(w, "  %s\t%.1f\n", label, data[label])
	}
	_ = w.Flush()
}

func sortedKeys(data map[string]int) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func requireResource(ctx context.Context, logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	dump := pkgerrors.Dump(err)
	logg.Error(logg.WithField(ctx, "resource", name), fmt.Sprintf("failed to initialize %s (%s)", name, dump.Code), err)
	os.Exit(1)
}
