package inventory

import (
	"context"
	"fmt"

	"github.com/designsbyblanc/retailstore/pkg/logger"
)

// Service exposes inventory mutations addressed by UPC, logging every
// quantity change the way the store floor expects ("sold 5 of X").
type Service interface {
	Purchase(ctx context.Context, upc string, qty int) (*Transaction, error)
	Return(ctx context.Context, upc string, qty int) (*Transaction, error)
	Replenish(ctx context.Context, upc string, qty int) (*Transaction, error)
	Item(upc string) (*StoreItem, error)
	Items() []*StoreItem
}

type service struct {
	reg  *Registry
	logg *logger.Logger
}

// NewService wires an inventory service over the canonical item registry.
func NewService(reg *Registry, logg *logger.Logger) (Service, error) {
	if reg == nil {
		return nil, fmt.Errorf("item registry required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{reg: reg, logg: logg}, nil
}

func (s *service) Purchase(ctx context.Context, upc string, qty int) (*Transaction, error) {
	item, err := s.reg.Item(upc)
	if err != nil {
		return nil, err
	}
	txn, err := item.Purchase(qty)
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.txnCtx(ctx, item, qty), fmt.Sprintf("sold %d of %s", qty, item.Name))
	return txn, nil
}

func (s *service) Return(ctx context.Context, upc string, qty int) (*Transaction, error) {
	item, err := s.reg.Item(upc)
	if err != nil {
		return nil, err
	}
	txn, err := item.Return(qty)
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.txnCtx(ctx, item, qty), fmt.Sprintf("returned %d of %s", qty, item.Name))
	return txn, nil
}

func (s *service) Replenish(ctx context.Context, upc string, qty int) (*Transaction, error) {
	item, err := s.reg.Item(upc)
	if err != nil {
		return nil, err
	}
	txn, err := item.Replenish(qty)
	if err != nil {
		return nil, err
	}
	s.logg.Info(s.txnCtx(ctx, item, qty), fmt.Sprintf("replenished %d of %s", qty, item.Name))
	return txn, nil
}

func (s *service) Item(upc string) (*StoreItem, error) {
	return s.reg.Item(upc)
}

func (s *service) Items() []*StoreItem {
	return s.reg.Items()
}

func (s *service) txnCtx(ctx context.Context, item *StoreItem, qty int) context.Context {
	return s.logg.WithFields(ctx, map[string]any{
		"item":     item.Name,
		"upc":      item.UPC,
		"location": item.Location,
		"qty":      qty,
	})
}
