// Package inventory models the canonical stock of a retail store: items,
// their shelf history, and the append-only transaction log every quantity
// change flows through.
//
// StoreItem is not safe for concurrent use; callers serialize access.
package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/designsbyblanc/retailstore/pkg/enums"
	pkgerrors "github.com/designsbyblanc/retailstore/pkg/errors"
)

// ShelfTracking pairs the receipt and display timestamps for a stocked item.
// Immutable once created.
type ShelfTracking struct {
	DateReceived  time.Time
	DateDisplayed time.Time
}

// NewShelfTracking builds a ShelfTracking, rejecting a display date that
// precedes the receipt date.
func NewShelfTracking(received, displayed time.Time) (ShelfTracking, error) {
	if displayed.Before(received) {
		return ShelfTracking{}, pkgerrors.New(pkgerrors.CodeValidation, "display date precedes receipt date").
			WithDetails(map[string]string{
				"date_received":  received.Format(time.RFC3339),
				"date_displayed": displayed.Format(time.RFC3339),
			})
	}
	return ShelfTracking{DateReceived: received, DateDisplayed: displayed}, nil
}

// Transaction records a single immutable inventory quantity change.
// Purchases carry a negative QuantityChange; returns and replenishments a
// positive one.
type Transaction struct {
	ID             uuid.UUID
	ItemName       string
	Location       string
	QuantityChange int
	Timestamp      time.Time
	Kind           enums.TransactionKind
}

// StoreItem is a stocked product type tracked by quantity and location.
// It exclusively owns its transaction log and sold-duration history.
type StoreItem struct {
	Name          string
	UPC           string
	Category      string
	Location      string
	ShelfTracking ShelfTracking

	quantity      int
	transactions  []Transaction
	soldDurations []int

	now func() time.Time
}

// NewStoreItemInput holds the values required to create a StoreItem.
type NewStoreItemInput struct {
	Name          string
	UPC           string
	Category      string
	Location      string
	Quantity      int
	ShelfTracking ShelfTracking
}

// Option configures optional StoreItem behavior.
type Option func(*StoreItem)

// WithClock overrides the wall clock used for sale timestamps and
// days-on-shelf arithmetic.
func WithClock(now func() time.Time) Option {
	return func(s *StoreItem) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStoreItem constructs a validated StoreItem.
func NewStoreItem(input NewStoreItemInput, opts ...Option) (*StoreItem, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if input.UPC == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item upc is required")
	}
	if input.Location == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item location is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must not be negative")
	}

	item := &StoreItem{
		Name:          input.Name,
		UPC:           input.UPC,
		Category:      input.Category,
		Location:      input.Location,
		ShelfTracking: input.ShelfTracking,
		quantity:      input.Quantity,
		now:           time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(item)
		}
	}

	return item, nil
}

// Quantity returns the units currently on hand.
func (s *StoreItem) Quantity() int {
	return s.quantity
}

// Transactions returns a copy of the append-only transaction log, oldest
// first.
func (s *StoreItem) Transactions() []Transaction {
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// SoldDurations returns a copy of the per-unit days-on-shelf history.
func (s *StoreItem) SoldDurations() []int {
	out := make([]int, len(s.soldDurations))
	copy(out, s.soldDurations)
	return out
}

// Purchase sells qty units. It fails with CodeInsufficientInventory when qty
// exceeds the quantity on hand and performs no mutation on failure.
func (s *StoreItem) Purchase(qty int) (*Transaction, error) {
	if err := validQty(qty, "purchase"); err != nil {
		return nil, err
	}
	if qty > s.quantity {
		return nil, pkgerrors.New(pkgerrors.CodeInsufficientInventory,
			fmt.Sprintf("not enough inventory to purchase %d of %s", qty, s.Name)).
			WithDetails(map[string]int{"requested": qty, "available": s.quantity})
	}

	days := s.daysOnShelf(s.now())
	for i := 0; i < qty; i++ {
		s.soldDurations = append(s.soldDurations, days)
	}
	s.quantity -= qty

	return s.record(-qty, enums.TransactionKindPurchase), nil
}

// Return accepts qty units back into stock. No upper bound is enforced; an
// item can hold more units than it ever sold.
func (s *StoreItem) Return(qty int) (*Transaction, error) {
	if err := validQty(qty, "return"); err != nil {
		return nil, err
	}
	s.quantity += qty
	return s.record(qty, enums.TransactionKindReturn), nil
}

// Replenish restocks qty units.
func (s *StoreItem) Replenish(qty int) (*Transaction, error) {
	if err := validQty(qty, "replenish"); err != nil {
		return nil, err
	}
	s.quantity += qty
	return s.record(qty, enums.TransactionKindReplenish), nil
}

// AverageDaysToSell is the mean days-on-shelf across every unit sold so far,
// 0 when nothing has sold.
func (s *StoreItem) AverageDaysToSell() float64 {
	if len(s.soldDurations) == 0 {
		return 0
	}
	sum := 0
	for _, d := range s.soldDurations {
		sum += d
	}
	return float64(sum) / float64(len(s.soldDurations))
}

// UnitsSold is the gross number of units sold, ignoring returns.
func (s *StoreItem) UnitsSold() int {
	sold := 0
	for _, txn := range s.transactions {
		if txn.Kind == enums.TransactionKindPurchase {
			sold += -txn.QuantityChange
		}
	}
	return sold
}

// NetUnitsSold is units sold minus units returned.
func (s *StoreItem) NetUnitsSold() int {
	net := 0
	for _, txn := range s.transactions {
		switch txn.Kind {
		case enums.TransactionKindPurchase:
			net += -txn.QuantityChange
		case enums.TransactionKindReturn:
			net -= txn.QuantityChange
		}
	}
	return net
}

func (s *StoreItem) daysOnShelf(sellDate time.Time) int {
	days := int(sellDate.Sub(s.ShelfTracking.DateDisplayed).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func (s *StoreItem) record(qtyChange int, kind enums.TransactionKind) *Transaction {
	txn := Transaction{
		ID:             uuid.New(),
		ItemName:       s.Name,
		Location:       s.Location,
		QuantityChange: qtyChange,
		Timestamp:      s.now(),
		Kind:           kind,
	}
	s.transactions = append(s.transactions, txn)
	return &txn
}

func validQty(qty int, op string) error {
	if qty <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("%s quantity must be positive", op)).
			WithDetails(map[string]int{"qty": qty})
	}
	return nil
}
