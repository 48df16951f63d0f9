package enums

import "fmt"

// TransactionKind describes the allowed values for an inventory transaction.
type TransactionKind string

const (
	TransactionKindPurchase  TransactionKind = "purchase"
	TransactionKindReturn    TransactionKind = "return"
	TransactionKindReplenish TransactionKind = "replenish"
)

var validTransactionKinds = []TransactionKind{
	TransactionKindPurchase,
	TransactionKindReturn,
	TransactionKindReplenish,
}

// String implements fmt.Stringer.
func (k TransactionKind) String() string {
	return string(k)
}

// IsValid reports whether the value matches the canonical transaction kind enum.
func (k TransactionKind) IsValid() bool {
	for _, candidate := range validTransactionKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseTransactionKind converts the raw string to TransactionKind.
func ParseTransactionKind(value string) (TransactionKind, error) {
	for _, candidate := range validTransactionKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction kind %q", value)
}
