package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is one purchasable catalog record. The identifier is assigned at
// creation and never changes; every other field may be edited in place.
type Medicine struct {
	ID          string
	Name        string
	Category    string
	Symptoms    []string
	Price       decimal.Decimal
	Stock       int
	ExpiryDate  time.Time
	Description string
}

// Clone returns a copy that does not share the symptoms slice.
func (m Medicine) Clone() Medicine {
	out := m
	if m.Symptoms != nil {
		out.Symptoms = append([]string(nil), m.Symptoms...)
	}
	return out
}
