// Package checkout derives purchase totals from a cart snapshot. Producing
// a summary has no side effect on the cart or the catalog; clearing the cart
// afterwards is a separate caller action.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-apotek/internal/cart"
	"github.com/noah-isme/backend-apotek/internal/catalog"
)

// PriceLookup resolves the current catalog record for a medicine id. When it
// reports false the line's add-time snapshot is used instead, so lines whose
// medicine was deleted keep their last known price.
type PriceLookup func(id string) (catalog.Medicine, bool)

// Summary holds the derived totals at full decimal precision. Rounding to
// two places happens only at the presentation edge.
type Summary struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Summarize computes subtotal, fixed-rate tax, and total over the cart
// lines, pricing each line at the medicine's current price.
func Summarize(lines []cart.Line, lookup PriceLookup, taxRate decimal.Decimal) Summary {
	subtotal := decimal.Zero
	for _, line := range lines {
		price := line.Medicine.Price
		if lookup != nil {
			if current, ok := lookup(line.Medicine.ID); ok {
				price = current.Price
			}
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(taxRate)
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
