package checkout_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-apotek/internal/cart"
	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/checkout"
)

func medicine(id, name string, price int64) catalog.Medicine {
	return catalog.Medicine{
		ID:         id,
		Name:       name,
		Category:   "Pain Relief",
		Price:      decimal.NewFromInt(price),
		Stock:      100,
		ExpiryDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func taxRate() decimal.Decimal {
	return decimal.RequireFromString("0.05")
}

func TestSummarizeFixedRateTax(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(medicine("1", "Paracetamol 500mg", 25), 2))
	require.NoError(t, c.Add(medicine("2", "Cetirizine 10mg", 40), 1))

	store := catalog.NewStore([]catalog.Medicine{
		medicine("1", "Paracetamol 500mg", 25),
		medicine("2", "Cetirizine 10mg", 40),
	})

	summary := checkout.Summarize(c.Lines(), store.Get, taxRate())
	require.Equal(t, "90.00", summary.Subtotal.StringFixed(2))
	require.Equal(t, "4.50", summary.Tax.StringFixed(2))
	require.Equal(t, "94.50", summary.Total.StringFixed(2))
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := checkout.Summarize(nil, nil, taxRate())
	require.Equal(t, "0.00", summary.Subtotal.StringFixed(2))
	require.Equal(t, "0.00", summary.Tax.StringFixed(2))
	require.Equal(t, "0.00", summary.Total.StringFixed(2))
}

func TestSummarizeUsesCurrentPrice(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(medicine("1", "Paracetamol 500mg", 25), 2))

	// Admin edits the price while the item sits in the cart.
	store := catalog.NewStore([]catalog.Medicine{medicine("1", "Paracetamol 500mg", 25)})
	_, err := store.Update("1", medicine("1", "Paracetamol 500mg", 30))
	require.NoError(t, err)

	summary := checkout.Summarize(c.Lines(), store.Get, taxRate())
	require.Equal(t, "60.00", summary.Subtotal.StringFixed(2), "current price wins over add-time price")
}

func TestSummarizeFallsBackToSnapshotWhenDeleted(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(medicine("1", "Paracetamol 500mg", 25), 3))

	store := catalog.NewStore([]catalog.Medicine{medicine("1", "Paracetamol 500mg", 25)})
	require.NoError(t, store.Delete("1"))

	summary := checkout.Summarize(c.Lines(), store.Get, taxRate())
	require.Equal(t, "75.00", summary.Subtotal.StringFixed(2), "stale snapshot prices the line")
}

func TestSummarizeAvoidsBinaryFloatDrift(t *testing.T) {
	c := cart.New()
	store := catalog.NewStore(nil)
	for i := 0; i < 10; i++ {
		m := medicine(string(rune('a'+i)), "Tenth", 0)
		m.Price = decimal.RequireFromString("0.10")
		created, err := store.Create(m)
		require.NoError(t, err)
		require.NoError(t, c.Add(created, 1))
	}

	summary := checkout.Summarize(c.Lines(), store.Get, decimal.Zero)
	require.True(t, summary.Subtotal.Equal(decimal.NewFromInt(1)), "ten dimes make exactly one unit, got %s", summary.Subtotal)
}
