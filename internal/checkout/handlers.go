package checkout

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-apotek/internal/cart"
	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/common"
	"github.com/noah-isme/backend-apotek/internal/slip"
)

// SessionProvider resolves the cart and catalog owned by the request's
// session.
type SessionProvider interface {
	CartFor(ctx context.Context) (*cart.Cart, bool)
	CatalogFor(ctx context.Context) (*catalog.Store, bool)
}

// Handler exposes the checkout summary and the instruction slip.
type Handler struct {
	Sessions SessionProvider
	TaxRate  decimal.Decimal
	Now      func() time.Time
}

// SummaryView is the checkout totals payload, rounded for display.
type SummaryView struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	TaxRate  string `json:"taxRate"`
	Total    string `json:"total"`
}

func (h *Handler) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*cart.Cart, *catalog.Store, bool) {
	if h == nil || h.Sessions == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "checkout not configured", nil)
		return nil, nil, false
	}
	sessionCart, ok := h.Sessions.CartFor(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "session not found", nil)
		return nil, nil, false
	}
	store, ok := h.Sessions.CatalogFor(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "session not found", nil)
		return nil, nil, false
	}
	return sessionCart, store, true
}

// Summary returns subtotal, tax, and total for the current cart. It never
// mutates the cart; clearing after a successful checkout is a separate call.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sessionCart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	summary := Summarize(sessionCart.Lines(), store.Get, h.TaxRate)
	common.JSON(w, http.StatusOK, map[string]any{
		"data": SummaryView{
			Subtotal: summary.Subtotal.StringFixed(2),
			Tax:      summary.Tax.StringFixed(2),
			TaxRate:  h.TaxRate.String(),
			Total:    summary.Total.StringFixed(2),
		},
	})
}

// Slip renders the instruction slip for the current cart as a PDF. The cart
// is left untouched so the caller can re-print before clearing it.
func (h *Handler) Slip(w http.ResponseWriter, r *http.Request) {
	sessionCart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	lines := sessionCart.Lines()
	if len(lines) == 0 {
		common.WriteError(w, common.ValidationError("cart is empty", nil))
		return
	}
	identity, _ := common.IdentityFrom(r.Context())
	summary := Summarize(lines, store.Get, h.TaxRate)

	doc := slip.Slip{
		CustomerName: identity.Name,
		Date:         h.now(),
		Total:        summary.Total,
		Lines:        make([]slip.Line, 0, len(lines)),
	}
	for _, line := range lines {
		medicine := line.Medicine
		if current, found := store.Get(medicine.ID); found {
			medicine = current
		}
		doc.Lines = append(doc.Lines, slip.Line{
			Name:       medicine.Name,
			Dosage:     medicine.Description,
			ExpiryDate: medicine.ExpiryDate.Format(catalog.DateFormat),
			Quantity:   line.Quantity,
			UnitPrice:  medicine.Price,
		})
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=instruction-slip-%s.pdf", h.now().Format("20060102")))
	if err := slip.Render(doc, w); err != nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "render slip", nil)
	}
}
