package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/common"
)

// SessionProvider resolves the cart and catalog owned by the request's
// session.
type SessionProvider interface {
	CartFor(ctx context.Context) (*Cart, bool)
	CatalogFor(ctx context.Context) (*catalog.Store, bool)
}

// Handler wires cart operations to HTTP.
type Handler struct {
	Sessions SessionProvider
	Validate *validator.Validate
	Now      func() time.Time
}

// LineView is one cart line as returned to clients. Medicine fields come
// from the live catalog record when it still exists and from the add-time
// snapshot when it has been deleted.
type LineView struct {
	Medicine     catalog.MedicineView `json:"medicine"`
	Quantity     int                  `json:"quantity"`
	LineSubtotal string               `json:"lineSubtotal"`
}

// View is the full cart snapshot payload.
type View struct {
	Lines      []LineView `json:"lines"`
	LineCount  int        `json:"lineCount"`
	TotalItems int        `json:"totalItems"`
}

type addItemInput struct {
	MedicineID string `json:"medicineId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type setQuantityInput struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *Handler) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*Cart, *catalog.Store, bool) {
	if h == nil || h.Sessions == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "cart not configured", nil)
		return nil, nil, false
	}
	cart, ok := h.Sessions.CartFor(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "session not found", nil)
		return nil, nil, false
	}
	store, ok := h.Sessions.CatalogFor(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "session not found", nil)
		return nil, nil, false
	}
	return cart, store, true
}

// Get returns the cart snapshot with the badge count.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(cart, store)})
}

// AddItem merges the requested quantity into the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	cart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var input addItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, common.ValidationError("invalid JSON payload", nil))
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(input); err != nil {
			common.WriteError(w, common.ValidationError("quantity must be a positive integer", common.ValidationDetails(err)))
			return
		}
	}
	medicine, found := store.Get(input.MedicineID)
	if !found {
		common.WriteError(w, common.NotFoundError("medicine not found", catalog.ErrNotFound))
		return
	}
	if err := cart.Add(medicine, input.Quantity); err != nil {
		if errors.Is(err, ErrInvalidQuantity) {
			common.WriteError(w, common.ValidationError("quantity must be a positive integer", nil))
			return
		}
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(cart, store)})
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	cart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	var input setQuantityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, common.ValidationError("invalid JSON payload", nil))
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(input); err != nil {
			common.WriteError(w, common.ValidationError("quantity is required", common.ValidationDetails(err)))
			return
		}
	}
	if err := cart.SetQuantity(id, *input.Quantity); err != nil {
		if errors.Is(err, ErrNotFound) {
			common.WriteError(w, common.NotFoundError("cart line not found", err))
			return
		}
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(cart, store)})
}

// RemoveItem drops a line. Removing an absent id succeeds.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	cart.Remove(chi.URLParam(r, "id"))
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(cart, store)})
}

// Clear empties the cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	cart.Clear()
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(cart, store)})
}

func (h *Handler) view(cart *Cart, store *catalog.Store) View {
	now := h.now()
	lines := cart.Lines()
	views := make([]LineView, 0, len(lines))
	for _, line := range lines {
		medicine := line.Medicine
		if current, ok := store.Get(medicine.ID); ok {
			medicine = current
		}
		subtotal := medicine.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		views = append(views, LineView{
			Medicine:     catalog.NewMedicineView(medicine, now),
			Quantity:     line.Quantity,
			LineSubtotal: subtotal.StringFixed(2),
		})
	}
	return View{
		Lines:      views,
		LineCount:  len(lines),
		TotalItems: cart.TotalItemCount(),
	}
}
