package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-apotek/internal/common"
)

// StoreProvider resolves the catalog store owned by the request's session.
type StoreProvider interface {
	CatalogFor(ctx context.Context) (*Store, bool)
}

// Handler wires the catalog store to HTTP.
type Handler struct {
	Stores   StoreProvider
	Validate *validator.Validate
	Now      func() time.Time
}

func (h *Handler) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) store(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	if h == nil || h.Stores == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "catalog not configured", nil)
		return nil, false
	}
	store, ok := h.Stores.CatalogFor(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "session not found", nil)
		return nil, false
	}
	return store, true
}

// List returns medicines filtered by free text and category in store order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	text := r.URL.Query().Get("q")
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		category = CategoryAll
	}
	matches := Search(store.List(), text, category)
	common.JSON(w, http.StatusOK, map[string]any{
		"data": NewMedicineViews(matches, h.now()),
	})
}

// Categories returns the distinct categories currently in the store.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": Categories(store.List()),
	})
}

// Create adds a medicine to the session's catalog.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	record, err := input.ToMedicine()
	if err != nil {
		common.WriteError(w, err)
		return
	}
	created, err := store.Create(record)
	if err != nil {
		if errors.Is(err, ErrDuplicateID) {
			common.WriteError(w, common.DuplicateIDError("medicine id already exists", err))
			return
		}
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": NewMedicineView(created, h.now()),
	})
}

// Update replaces the medicine identified by the path id.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}
	record, err := input.ToMedicine()
	if err != nil {
		common.WriteError(w, err)
		return
	}
	updated, err := store.Update(id, record)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.WriteError(w, common.NotFoundError("medicine not found", err))
			return
		}
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": NewMedicineView(updated, h.now()),
	})
}

// Delete removes the medicine identified by the path id. Cart lines that
// reference it are intentionally left untouched.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := store.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			common.WriteError(w, common.NotFoundError("medicine not found", err))
			return
		}
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (MedicineInput, bool) {
	var input MedicineInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, common.ValidationError("invalid JSON payload", nil))
		return MedicineInput{}, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(input); err != nil {
			common.WriteError(w, common.ValidationError("missing or invalid fields", common.ValidationDetails(err)))
			return MedicineInput{}, false
		}
	}
	return input, true
}
