// Package doctor exposes the symptom-to-medicine matcher behind the
// storefront's symptom checker dialog.
package doctor

import (
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/common"
)

// Handler serves medicine suggestions for a symptom query.
type Handler struct {
	Stores catalog.StoreProvider
	Now    func() time.Time
}

func (h *Handler) now() time.Time {
	if h != nil && h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// Suggestions returns medicines matching the symptom query along with the
// quick-pick symptom list. A blank query yields no suggestions rather than
// the whole catalog; the dialog starts empty.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Stores == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "doctor not configured", nil)
		return
	}
	store, ok := h.Stores.CatalogFor(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "session not found", nil)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	suggestions := []catalog.MedicineView{}
	if query != "" {
		matches := catalog.Search(store.List(), query, catalog.CategoryAll)
		suggestions = catalog.NewMedicineViews(matches, h.now())
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"commonSymptoms": catalog.CommonSymptoms,
			"suggestions":    suggestions,
		},
	})
}
