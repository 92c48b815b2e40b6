package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/common"
	"github.com/noah-isme/backend-apotek/internal/session"
)

type medicineResponse struct {
	Data catalog.MedicineView `json:"data"`
}

type medicinesResponse struct {
	Data []catalog.MedicineView `json:"data"`
}

type errorResponse struct {
	Error common.ErrorBody `json:"error"`
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func newEnv(t *testing.T) (*catalog.Handler, *session.Session, context.Context) {
	t.Helper()
	manager := session.NewManager(session.Config{})
	sess := manager.Create(common.RoleAdmin, "Admin User")
	ctx := common.WithIdentity(context.Background(), common.Identity{
		SessionID: sess.ID,
		Role:      sess.Role,
		Name:      sess.Name,
	})
	handler := &catalog.Handler{
		Stores:   manager,
		Validate: validator.New(),
		Now:      fixedNow,
	}
	return handler, sess, ctx
}

func newRouter(handler *catalog.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/medicines", handler.List)
	r.Get("/categories", handler.Categories)
	r.Post("/medicines", handler.Create)
	r.Put("/medicines/{id}", handler.Update)
	r.Delete("/medicines/{id}", handler.Delete)
	return r
}

func TestListReturnsSeedInStoreOrder(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/medicines", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp medicinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 15)
	require.Equal(t, "Paracetamol 500mg", resp.Data[0].Name)
	require.Equal(t, "1", resp.Data[0].ID)
}

func TestListFiltersBySymptomQuery(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/medicines?q=FEVER", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp medicinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)
	for _, view := range resp.Data {
		found := false
		for _, symptom := range view.Symptoms {
			if strings.Contains(symptom, "fever") {
				found = true
			}
		}
		require.True(t, found, "%s should carry a fever symptom", view.Name)
	}
}

func TestListAnnotatesExpiryStatus(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	// With now pinned to 2025-06-01, Amoxicillin (2025-08-30) is inside the
	// 90 day window and nothing in the seed is expired yet.
	req := httptest.NewRequest(http.MethodGet, "/medicines?q=amoxicillin", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp medicinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, "near_expiry", string(resp.Data[0].ExpiryStatus))
	require.Equal(t, 90, resp.Data[0].DaysUntilExpiry)
}

func TestCreateValidatesAndParsesInput(t *testing.T) {
	handler, sess, ctx := newEnv(t)
	router := newRouter(handler)

	body := `{"name":"Aspirin 75mg","category":"Pain Relief","symptoms":["headache"],"price":"12.50","stock":60,"expiryDate":"2026-09-01","description":"Low-dose aspirin"}`
	req := httptest.NewRequest(http.MethodPost, "/medicines", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp medicineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)
	require.Equal(t, "2026-09-01", resp.Data.ExpiryDate)
	require.Equal(t, 16, sess.Catalog.Len())
}

func TestCreateRejectsMissingFields(t *testing.T) {
	handler, sess, ctx := newEnv(t)
	router := newRouter(handler)

	body := `{"name":"No Category","price":"10","stock":5,"expiryDate":"2026-09-01"}`
	req := httptest.NewRequest(http.MethodPost, "/medicines", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, common.CodeValidation, resp.Error.Code)
	require.Equal(t, 15, sess.Catalog.Len(), "store unchanged on validation failure")
}

func TestCreateRejectsBadPrice(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	for _, price := range []string{`"abc"`, `"-5"`} {
		body := `{"name":"X","category":"Y","price":` + price + `,"stock":1,"expiryDate":"2026-09-01"}`
		req := httptest.NewRequest(http.MethodPost, "/medicines", strings.NewReader(body)).WithContext(ctx)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code, "price %s must be rejected", price)
	}
}

func TestCreateDuplicateIDConflict(t *testing.T) {
	handler, sess, ctx := newEnv(t)
	router := newRouter(handler)

	body := `{"id":"1","name":"Impostor","category":"Pain Relief","price":"10","stock":5,"expiryDate":"2026-09-01"}`
	req := httptest.NewRequest(http.MethodPost, "/medicines", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, common.CodeDuplicateID, resp.Error.Code)

	require.Equal(t, 15, sess.Catalog.Len(), "store unchanged")
	original, ok := sess.Catalog.Get("1")
	require.True(t, ok)
	require.Equal(t, "Paracetamol 500mg", original.Name)
}

func TestUpdateNotFound(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	body := `{"name":"Ghost","category":"None","price":"1","stock":1,"expiryDate":"2026-09-01"}`
	req := httptest.NewRequest(http.MethodPut, "/medicines/nope", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRemovesFromQueryResults(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/medicines/1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/medicines?q=paracetamol+500", nil).WithContext(ctx)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)
	var resp medicinesResponse
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &resp))
	require.Empty(t, resp.Data)

	again := httptest.NewRequest(http.MethodDelete, "/medicines/1", nil).WithContext(ctx)
	againRec := httptest.NewRecorder()
	router.ServeHTTP(againRec, again)
	require.Equal(t, http.StatusNotFound, againRec.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	handler, _, ctx := newEnv(t)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Pain Relief", resp.Data[0])
	require.Contains(t, resp.Data, "Antibiotic")
}

func TestHandlersRejectMissingSession(t *testing.T) {
	handler, _, _ := newEnv(t)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
