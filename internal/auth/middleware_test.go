package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-apotek/internal/auth"
	"github.com/noah-isme/backend-apotek/internal/common"
)

type loginResponse struct {
	Data auth.LoginResult `json:"data"`
}

func newAPI(t *testing.T) (chi.Router, *auth.Service) {
	t.Helper()
	svc, _ := newService(t)

	handler := &auth.Handler{Service: svc, Validate: validator.New()}
	middleware := auth.Middleware{Service: svc}

	okHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Post("/auth/login", handler.Login)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/auth/logout", handler.Logout)
		r.Get("/protected", okHandler)
		r.With(middleware.RequireRole(common.RoleAdmin)).Get("/admin-only", okHandler)
	})
	return r, svc
}

func login(t *testing.T, router chi.Router, username, password string) loginResponse {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLoginEndpointReturnsTokenAndUser(t *testing.T) {
	router, _ := newAPI(t)

	resp := login(t, router, "admin", "admin123")
	require.NotEmpty(t, resp.Data.Token)
	require.Equal(t, common.RoleAdmin, resp.Data.User.Role)
	require.Equal(t, "Admin User", resp.Data.User.Name)
	require.False(t, resp.Data.ExpiresAt.IsZero())
}

func TestLoginEndpointRejectsMissingFields(t *testing.T) {
	router, _ := newAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpointRejectsBadCredentials(t *testing.T) {
	router, _ := newAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Error common.ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, common.CodeInvalidCredentials, resp.Error.Code)
}

func TestRequireAuthGatesRoutes(t *testing.T) {
	router, _ := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := login(t, router, "customer", "customer123")
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsCustomers(t *testing.T) {
	router, _ := newAPI(t)

	resp := login(t, router, "customer", "customer123")
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminResp := login(t, router, "admin", "admin123")
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminResp.Data.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutEndpointInvalidatesToken(t *testing.T) {
	router, _ := newAPI(t)

	resp := login(t, router, "customer", "customer123")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code, "old token is dead after logout")
}
