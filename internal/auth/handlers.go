package auth

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-apotek/internal/common"
)

// Handler exposes login and logout endpoints.
type Handler struct {
	Service  *Service
	Validate *validator.Validate
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "auth not configured", nil)
		return
	}
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, common.ValidationError("invalid JSON payload", nil))
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(input); err != nil {
			common.WriteError(w, common.ValidationError("username and password are required", common.ValidationDetails(err)))
			return
		}
	}
	result, err := h.Service.Login(input.Username, input.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": result})
}

// Logout discards the caller's session along with its catalog and cart.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, common.CodeInternal, "auth not configured", nil)
		return
	}
	identity, ok := common.IdentityFrom(r.Context())
	if !ok {
		common.JSONError(w, http.StatusUnauthorized, common.CodeUnauthorized, "missing or invalid token", nil)
		return
	}
	h.Service.Logout(identity)
	w.WriteHeader(http.StatusNoContent)
}
