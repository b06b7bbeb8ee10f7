package http

import (
	"log/slog"
	"net/http"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/validator"
)

// AuthHandler handles the mock login endpoint.
type AuthHandler struct {
	service *service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new auth HTTP handler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: svc, logger: logger}
}

// LoginRequest is the JSON request body for POST /api/v1/auth/login. The
// password is required but never checked; this is a demo login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}
