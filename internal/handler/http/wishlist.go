package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/middleware"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	wishlist *service.WishlistService
	logger   *slog.Logger
}

// NewWishlistHandler creates a new wishlist HTTP handler.
func NewWishlistHandler(wishlist *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, logger: logger}
}

// List handles GET /api/v1/wishlist
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())
	params := pagination.FromRequest(r)

	products, total, err := h.wishlist.List(r.Context(), sessionID, params)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(products, total, params))
}

// Add handles PUT /api/v1/wishlist/{productId}. Membership is a set, so a
// repeat add succeeds.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())

	if err := h.wishlist.Add(r.Context(), sessionID, chi.URLParam(r, "productId")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "added"}})
}

// Remove handles DELETE /api/v1/wishlist/{productId}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())

	if err := h.wishlist.Remove(r.Context(), sessionID, chi.URLParam(r, "productId")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "removed"}})
}
