package http

import (
	"log/slog"
	"net/http"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/middleware"
)

// CheckoutHandler handles the mock checkout endpoint.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(checkout *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

// Checkout handles POST /api/v1/checkout. The session cart becomes an order
// and empties; an empty cart is rejected with 400.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())

	order, err := h.checkout.Checkout(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}
