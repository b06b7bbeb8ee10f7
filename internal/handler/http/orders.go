package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/orders"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/middleware"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// OrdersHandler serves the session's order history.
type OrdersHandler struct {
	orders *orders.Store
	logger *slog.Logger
}

// NewOrdersHandler creates a new orders HTTP handler.
func NewOrdersHandler(store *orders.Store, logger *slog.Logger) *OrdersHandler {
	return &OrdersHandler{orders: store, logger: logger}
}

// List handles GET /api/v1/orders
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())
	params := pagination.FromRequest(r)

	list, total := h.orders.List(sessionID, params)
	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(list, total, params))
}

// Get handles GET /api/v1/orders/{orderId}. Orders belonging to other users
// are indistinguishable from missing ones.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())

	order, err := h.orders.Get(sessionID, chi.URLParam(r, "orderId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}
