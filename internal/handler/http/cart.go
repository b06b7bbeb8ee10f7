package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/cart"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/middleware"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/validator"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	carts   *service.CartService
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(carts *service.CartService, cat *catalog.Catalog, logger *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, catalog: cat, logger: logger}
}

// AddItemRequest is the JSON request body for adding a product to the cart.
// The product's name, price and image come from the catalog, never from the
// client.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest is the JSON request body for setting an item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(store)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	store := h.store(r)
	store.AddItem(r.Context(), *product)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(store)})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{productId}. A quantity
// of zero or less removes the item; an unknown product ID is a no-op.
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	store := h.store(r)
	store.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), req.Quantity)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(store)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}. Removing an item
// that is not in the cart succeeds without changing anything.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	store.RemoveItem(r.Context(), chi.URLParam(r, "productId"))

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(store)})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	store.Clear(r.Context())

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView(store)})
}

func (h *CartHandler) store(r *http.Request) *cart.Store {
	sessionID := middleware.UserIDFromContext(r.Context())
	return h.carts.Store(r.Context(), sessionID)
}

// cartView builds the response body: the item sequence plus the derived
// values, recomputed from the items on every call.
func cartView(store *cart.Store) service.CartSummary {
	snap := store.Snapshot()
	items := snap.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return service.CartSummary{
		Items:       items,
		ItemCount:   snap.ItemCount(),
		TotalAmount: snap.TotalAmount(),
	}
}
