package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// CatalogHandler serves the read-only product catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(cat *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: cat, logger: logger}
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	products, total := h.catalog.Products(params)
	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(products, total, params))
}

// GetProduct handles GET /api/v1/products/{productId}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ProductByID(chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.Categories()})
}

// ListCategoryProducts handles GET /api/v1/categories/{categoryId}/products
func (h *CatalogHandler) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if _, err := h.catalog.CategoryByID(categoryID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	params := pagination.FromRequest(r)
	products, total := h.catalog.ProductsByCategory(categoryID, params)
	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(products, total, params))
}

// Search handles GET /api/v1/search?q=
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	products, total := h.catalog.Search(r.URL.Query().Get("q"), params)
	httputil.WriteJSON(w, http.StatusOK, pagination.NewResult(products, total, params))
}
