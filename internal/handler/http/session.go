package http

import (
	"log/slog"
	"net/http"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/navigation"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	apperrors "github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/errors"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/httputil"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/middleware"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/validator"
)

// SessionHandler exposes the navigation history over HTTP: push, back,
// forward and the current view.
type SessionHandler struct {
	sessions *service.SessionService
	logger   *slog.Logger
}

// NewSessionHandler creates a new session HTTP handler.
func NewSessionHandler(sessions *service.SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// NavigateRequest is the JSON request body for POST /api/v1/session/navigate.
// Page selects the entry kind; the remaining fields carry the context that
// kind needs and are ignored for other kinds.
type NavigateRequest struct {
	Page       string `json:"page" validate:"required"`
	ProductID  string `json:"product_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	OrderID    string `json:"order_id,omitempty"`
	Query      string `json:"query,omitempty"`
	Slug       string `json:"slug,omitempty"`
}

// entry maps the request to a navigation entry, rejecting unknown pages and
// missing context fields.
func (req NavigateRequest) entry() (navigation.Entry, error) {
	switch navigation.Page(req.Page) {
	case navigation.PageHome:
		return navigation.Home{}, nil
	case navigation.PageProducts:
		return navigation.ProductList{}, nil
	case navigation.PageCategory:
		if req.CategoryID == "" {
			return nil, apperrors.InvalidInput("category_id is required for the category page")
		}
		return navigation.CategoryPage{CategoryID: req.CategoryID}, nil
	case navigation.PageProductDetail:
		if req.ProductID == "" {
			return nil, apperrors.InvalidInput("product_id is required for the product page")
		}
		return navigation.ProductDetail{ProductID: req.ProductID}, nil
	case navigation.PageSearch:
		return navigation.SearchResults{Query: req.Query}, nil
	case navigation.PageOrders:
		return navigation.OrderList{}, nil
	case navigation.PageOrderDetail:
		if req.OrderID == "" {
			return nil, apperrors.InvalidInput("order_id is required for the order page")
		}
		return navigation.OrderDetail{OrderID: req.OrderID}, nil
	case navigation.PageWishlist:
		return navigation.Wishlist{}, nil
	case navigation.PageProfile:
		return navigation.Profile{}, nil
	case navigation.PageStatic:
		if req.Slug == "" {
			return nil, apperrors.InvalidInput("slug is required for static pages")
		}
		return navigation.StaticPage{Slug: req.Slug}, nil
	default:
		return nil, apperrors.InvalidInput("unknown page: " + req.Page)
	}
}

// Navigate handles POST /api/v1/session/navigate
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	entry, err := req.entry()
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	sessionID := middleware.UserIDFromContext(r.Context())
	view := h.sessions.Navigate(r.Context(), sessionID, entry)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Back handles POST /api/v1/session/back. At the oldest entry this is a
// no-op returning the unchanged view.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())
	view := h.sessions.Back(r.Context(), sessionID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Forward handles POST /api/v1/session/forward.
func (h *SessionHandler) Forward(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())
	view := h.sessions.Forward(r.Context(), sessionID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// View handles GET /api/v1/session/view
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.UserIDFromContext(r.Context())
	view := h.sessions.View(r.Context(), sessionID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
