package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/auth"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/orders"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/health"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/middleware"
)

// Deps bundles everything the router needs.
type Deps struct {
	Auth     *service.AuthService
	Sessions *service.SessionService
	Carts    *service.CartService
	Checkout *service.CheckoutService
	Wishlist *service.WishlistService
	Catalog  *catalog.Catalog
	Orders   *orders.Store
	Tokens   *auth.TokenManager
	Health   *health.Handler
	Logger   *slog.Logger

	// PprofCIDRs restricts the debug endpoints to these networks.
	PprofCIDRs []string
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, deps.PprofCIDRs, deps.Logger)

	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)
	cartHandler := NewCartHandler(deps.Carts, deps.Catalog, deps.Logger)
	sessionHandler := NewSessionHandler(deps.Sessions, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.Logger)
	ordersHandler := NewOrdersHandler(deps.Orders, deps.Logger)
	wishlistHandler := NewWishlistHandler(deps.Wishlist, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Public: login and the catalog.
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(60))

			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/{productId}", catalogHandler.GetProduct)
			r.Get("/categories", catalogHandler.ListCategories)
			r.Get("/categories/{categoryId}/products", catalogHandler.ListCategoryProducts)
			r.Get("/search", catalogHandler.Search)
		})

		// Session-scoped routes behind the session token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokenValidator(deps.Tokens)))

			r.Get("/cart", cartHandler.GetCart)
			r.Delete("/cart", cartHandler.ClearCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{productId}", cartHandler.UpdateItemQuantity)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

			r.Get("/session/view", sessionHandler.View)
			r.Post("/session/navigate", sessionHandler.Navigate)
			r.Post("/session/back", sessionHandler.Back)
			r.Post("/session/forward", sessionHandler.Forward)

			r.Post("/checkout", checkoutHandler.Checkout)

			r.Get("/wishlist", wishlistHandler.List)
			r.Put("/wishlist/{productId}", wishlistHandler.Add)
			r.Delete("/wishlist/{productId}", wishlistHandler.Remove)

			r.Get("/orders", ordersHandler.List)
			r.Get("/orders/{orderId}", ordersHandler.Get)
		})
	})

	return r
}

// tokenValidator adapts the session token manager to the auth middleware's
// validator contract.
func tokenValidator(tokens *auth.TokenManager) middleware.TokenValidator {
	return func(token string) (*middleware.Claims, error) {
		claims, err := tokens.Validate(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{UserID: claims.UserID, Email: claims.Email}, nil
	}
}
