package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/navigation"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/orders"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// Breadcrumb is one element of the trail derived from the current navigation
// entry's context fields.
type Breadcrumb struct {
	Label string          `json:"label"`
	Page  navigation.Page `json:"page"`
	Ref   string          `json:"ref,omitempty"`
}

// CartSummary is the cart slice of every view: the item sequence plus the
// recomputed derived values.
type CartSummary struct {
	Items       []domain.CartItem `json:"items"`
	ItemCount   int               `json:"item_count"`
	TotalAmount int64             `json:"total_amount"`
}

// ViewState is everything a client needs to render the current page. Every
// field is derived from the entry at the history cursor; fields the entry
// does not carry stay at their zero value, so nothing leaks between
// unrelated pages.
type ViewState struct {
	Page         navigation.Page  `json:"page"`
	CanGoBack    bool             `json:"can_go_back"`
	CanGoForward bool             `json:"can_go_forward"`
	Breadcrumbs  []Breadcrumb     `json:"breadcrumbs"`
	Product      *domain.Product  `json:"product,omitempty"`
	Category     *domain.Category `json:"category,omitempty"`
	Products     []domain.Product `json:"products,omitempty"`
	Order        *domain.Order    `json:"order,omitempty"`
	Orders       []domain.Order   `json:"orders,omitempty"`
	Wishlist     []domain.Product `json:"wishlist,omitempty"`
	SearchQuery  string           `json:"search_query,omitempty"`
	StaticSlug   string           `json:"static_slug,omitempty"`
	Cart         CartSummary      `json:"cart"`
}

// SessionService owns one navigation history per session and derives view
// state from the entry at the cursor. Histories are not goroutine-safe, so
// every access happens under the service mutex; view derivation works on a
// snapshot (entry plus cursor flags) captured inside the lock and never
// touches the history afterwards.
type SessionService struct {
	mu        sync.Mutex
	histories map[string]*navigation.History

	catalog  *catalog.Catalog
	orders   *orders.Store
	wishlist *WishlistService
	carts    *CartService
	logger   *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(cat *catalog.Catalog, orderStore *orders.Store, wishlist *WishlistService, carts *CartService, logger *slog.Logger) *SessionService {
	return &SessionService{
		histories: make(map[string]*navigation.History),
		catalog:   cat,
		orders:    orderStore,
		wishlist:  wishlist,
		carts:     carts,
		logger:    logger,
	}
}

// Navigate pushes a new entry onto the session's history and returns the
// resulting view.
func (s *SessionService) Navigate(ctx context.Context, sessionID string, entry navigation.Entry) ViewState {
	s.mu.Lock()
	h := s.history(sessionID)
	h.Push(entry)
	snap := snapshotHistory(h)
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "navigation push",
		slog.String("session_id", sessionID),
		slog.String("page", string(entry.Page())),
	)

	return s.buildView(ctx, sessionID, snap)
}

// Back moves the session one entry back, if possible, and returns the view
// for the entry now at the cursor. At the start of the history this is a
// no-op returning the unchanged view.
func (s *SessionService) Back(ctx context.Context, sessionID string) ViewState {
	s.mu.Lock()
	h := s.history(sessionID)
	h.Back()
	snap := snapshotHistory(h)
	s.mu.Unlock()

	return s.buildView(ctx, sessionID, snap)
}

// Forward moves the session one entry forward, if possible, and returns the
// view for the entry now at the cursor.
func (s *SessionService) Forward(ctx context.Context, sessionID string) ViewState {
	s.mu.Lock()
	h := s.history(sessionID)
	h.Forward()
	snap := snapshotHistory(h)
	s.mu.Unlock()

	return s.buildView(ctx, sessionID, snap)
}

// View returns the view for the session's current entry without touching the
// history.
func (s *SessionService) View(ctx context.Context, sessionID string) ViewState {
	s.mu.Lock()
	snap := snapshotHistory(s.history(sessionID))
	s.mu.Unlock()

	return s.buildView(ctx, sessionID, snap)
}

// history returns the session's history, seeding a fresh one (home, cursor 0)
// on first access. Callers hold the mutex.
func (s *SessionService) history(sessionID string) *navigation.History {
	h, ok := s.histories[sessionID]
	if !ok {
		h = navigation.NewHistory()
		s.histories[sessionID] = h
	}
	return h
}

// historySnapshot is the immutable slice of history state a view is built
// from. Entries are value types, so once captured the snapshot is safe to
// read without the service mutex.
type historySnapshot struct {
	entry        navigation.Entry
	canGoBack    bool
	canGoForward bool
}

// snapshotHistory captures the current entry and cursor flags. Callers hold
// the mutex.
func snapshotHistory(h *navigation.History) historySnapshot {
	return historySnapshot{
		entry:        h.Current(),
		canGoBack:    h.CanGoBack(),
		canGoForward: h.CanGoForward(),
	}
}

// buildView derives the complete view state from the entry at the cursor.
// All transient context (selected product, category, order, search text) is
// re-derived from the entry alone.
func (s *SessionService) buildView(ctx context.Context, sessionID string, snap historySnapshot) ViewState {
	entry := snap.entry

	view := ViewState{
		Page:         entry.Page(),
		CanGoBack:    snap.canGoBack,
		CanGoForward: snap.canGoForward,
		Breadcrumbs:  []Breadcrumb{{Label: "Home", Page: navigation.PageHome}},
	}

	params := pagination.DefaultParams()

	switch e := entry.(type) {
	case navigation.Home:
		// Landing page shows the first page of products.
		view.Products, _ = s.catalog.Products(params)
		view.Breadcrumbs = view.Breadcrumbs[:1]

	case navigation.ProductList:
		view.Products, _ = s.catalog.Products(params)
		view.Breadcrumbs = append(view.Breadcrumbs, Breadcrumb{Label: "Products", Page: navigation.PageProducts})

	case navigation.CategoryPage:
		view.Products, _ = s.catalog.ProductsByCategory(e.CategoryID, params)
		crumb := Breadcrumb{Label: e.CategoryID, Page: navigation.PageCategory, Ref: e.CategoryID}
		if cat, err := s.catalog.CategoryByID(e.CategoryID); err == nil {
			view.Category = cat
			crumb.Label = cat.Name
		}
		view.Breadcrumbs = append(view.Breadcrumbs,
			Breadcrumb{Label: "Products", Page: navigation.PageProducts}, crumb)

	case navigation.ProductDetail:
		crumb := Breadcrumb{Label: e.ProductID, Page: navigation.PageProductDetail, Ref: e.ProductID}
		if p, err := s.catalog.ProductByID(e.ProductID); err == nil {
			view.Product = p
			crumb.Label = p.Name
			if cat, err := s.catalog.CategoryByID(p.CategoryID); err == nil {
				view.Breadcrumbs = append(view.Breadcrumbs,
					Breadcrumb{Label: cat.Name, Page: navigation.PageCategory, Ref: cat.ID})
			}
		}
		view.Breadcrumbs = append(view.Breadcrumbs, crumb)

	case navigation.SearchResults:
		view.SearchQuery = e.Query
		view.Products, _ = s.catalog.Search(e.Query, params)
		view.Breadcrumbs = append(view.Breadcrumbs,
			Breadcrumb{Label: fmt.Sprintf("Search %q", e.Query), Page: navigation.PageSearch, Ref: e.Query})

	case navigation.OrderList:
		view.Orders, _ = s.orders.List(sessionID, params)
		view.Breadcrumbs = append(view.Breadcrumbs, Breadcrumb{Label: "Orders", Page: navigation.PageOrders})

	case navigation.OrderDetail:
		crumb := Breadcrumb{Label: "Order " + shortID(e.OrderID), Page: navigation.PageOrderDetail, Ref: e.OrderID}
		if o, err := s.orders.Get(sessionID, e.OrderID); err == nil {
			view.Order = o
		}
		view.Breadcrumbs = append(view.Breadcrumbs,
			Breadcrumb{Label: "Orders", Page: navigation.PageOrders}, crumb)

	case navigation.Wishlist:
		if products, _, err := s.wishlist.List(ctx, sessionID, params); err == nil {
			view.Wishlist = products
		} else {
			s.logger.ErrorContext(ctx, "failed to load wishlist for view",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
		}
		view.Breadcrumbs = append(view.Breadcrumbs, Breadcrumb{Label: "Wishlist", Page: navigation.PageWishlist})

	case navigation.Profile:
		view.Breadcrumbs = append(view.Breadcrumbs, Breadcrumb{Label: "Profile", Page: navigation.PageProfile})

	case navigation.StaticPage:
		view.StaticSlug = e.Slug
		view.Breadcrumbs = append(view.Breadcrumbs,
			Breadcrumb{Label: e.Slug, Page: navigation.PageStatic, Ref: e.Slug})
	}

	cartSnap := s.carts.Store(ctx, sessionID).Snapshot()
	items := cartSnap.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	view.Cart = CartSummary{
		Items:       items,
		ItemCount:   cartSnap.ItemCount(),
		TotalAmount: cartSnap.TotalAmount(),
	}

	return view
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
