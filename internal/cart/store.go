// Package cart implements the session cart store: the authoritative in-memory
// representation of the items a visitor intends to purchase, mirrored to a
// key-value persistence collaborator so it survives reloads.
package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/event"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/repository"
	apperrors "github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/errors"
)

// Store owns the cart for a single session. It loads from persistence exactly
// once at construction and writes the full item sequence through on every
// mutation. The in-memory state is authoritative: persistence and event
// publishing are best-effort mirroring, and their failures are logged but
// never surfaced to callers. All operations are total; unknown product IDs
// are treated as nothing-to-do.
//
// A mutex serializes operations, so derived values always reflect the most
// recently applied operation.
type Store struct {
	mu        sync.Mutex
	sessionID string
	cart      *domain.Cart
	repo      repository.CartRepository
	events    *event.Producer
	logger    *slog.Logger
}

// NewStore creates the cart store for a session, performing the single load
// from the persistence collaborator. A missing key starts an empty cart; a
// corrupt or unreadable value does too, after a warning.
func NewStore(ctx context.Context, sessionID string, repo repository.CartRepository, events *event.Producer, logger *slog.Logger) *Store {
	s := &Store{
		sessionID: sessionID,
		cart:      &domain.Cart{},
		repo:      repo,
		events:    events,
		logger:    logger,
	}

	loaded, err := repo.Load(ctx, sessionID)
	switch {
	case err == nil:
		s.cart = loaded
	case errors.Is(err, apperrors.ErrNotFound):
		// First visit, nothing persisted yet.
	default:
		logger.WarnContext(ctx, "failed to load persisted cart, starting empty",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	return s
}

// AddItem adds one unit of the product to the cart, merging with an existing
// item for the same product.
func (s *Store) AddItem(ctx context.Context, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.AddItem(p)
	s.persist(ctx)
	s.publishUpdated(ctx)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", s.sessionID),
		slog.String("product_id", p.ID),
		slog.Int("quantity", s.cart.ItemQuantity(p.ID)),
	)
}

// RemoveItem deletes the item for the given product ID if present.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.cart.RemoveItem(productID)
	s.persist(ctx)
	s.publishUpdated(ctx)

	if removed {
		s.logger.InfoContext(ctx, "item removed from cart",
			slog.String("session_id", s.sessionID),
			slog.String("product_id", productID),
		)
	}
}

// UpdateQuantity sets the quantity for the given product. A quantity of zero
// or less removes the item; an unknown product ID is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.cart.SetQuantity(productID, quantity)
	s.persist(ctx)
	s.publishUpdated(ctx)

	if changed {
		s.logger.InfoContext(ctx, "cart item quantity updated",
			slog.String("session_id", s.sessionID),
			slog.String("product_id", productID),
			slog.Int("quantity", quantity),
		)
	}
}

// Clear empties the cart and deletes the persisted entry; an empty cart and
// a missing key restore identically, so there is nothing worth keeping.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	if err := s.repo.Delete(ctx, s.sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete persisted cart",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}

	if s.events != nil {
		if err := s.events.PublishCartCleared(ctx, s.sessionID); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
				slog.String("session_id", s.sessionID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", s.sessionID),
	)
}

// ItemQuantity returns the quantity held for the given product, or 0 if the
// product is not in the cart. Pure query, no side effects.
func (s *Store) ItemQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemQuantity(productID)
}

// TotalAmount returns the recomputed cart total in cents.
func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalAmount()
}

// ItemCount returns the recomputed sum of quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// Snapshot returns a deep copy of the current cart state.
func (s *Store) Snapshot() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// persist writes the full current item sequence through to the persistence
// collaborator. A failed write must not corrupt or roll back the in-memory
// state, so the error is only logged. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.sessionID, s.cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}
}

// publishUpdated mirrors the cart to the event stream. Callers hold the mutex.
func (s *Store) publishUpdated(ctx context.Context) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCartUpdated(ctx, s.sessionID, s.cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}
}
