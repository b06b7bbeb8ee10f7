package repository

import (
	"context"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
)

// CartRepository is the key-value persistence collaborator for carts. The
// in-memory cart store is authoritative; this mirrors it so a cart survives
// reloads.
type CartRepository interface {
	// Load retrieves the persisted cart for a session. Returns an error
	// wrapping apperrors.ErrNotFound when nothing was persisted.
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists the full item sequence for a session, overwriting any
	// previous value. Derived values are never persisted.
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error

	// Delete removes the persisted cart for a session.
	Delete(ctx context.Context, sessionID string) error
}

// WishlistRepository persists the set of product IDs a user has saved.
type WishlistRepository interface {
	// Add inserts a product into the user's wishlist (idempotent).
	Add(ctx context.Context, userID, productID string) error

	// Remove deletes a product from the user's wishlist.
	Remove(ctx context.Context, userID, productID string) error

	// List returns all product IDs in the user's wishlist.
	List(ctx context.Context, userID string) ([]string, error)

	// Contains checks whether a product is in the user's wishlist.
	Contains(ctx context.Context, userID, productID string) (bool, error)
}
