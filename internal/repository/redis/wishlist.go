package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistRepository implements repository.WishlistRepository using a Redis
// set per user.
type WishlistRepository struct {
	client *redis.Client
}

// NewWishlistRepository creates a new Redis-backed wishlist repository.
func NewWishlistRepository(client *redis.Client) *WishlistRepository {
	return &WishlistRepository{client: client}
}

// Add inserts a product into the user's wishlist. Adding a product that is
// already saved is a no-op.
func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) error {
	if err := r.client.SAdd(ctx, wishlistKeyPrefix+userID, productID).Err(); err != nil {
		return fmt.Errorf("redis sadd wishlist: %w", err)
	}
	return nil
}

// Remove deletes a product from the user's wishlist.
func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	if err := r.client.SRem(ctx, wishlistKeyPrefix+userID, productID).Err(); err != nil {
		return fmt.Errorf("redis srem wishlist: %w", err)
	}
	return nil
}

// List returns all product IDs saved by the user.
func (r *WishlistRepository) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, wishlistKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers wishlist: %w", err)
	}
	return ids, nil
}

// Contains checks whether a product is in the user's wishlist.
func (r *WishlistRepository) Contains(ctx context.Context, userID, productID string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, wishlistKeyPrefix+userID, productID).Result()
	if err != nil {
		return false, fmt.Errorf("redis sismember wishlist: %w", err)
	}
	return ok, nil
}
