package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/repository"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// WishlistService manages the products a user has saved for later, resolving
// stored product IDs against the catalog.
type WishlistService struct {
	repo    repository.WishlistRepository
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, cat *catalog.Catalog, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:    repo,
		catalog: cat,
		logger:  logger,
	}
}

// Add saves a product to the user's wishlist. Unknown product IDs are
// rejected so the wishlist never references products the catalog cannot
// resolve.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.catalog.ProductByID(productID); err != nil {
		return err
	}
	if err := s.repo.Add(ctx, userID, productID); err != nil {
		return fmt.Errorf("add wishlist item: %w", err)
	}

	s.logger.InfoContext(ctx, "product added to wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)
	return nil
}

// Remove deletes a product from the user's wishlist. Removing a product that
// is not saved is a no-op.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove wishlist item: %w", err)
	}

	s.logger.InfoContext(ctx, "product removed from wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)
	return nil
}

// Contains checks whether a product is saved in the user's wishlist.
func (s *WishlistService) Contains(ctx context.Context, userID, productID string) (bool, error) {
	return s.repo.Contains(ctx, userID, productID)
}

// List returns one page of the user's saved products and the total count.
// IDs that no longer resolve against the catalog are skipped.
func (s *WishlistService) List(ctx context.Context, userID string, params pagination.Params) ([]domain.Product, int, error) {
	ids, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list wishlist: %w", err)
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.catalog.ProductByID(id)
		if err != nil {
			continue
		}
		products = append(products, *p)
	}

	// Redis set order is unspecified; sort for stable pages.
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	total := len(products)
	offset := params.Offset
	if offset > total {
		offset = total
	}
	end := offset + params.PerPage
	if end > total {
		end = total
	}

	return products[offset:end], total, nil
}
