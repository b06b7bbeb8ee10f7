package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/cart"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/event"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/repository"
)

// CartService hands out the per-session cart stores. Each store is created on
// first use, which is when its single load from persistence happens; after
// that the in-memory store is authoritative for the rest of the session.
type CartService struct {
	mu     sync.Mutex
	stores map[string]*cart.Store

	repo   repository.CartRepository
	events *event.Producer
	logger *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, events *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		stores: make(map[string]*cart.Store),
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// Store returns the cart store for a session, creating and loading it on
// first access.
func (s *CartService) Store(ctx context.Context, sessionID string) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[sessionID]; ok {
		return st
	}
	st := cart.NewStore(ctx, sessionID, s.repo, s.events, s.logger)
	s.stores[sessionID] = st
	return st
}
