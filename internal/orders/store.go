// Package orders holds the storefront's order history: a mock in-memory
// store seeded with past orders per user and appended to by checkout.
package orders

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	apperrors "github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/errors"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// Store keeps orders in memory, keyed by user. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	byUser map[string][]*domain.Order
	byID   map[string]*domain.Order
	seeded map[string]bool
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{
		byUser: make(map[string][]*domain.Order),
		byID:   make(map[string]*domain.Order),
		seeded: make(map[string]bool),
	}
}

// Create appends a new order for the user from the given line items and
// returns it. Status starts at processing; the total is computed from the
// items.
func (s *Store) Create(userID string, items []domain.OrderItem) *domain.Order {
	order := &domain.Order{
		ID:       uuid.New().String(),
		UserID:   userID,
		Status:   domain.OrderStatusProcessing,
		Items:    items,
		Currency: domain.DefaultCurrency,
		PlacedAt: time.Now().UTC(),
	}
	order.TotalAmount = order.ComputeTotal()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(order)
	return order
}

// List returns one page of the user's orders, newest first, and the total
// order count for that user.
func (s *Store) List(userID string, params pagination.Params) ([]domain.Order, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.byUser[userID]
	total := len(all)

	offset := params.Offset
	if offset > total {
		offset = total
	}
	end := offset + params.PerPage
	if end > total {
		end = total
	}

	page := make([]domain.Order, 0, end-offset)
	for _, o := range all[offset:end] {
		page = append(page, *o)
	}
	return page, total
}

// Get looks up one of the user's orders by ID. Orders belonging to other
// users are reported as not found.
func (s *Store) Get(userID, orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.byID[orderID]
	if !ok || order.UserID != userID {
		return nil, apperrors.NotFound("order", orderID)
	}
	copied := *order
	return &copied, nil
}

// EnsureDemoHistory seeds a couple of past mock orders for the user the first
// time it is called for them, so the order-history pages have content to
// show. Subsequent calls are no-ops.
func (s *Store) EnsureDemoHistory(userID string, products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded[userID] {
		return
	}
	// Not enough catalog data to build the mock orders from; leave the user
	// unseeded so a later call with a populated catalog can still seed.
	if len(products) < 2 {
		return
	}
	s.seeded[userID] = true

	now := time.Now().UTC()

	delivered := &domain.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: domain.OrderStatusDelivered,
		Items: []domain.OrderItem{
			{ProductID: products[0].ID, Name: products[0].Name, Price: products[0].Price, ImageURL: products[0].ImageURL, Quantity: 1},
			{ProductID: products[1].ID, Name: products[1].Name, Price: products[1].Price, ImageURL: products[1].ImageURL, Quantity: 2},
		},
		Currency: domain.DefaultCurrency,
		PlacedAt: now.AddDate(0, 0, -21),
	}
	delivered.TotalAmount = delivered.ComputeTotal()

	shipped := &domain.Order{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: domain.OrderStatusShipped,
		Items: []domain.OrderItem{
			{ProductID: products[1].ID, Name: products[1].Name, Price: products[1].Price, ImageURL: products[1].ImageURL, Quantity: 1},
		},
		Currency: domain.DefaultCurrency,
		PlacedAt: now.AddDate(0, 0, -4),
	}
	shipped.TotalAmount = shipped.ComputeTotal()

	s.put(delivered)
	s.put(shipped)
}

// put inserts an order keeping the user's slice sorted newest first. Callers
// hold the write lock.
func (s *Store) put(order *domain.Order) {
	s.byID[order.ID] = order
	list := append(s.byUser[order.UserID], order)
	sort.Slice(list, func(i, j int) bool {
		return list[i].PlacedAt.After(list[j].PlacedAt)
	})
	s.byUser[order.UserID] = list
}
