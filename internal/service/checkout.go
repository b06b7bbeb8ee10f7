package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/event"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/orders"
	apperrors "github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/errors"
)

// CheckoutService turns the session cart into an order. Payment is a mock: a
// simulated network delay stands in for the charge and always succeeds.
type CheckoutService struct {
	carts  *CartService
	orders *orders.Store
	events *event.Producer
	delay  time.Duration
	logger *slog.Logger
}

// NewCheckoutService creates a new checkout service. delay is the simulated
// payment latency.
func NewCheckoutService(carts *CartService, orderStore *orders.Store, events *event.Producer, delay time.Duration, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		carts:  carts,
		orders: orderStore,
		events: events,
		delay:  delay,
		logger: logger,
	}
}

// Checkout snapshots the session cart, creates an order from it, clears the
// cart, and publishes order.placed. An empty cart is rejected.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string) (*domain.Order, error) {
	store := s.carts.Store(ctx, sessionID)

	snap := store.Snapshot()
	if snap.IsEmpty() {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	if err := s.simulatePayment(ctx); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
		})
	}

	order := s.orders.Create(sessionID, items)
	store.Clear(ctx)

	if s.events != nil {
		if err := s.events.PublishOrderPlaced(ctx, order); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish order.placed event",
				slog.String("order_id", order.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("session_id", sessionID),
		slog.String("order_id", order.ID),
		slog.Int64("total_amount", order.TotalAmount),
	)

	return order, nil
}

// simulatePayment waits out the configured mock latency, honoring context
// cancellation.
func (s *CheckoutService) simulatePayment(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
