package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/auth"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/orders"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/pagination"
)

// LoginResult is what a successful mock login returns.
type LoginResult struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// AuthService implements the storefront's mock authentication: any
// credentials are accepted after a simulated network delay, and a signed
// session token is issued. The user ID is derived from the email so repeat
// logins see the same order history and wishlist.
type AuthService struct {
	tokens  *auth.TokenManager
	orders  *orders.Store
	catalog *catalog.Catalog
	delay   time.Duration
	logger  *slog.Logger
}

// NewAuthService creates a new auth service. delay is the simulated
// authentication latency.
func NewAuthService(tokens *auth.TokenManager, orderStore *orders.Store, cat *catalog.Catalog, delay time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		tokens:  tokens,
		orders:  orderStore,
		catalog: cat,
		delay:   delay,
		logger:  logger,
	}
}

// Login authenticates a visitor. The password is accepted as-is; there is no
// real credential verification in the demo.
func (s *AuthService) Login(ctx context.Context, email string) (*LoginResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	userID := auth.UserIDForEmail(email)

	// First login for this user gets a mock order history to browse.
	products, _ := s.catalog.Search("", pagination.DefaultParams())
	s.orders.EnsureDemoHistory(userID, products)

	token, err := s.tokens.Issue(userID, email)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", userID),
		slog.String("email", email),
	)

	return &LoginResult{Token: token, UserID: userID, Email: email}, nil
}
