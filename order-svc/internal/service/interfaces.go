package service

import (
	"context"

	"luciafood-express/order-svc/internal/domain"
)

type CheckoutInterface interface {
	Checkout(ctx context.Context, sessionID string, info domain.CustomerInfo) (*domain.CheckoutResult, error)
	GetOrder(id int) (*domain.Order, error)
	OrderChatLink(id int) (string, error)
}

// MenuReader is the read-only view of the catalog; the cart never mutates it.
type MenuReader interface {
	GetMenuItem(id int) (*domain.MenuItem, error)
	GetRestaurantName(id int) (string, error)
}

type OrderRepository interface {
	SaveOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
}

// ChatLinker builds the deep link that hands the order transcript to an
// external messaging app.
type ChatLinker interface {
	ChatLink(destination, message string) (string, error)
}

// CheckoutGuard prevents a second checkout for the same session while one is
// in flight.
type CheckoutGuard interface {
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string)
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

// ProfileReader supplies a returning customer's stored contact details to
// prefill checkout fields; purely an optional default.
type ProfileReader interface {
	GetProfile(phone string) (*domain.CustomerProfile, error)
}

var _ CheckoutInterface = (*CheckoutService)(nil)
