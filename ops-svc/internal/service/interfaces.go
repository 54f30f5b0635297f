package service

import (
	"context"

	"luciafood-express/ops-svc/internal/domain"
	"luciafood-express/ops-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(event domain.OrderEvent) error
	TopRestaurantsToday(limit int) ([]domain.RestaurantActivity, error)
	TopRestaurantsByRevenue(limit int) ([]domain.RestaurantActivity, error)
	ZoneActivityToday() ([]domain.ZoneActivity, error)
	RestaurantSummary(restaurantID int) (*domain.RestaurantSummary, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
