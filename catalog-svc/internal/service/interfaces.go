package service

import "luciafood-express/catalog-svc/internal/domain"

type CatalogInterface interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(id int, rest *domain.Restaurant) error
	DeleteRestaurant(id int) error

	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error)
	UpdateMenuItem(restaurantID, itemID int, item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) error

	SetRestaurantImage(id int, imageURL string) error
	SetMenuItemImage(restaurantID, itemID int, imageURL string) error
}

type CatalogRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(id int, rest *domain.Restaurant) error
	DeleteRestaurant(id int) (bool, error)
	SetRestaurantImage(id int, imageURL string) error

	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error)
	UpdateMenuItem(restaurantID, itemID int, item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) (bool, error)
	SetMenuItemImage(restaurantID, itemID int, imageURL string) error
}

var _ CatalogInterface = (*CatalogService)(nil)
