package service

import (
	"errors"

	"luciafood-express/catalog-svc/internal/domain"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidPrice = errors.New("prices must be non-negative")
	ErrNotFound     = errors.New("not found")
)

type CatalogService struct {
	repository CatalogRepository
}

func NewCatalogService(repository CatalogRepository) *CatalogService {
	return &CatalogService{repository: repository}
}

func (s *CatalogService) CreateRestaurant(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return ErrNameRequired
	}
	return s.repository.CreateRestaurant(rest)
}

func (s *CatalogService) ListRestaurants() ([]domain.Restaurant, error) {
	return s.repository.ListRestaurants()
}

func (s *CatalogService) GetRestaurant(id int) (*domain.Restaurant, error) {
	return s.repository.GetRestaurant(id)
}

func (s *CatalogService) UpdateRestaurant(id int, rest *domain.Restaurant) error {
	if rest.Name == "" {
		return ErrNameRequired
	}
	return s.repository.UpdateRestaurant(id, rest)
}

func (s *CatalogService) DeleteRestaurant(id int) error {
	deleted, err := s.repository.DeleteRestaurant(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) CreateMenuItem(item *domain.MenuItem) error {
	if item.Name == "" {
		return ErrNameRequired
	}
	if item.ListPrice < 0 || (item.PreferredPrice != nil && *item.PreferredPrice < 0) {
		return ErrInvalidPrice
	}
	return s.repository.CreateMenuItem(item)
}

func (s *CatalogService) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	return s.repository.ListMenuItems(restaurantID)
}

func (s *CatalogService) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	return s.repository.GetMenuItem(restaurantID, itemID)
}

func (s *CatalogService) UpdateMenuItem(restaurantID, itemID int, item *domain.MenuItem) error {
	if item.Name == "" {
		return ErrNameRequired
	}
	if item.ListPrice < 0 || (item.PreferredPrice != nil && *item.PreferredPrice < 0) {
		return ErrInvalidPrice
	}
	return s.repository.UpdateMenuItem(restaurantID, itemID, item)
}

func (s *CatalogService) DeleteMenuItem(restaurantID, itemID int) error {
	deleted, err := s.repository.DeleteMenuItem(restaurantID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *CatalogService) SetRestaurantImage(id int, imageURL string) error {
	return s.repository.SetRestaurantImage(id, imageURL)
}

func (s *CatalogService) SetMenuItemImage(restaurantID, itemID int, imageURL string) error {
	return s.repository.SetMenuItemImage(restaurantID, itemID, imageURL)
}
