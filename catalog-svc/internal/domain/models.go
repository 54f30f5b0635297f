package domain

import "time"

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Town        string    `json:"town"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem carries two prices: the restaurant's list price and an optional
// platform override (preferred price) that replaces it everywhere when set.
type MenuItem struct {
	ID             int       `json:"id"`
	RestaurantID   int       `json:"restaurant_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	ListPrice      float64   `json:"list_price"`
	PreferredPrice *float64  `json:"preferred_price,omitempty"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}
