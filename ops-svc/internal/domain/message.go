package domain

import "time"

// OrderEvent mirrors the payload order-svc publishes on the orders topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Zone         string    `json:"zone"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"item_count"`
	Timestamp    time.Time `json:"timestamp"`
}

type RestaurantActivity struct {
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
}

type ZoneActivity struct {
	Zone   string  `json:"zone"`
	Orders float64 `json:"orders"`
}

type RestaurantSummary struct {
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	OrderCount   int     `json:"order_count"`
	ItemCount    int     `json:"item_count"`
	Revenue      float64 `json:"revenue"`
}
