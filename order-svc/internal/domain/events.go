package domain

import "time"

// OrderEvent is published to Kafka after a fully dispatched checkout.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Zone         string    `json:"zone"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"item_count"`
	Timestamp    time.Time `json:"timestamp"`
}
