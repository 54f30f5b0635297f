package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"luciafood-express/ops-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Ops Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "order_placed" {
			c.ProcessOrder(event)
		}
	}
}

func (c *Consumer) ProcessOrder(event domain.OrderEvent) {
	if event.Type != "order_placed" {
		return
	}
	log.Printf("Processing order: OrderID=%d, RestaurantID=%d, Zone=%s, Total=%.2f",
		event.OrderID, event.RestaurantID, event.Zone, event.Total)

	if err := c.Store.RecordOrder(event); err != nil {
		log.Printf("Error recording order: %v", err)
		return
	}

	log.Printf("Successfully recorded order %d", event.OrderID)
}
