package main

import (
	"context"

	"luciafood-express/config"
	httpapi "luciafood-express/ops-svc/internal/api/http"
	"luciafood-express/ops-svc/internal/service"
	"luciafood-express/ops-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "ops-svc")
	defer reader.Close()

	store := storage.NewStore(db, rdb)

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)
	httpapi.StartServer(":8083", httpapi.NewRouter(handler))
}
