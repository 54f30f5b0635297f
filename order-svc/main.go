package main

import (
	"strconv"
	"time"

	"luciafood-express/config"
	httpapi "luciafood-express/order-svc/internal/api/http"
	"luciafood-express/order-svc/internal/service"
	"luciafood-express/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	defaultFee, err := strconv.ParseFloat(config.GetEnv("DEFAULT_DELIVERY_FEE", ""), 64)
	if err != nil {
		defaultFee = service.DefaultDeliveryFee
	}
	fees := service.NewFeeTableFromJSON(config.GetEnv("DELIVERY_FEE_TABLE", ""), defaultFee)

	repo := storage.NewPostgresRepository(db)
	carts := service.NewCartStore()
	guard := storage.NewRedisGuard(rdb, 30*time.Second)
	publisher := storage.NewKafkaPublisher(writer)
	linker := storage.NewWhatsAppLinker()

	checkout := service.NewCheckoutService(carts, fees, repo, repo, linker, guard, publisher,
		config.GetEnv("WHATSAPP_NUMBER", "50499999999"))

	handler := httpapi.NewHandler(carts, repo, checkout, repo, fees, service.DefaultQRGenerator{})
	httpapi.StartServer(":8082", httpapi.NewRouter(handler))
}
