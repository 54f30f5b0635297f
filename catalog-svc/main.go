package main

import (
	httpapi "luciafood-express/catalog-svc/internal/api/http"
	"luciafood-express/catalog-svc/internal/service"
	"luciafood-express/catalog-svc/internal/storage"
	"luciafood-express/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	catalog := service.NewCatalogService(repo)

	handler := httpapi.NewHandler(catalog, config.GetEnv("UPLOAD_DIR", "./uploads"))
	httpapi.StartServer(":8081", httpapi.NewRouter(handler))
}
