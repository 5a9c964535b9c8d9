package main

import (
	"database/sql"
	"log"
	"net/http"

	"marketflow-be/internal/basket"
	"marketflow-be/internal/category"
	"marketflow-be/internal/config"
	"marketflow-be/internal/contact"
	"marketflow-be/internal/db"
	"marketflow-be/internal/httpapi"
	"marketflow-be/internal/logger"
	"marketflow-be/internal/order"
	"marketflow-be/internal/partner"
	"marketflow-be/internal/product"
	"marketflow-be/internal/shop"
	"marketflow-be/internal/user"
)

// Seams for testing.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	contactRepo := contact.NewRepository(database)
	contactSvc := contact.NewService(contactRepo)

	shopRepo := shop.NewRepository(database)
	shopSvc := shop.NewService(shopRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	basketRepo := basket.NewRepository(database)
	basketSvc := basket.NewService(basketRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	partnerRepo := partner.NewRepository(database)
	partnerSvc := partner.NewService(partner.NewFetcher(), partnerRepo)

	server := &httpapi.Server{
		UserSvc:     userSvc,
		ContactSvc:  contactSvc,
		ShopSvc:     shopSvc,
		CategorySvc: categorySvc,
		ProductSvc:  productSvc,
		BasketSvc:   basketSvc,
		OrderSvc:    orderSvc,
		PartnerSvc:  partnerSvc,
	}

	return server.Router()
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
