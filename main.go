package main

import (
	"context"
	"time"

	catalog "listing-service/internal/catalogService"
	"listing-service/internal/config"
	"listing-service/internal/database"
	model "listing-service/internal/models"
	product "listing-service/internal/productService"
	"listing-service/internal/repository"
	"listing-service/internal/server"
	"listing-service/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}

	utils.SetLevel(cfg.Log.Level)
	gin.SetMode(cfg.Server.GinMode)

	store, err := openStore(cfg.Database)
	if err != nil {
		utils.Fatal("Failed to open store", map[string]any{"driver": cfg.Database.Driver, "error": err.Error()})
	}

	if cfg.SeedDemo {
		if err := prepopulate(context.Background(), store); err != nil {
			utils.Fatal("Failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	catalogSvc := catalog.NewCatalogService(store)
	productSvc := product.NewProductService(store)

	router := server.SetupRouter(catalogSvc, productSvc, store)

	utils.Info("Starting listing server", map[string]any{
		"addr":   cfg.Server.Addr(),
		"driver": cfg.Database.Driver,
	})
	if err := router.Run(cfg.Server.Addr()); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// openStore returns the in-memory store or a migrated relational one
func openStore(cfg config.DatabaseConfig) (repository.Store, error) {
	if cfg.Driver == config.DriverMemory {
		return repository.NewMemoryRepo(), nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}
	return repository.NewGormRepo(db), nil
}

// prepopulate adds sample users, products and bids unless they already exist
func prepopulate(ctx context.Context, store repository.Store) error {
	if _, err := store.FindUserByID(ctx, 1); err == nil {
		utils.Info("Demo data already present", nil)
		return nil
	}

	users := []model.User{
		{ID: 1, Username: "admin", IsAdmin: true},
		{ID: 2, Username: "alice"},
		{ID: 3, Username: "bob"},
	}
	for _, u := range users {
		if _, err := store.AddUser(ctx, u); err != nil {
			return err
		}
	}

	end := time.Now().UTC().Add(7 * 24 * time.Hour).Truncate(time.Second)
	products := []model.Product{
		{Name: "Vintage lamp", Description: "Brass desk lamp, works fine", PictureURL: "https://pictures.example.com/lamp.png", OriginalPrice: 40, Category: "Home", EndDate: end, SellerID: 2},
		{Name: "Road bike", Description: "Aluminium frame, 54cm", PictureURL: "https://pictures.example.com/bike.png", OriginalPrice: 250, Category: "Sports", EndDate: end, SellerID: 3},
		{Name: "Board game bundle", Description: "Five games, complete", PictureURL: "https://pictures.example.com/games.png", OriginalPrice: 30, Category: "Toys", EndDate: end, SellerID: 2},
	}

	created := make([]model.Product, 0, len(products))
	for _, p := range products {
		stored, err := store.Insert(ctx, p)
		if err != nil {
			return err
		}
		created = append(created, stored)
	}

	now := time.Now().UTC().Truncate(time.Second)
	bids := []model.Bid{
		{ProductID: created[0].ID, BidderID: 3, Price: 45, Date: now.Add(-2 * time.Hour)},
		{ProductID: created[0].ID, BidderID: 1, Price: 50, Date: now.Add(-time.Hour)},
		{ProductID: created[1].ID, BidderID: 2, Price: 260, Date: now.Add(-30 * time.Minute)},
	}
	for _, b := range bids {
		if _, err := store.AddBid(ctx, b); err != nil {
			return err
		}
	}

	utils.Info("Demo data seeded", map[string]any{
		"users":    len(users),
		"products": len(created),
		"bids":     len(bids),
	})
	return nil
}
