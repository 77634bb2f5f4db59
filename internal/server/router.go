package server

import (
	"net/http"

	"listing-service/internal/repository"
	handler "listing-service/services/product/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(catalog handler.CatalogServiceInterface, products handler.ProductServiceInterface, users repository.UserStore) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	m := DefaultMetrics()

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlate log lines
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(m.Middleware)
	router.Use(AuthContextMiddleware(users))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	productHandler := handler.NewProductHandler(catalog, products, m)

	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", productHandler.ListProductsHandler)
		productRoutes.GET("/:id", productHandler.GetProductHandler)
		productRoutes.POST("", productHandler.CreateProductHandler)
		productRoutes.PUT("/:id", productHandler.UpdateProductHandler)
		productRoutes.DELETE("/:id", productHandler.DeleteProductHandler)
	}

	return router
}
