package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/adapters/http/controllers"
	"github.com/rafaelleal24/inventory/internal/adapters/http/middleware"
)

type Router struct {
	healthController    *controllers.HealthController
	inventoryController *controllers.InventoryController
	rateLimiter         middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	inventoryController *controllers.InventoryController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		inventoryController: inventoryController,
		rateLimiter:         rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter
	ic := r.inventoryController

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/products", middleware.RateLimit(rl, 30, 1*time.Minute), ic.CreateProduct)
		v1Group.GET("/products", ic.ListProducts)
		v1Group.GET("/products/:id", ic.GetProductByID)
		v1Group.DELETE("/products/:id", ic.DeleteProduct)
		v1Group.POST("/products/:id/sell", middleware.RateLimit(rl, 60, 1*time.Minute), ic.SellProduct)
		v1Group.POST("/products/:id/restock", middleware.RateLimit(rl, 60, 1*time.Minute), ic.RestockProduct)

		v1Group.GET("/inventory/value", ic.TotalValue)
		v1Group.POST("/inventory/sweep", ic.SweepExpired)
		v1Group.POST("/inventory/save", middleware.RateLimit(rl, 10, 1*time.Minute), ic.SaveInventory)
		v1Group.POST("/inventory/load", middleware.RateLimit(rl, 10, 1*time.Minute), ic.LoadInventory)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
