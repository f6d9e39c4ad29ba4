package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/inventory/internal/adapters/config"
	"github.com/rafaelleal24/inventory/internal/adapters/http"
	"github.com/rafaelleal24/inventory/internal/adapters/http/controllers"
	"github.com/rafaelleal24/inventory/internal/adapters/jsonfile"
	"github.com/rafaelleal24/inventory/internal/adapters/mongo"
	"github.com/rafaelleal24/inventory/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/inventory/internal/adapters/redis"
	"github.com/rafaelleal24/inventory/internal/core/logger"
	"github.com/rafaelleal24/inventory/internal/core/port"
	"github.com/rafaelleal24/inventory/internal/core/service"
)

// @title       Inventory API
// @version     1.0
// @description Product inventory management API

// @host     localhost:8080
// @BasePath /

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// snapshot store: flat file by default, mongo when configured
	var store port.SnapshotPort
	healthCheckers := []controllers.HealthChecker{}
	if cfg.Store.Driver == "mongo" {
		mongoClient, err := mongo.NewConnection(cfg.Mongo)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
		}
		defer mongo.Disconnect(mongoClient)
		logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

		store = mongo.NewSnapshotStore(mongoClient.Database(cfg.Mongo.Database))
		healthCheckers = append(healthCheckers, controllers.HealthChecker{
			Name:  "mongodb",
			Check: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		})
	} else {
		store = jsonfile.NewStore()
	}

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize rabbitmq connection
	broker, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
	}
	defer broker.Close()
	logger.Info(ctx, "Connected to RabbitMQ", nil)

	// caches and rate limiter
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[string]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// services
	idempotencyService := service.NewIdempotencyService(idempotencyCache, cfg.Idempotency.TTL, cfg.Idempotency.PollInterval, cfg.Idempotency.PollTimeout)
	inventoryService := service.NewInventoryService(store, broker, idempotencyService)

	// controllers
	inventoryController := controllers.NewInventoryController(inventoryService)
	healthCheckers = append(healthCheckers,
		controllers.HealthChecker{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
		controllers.HealthChecker{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	)
	healthController := controllers.NewHealthController(healthCheckers)

	// router
	router := http.NewRouter(healthController, inventoryController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
