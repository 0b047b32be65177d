// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultly/catalog"
	"consultly/config"
	"consultly/cron"
	"consultly/handlers"
	"consultly/middleware"
	"consultly/routes"
	booking "consultly/services/booking"
	"consultly/services/tasks"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration and logging first; everything else depends on them.
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	logger.Info("Starting Consultly booking service...")

	// Redis-backed session cache.
	utils.InitSessionCache()
	sessionCache := utils.GetSessionCacheClient()

	// Demo slot inventory, regenerated periodically.
	slotStore := catalog.NewSlotStore(config.AppConfig.SlotSeed, time.Now())
	refreshEvery := time.Duration(config.AppConfig.SlotRefreshHours) * time.Hour
	cron.StartSlotRefresher(slotStore, refreshEvery, logger)

	// Reference data repositories.
	expertRepo := catalog.NewInMemoryExpertRepo()
	serviceRepo := catalog.NewInMemoryServiceRepo()

	// Asynq client for the post-confirmation receipt task.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// Start the background receipt worker.
	go cron.InitReceiptWorker(logger)

	bookingSvc := &booking.DefaultBookingSessionService{
		Experts:        expertRepo,
		Services:       serviceRepo,
		Slots:          slotStore,
		Cache:          sessionCache,
		SessionTTL:     time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		ExpertID:       config.AppConfig.DefaultExpertID,
		DefaultVariant: config.AppConfig.FlowVariant,
		Receipts:       &tasks.AsynqReceiptEnqueuer{Client: asynqClient},
		Logger:         logger,
	}

	catalogHandler := handlers.NewCatalogHandler(expertRepo, serviceRepo, serviceRepo, slotStore, logger)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	hb := handlers.NewHandlerBundle(catalogHandler, bookingHandler)

	utils.StartHealthMonitor([]*redis.Client{sessionCache})

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Block until an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
