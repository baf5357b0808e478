package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/config"
	"github.com/JLSed/ShoeFreak-Seller/internal/api"
	"github.com/JLSed/ShoeFreak-Seller/internal/auth"
	"github.com/JLSed/ShoeFreak-Seller/internal/broker"
	"github.com/JLSed/ShoeFreak-Seller/internal/realtime"
	"github.com/JLSed/ShoeFreak-Seller/internal/redisclient"
	"github.com/JLSed/ShoeFreak-Seller/internal/service"
	"github.com/JLSed/ShoeFreak-Seller/internal/storage"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/JLSed/ShoeFreak-Seller/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting seller service")

	tp, err := util.InitTracer("shoefreak-seller", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Redis connected")

	storageClient, err := storage.NewClient(storage.Config{
		BaseURL: cfg.Storage.BaseURL,
		APIKey:  cfg.Storage.APIKey,
		Bucket:  cfg.Storage.Bucket,
		Timeout: cfg.Storage.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)
	hub := realtime.NewHub()
	gate := auth.NewGate(redisClient, db)

	jwtSecret := []byte(cfg.Auth.JWTSecret)
	authService := service.NewAuthService(db, redisClient, jwtSecret, cfg.Auth.SessionTTL)
	listingService := service.NewListingService(db, storageClient)
	orderService := service.NewOrderService(db, redisClient, eventPublisher)
	messageService := service.NewMessageService(db, db, eventPublisher)
	feedService := service.NewFeedService(db, storageClient)
	analyticsService := service.NewAnalyticsService(db)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents, cfg.Kafka.ConsumerGroup)
	realtimeWorker := worker.NewRealtimeWorker(consumer, hub)
	go func() {
		if err := realtimeWorker.Start(workerCtx); err != nil {
			log.Printf("Realtime worker error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(
		authService,
		listingService,
		orderService,
		messageService,
		feedService,
		analyticsService,
		gate,
		hub,
		jwtSecret,
	)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	realtimeWorker.Stop()

	log.Println("Server exited")
}
