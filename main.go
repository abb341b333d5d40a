package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bugtrail/config"
	"bugtrail/database"
	"bugtrail/logging"
	"bugtrail/middleware"
	"bugtrail/routes"
	"bugtrail/store"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to MongoDB", zap.String("uri", cfg.MongoURI))

	var client *mongo.Client
	for attempt := 1; attempt <= 3; attempt++ {
		client, err = database.Connect(context.Background(), cfg.MongoURI)
		if err == nil {
			break
		}
		logger.Warn("MongoDB connection attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("MongoDB connected")

	st := store.NewMongo(client.Database(cfg.DatabaseName))

	router := routes.SetupRouter(routes.Deps{
		Store:        st,
		Log:          logger,
		AllowOrigins: cfg.AllowOrigins,
		Limiter:      middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.Disconnect(client); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
