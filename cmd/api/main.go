package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/arcmarket/arc-api/internal/config"
	"github.com/arcmarket/arc-api/internal/handlers"
	"github.com/arcmarket/arc-api/internal/services"
	"github.com/arcmarket/arc-api/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := store.NewDatabase(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	collectionRepo := store.NewCollectionRepository(db)
	nftRepo := store.NewNFTRepository(db)
	activityRepo := store.NewActivityRepository(db)
	personRepo := store.NewPersonRepository(db)

	hub := handlers.NewHub()
	go hub.Run()

	walletService := services.NewWalletService()
	emailService := services.NewEmailService(cfg.Email)
	authService := services.NewAuthService(cfg.Auth, personRepo, walletService)
	collectionService := services.NewCollectionService(collectionRepo, nftRepo, activityRepo, personRepo, nil)
	nftService := services.NewNFTService(collectionRepo, nftRepo, personRepo)
	personService := services.NewPersonService(personRepo, nftRepo, activityRepo, collectionRepo)
	activityService := services.NewActivityService(collectionRepo, nftRepo, activityRepo, personRepo, hub, emailService)

	router := handlers.NewRouter(handlers.Services{
		Auth:       authService,
		Collection: collectionService,
		NFT:        nftService,
		Person:     personService,
		Activity:   activityService,
		Hub:        hub,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
