package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adcamp/internal/adapter/mongodb"
	"adcamp/internal/adapter/rediscache"
	"adcamp/internal/adapter/usecase"
	"adcamp/internal/config"
	"adcamp/internal/core/port"
	"adcamp/internal/db"

	httpadapter "adcamp/internal/adapter/http"
)

// main is the entry point of the campaign API. It loads configuration,
// optionally runs index migrations and seeds the country catalogue,
// connects the document store and the optional auction cache, wires the
// usecases and starts the HTTP server. On receiving a termination signal
// it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewSlog()

	if cfg.Mongo.RunMigrations {
		if err = db.Migrate(cfg.Mongo.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, database, err := db.NewMongoDatabase(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if cfg.Mongo.SeedCountries {
		if err = db.SeedCountries(ctx, database); err != nil {
			logger.Error("country seed error", slog.Any("error", err))
		}
	}

	var cache port.AuctionCache
	if cfg.Redis.Enabled() {
		rdb, err := rediscache.NewClient(rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() { _ = rdb.Close() }()
		cache = rediscache.NewAuctionCache(rdb, cfg.Redis.AuctionTTL)
		logger.Info("auction cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	advertiserRepo := mongodb.NewAdvertiserRepository(database)
	campaignRepo := mongodb.NewCampaignRepository(database)
	publisherRepo := mongodb.NewPublisherRepository(database)
	countryRepo := mongodb.NewCountryRepository(database)

	relationship := usecase.NewRelationshipService(advertiserRepo, campaignRepo)
	attachments := usecase.NewAttachmentService(campaignRepo, publisherRepo)

	advertisers := usecase.NewAdvertiserUseCase(advertiserRepo, relationship, attachments, cache)
	campaigns := usecase.NewCampaignUseCase(campaignRepo, advertiserRepo, countryRepo, relationship, attachments, cache)
	publishers := usecase.NewPublisherUseCase(publisherRepo, countryRepo, attachments, cache)
	countries := usecase.NewCountryUseCase(countryRepo)

	handler := httpadapter.NewHandler(advertisers, campaigns, publishers, countries, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
