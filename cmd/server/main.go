package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourquote/internal/catalog"
	"tourquote/internal/config"
	"tourquote/internal/currency"
	"tourquote/internal/infrastructure/logger"
	"tourquote/internal/infrastructure/mysql"
	"tourquote/internal/pricing"
	"tourquote/internal/server"
	"tourquote/internal/session"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rateCache := currency.NewRateCache(cfg.Rates.SourceURL, cfg.Rates.FetchTimeout, zapLogger)
	if err := rateCache.Refresh(ctx); err != nil {
		zapLogger.Warn("initial rate refresh failed, serving fallback rates", zap.Error(err))
	}
	go rateCache.Start(ctx, cfg.Rates.RefreshInterval)

	catalogModule, err := catalog.NewModule(db, cfg.Catalog.ServicesFile, zapLogger)
	if err != nil {
		zapLogger.Fatal("building catalog module", zap.Error(err))
	}

	calculateCtrl := pricing.NewModule(catalogModule.Service, rateCache, zapLogger)
	ratesCtrl := currency.NewController(rateCache, zapLogger)
	sessionStore := session.NewMemoryStore()
	sessionCtrl := session.NewController(sessionStore, zapLogger)

	router := server.NewRouter(calculateCtrl, catalogModule.Controller, ratesCtrl, sessionCtrl, sessionStore, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
