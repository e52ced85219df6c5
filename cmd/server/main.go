package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/domain"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/infrastructure/config"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/infrastructure/repository"
	"github.com/EmiDanGuerrero/Sample-account-bank-service/internal/infrastructure/repository/postgres"
	router "github.com/EmiDanGuerrero/Sample-account-bank-service/internal/interfaces/http"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	accountRepo, cleanup, err := buildRepository(cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up storage", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router.NewRouter(cfg, logger, accountRepo),
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildRepository(cfg *config.Config, logger *zap.Logger) (domain.AccountRepository, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Info("using in-memory storage")
		return repository.NewAccountRepository(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DB.DSN())
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	logger.Info("using postgres storage", zap.String("host", cfg.DB.Host), zap.String("database", cfg.DB.Name))
	return postgres.NewAccountRepository(db), func() { _ = db.Close() }, nil
}
