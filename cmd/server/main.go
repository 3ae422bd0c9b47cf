package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"parley/config"
	chatRepository "parley/internal/chat/repository"
	chatUsecase "parley/internal/chat/usecase"
	"parley/internal/database"
	"parley/internal/handlers"
	"parley/internal/notifier"
	userRepository "parley/internal/user/repository"
	"parley/pkg/crypto"
	"parley/pkg/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.PingContext(context.Background()); err != nil {
		appLogger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	if err := database.CreateSchema(context.Background(), db); err != nil {
		appLogger.Error("failed to create schema", "err", err)
		os.Exit(1)
	}

	box, err := buildBox(cfg)
	if err != nil {
		appLogger.Error("failed to build crypto keyring", "err", err)
		os.Exit(1)
	}

	hub := notifier.NewHub(appLogger, cfg.Notifier.BufferSize)
	defer hub.Close()

	chatRepo := chatRepository.NewChatRepository(db, *appLogger)
	userRepo := userRepository.NewUserRepository(db, *appLogger)
	chatUC := chatUsecase.NewChatUsecase(chatRepo, userRepo, hub, box, *appLogger)

	mux := http.NewServeMux()
	handlers.NewHandler(chatUC, hub, appLogger).Register(mux)

	// No global read/write timeouts: /ws connections are long-lived and
	// manage their own deadlines.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", "err", err)
	}
}

// buildBox converts the config keyring (string version tags, since YAML
// map keys arrive as strings) into the crypto box's integer-versioned form.
func buildBox(cfg *config.Config) (*crypto.Box, error) {
	keys := make(map[int]string, len(cfg.Crypto.Keys))
	for tag, key := range cfg.Crypto.Keys {
		version, err := strconv.Atoi(tag)
		if err != nil {
			return nil, err
		}
		keys[version] = key
	}
	return crypto.NewBox(keys, cfg.Crypto.CurrentVersion)
}
