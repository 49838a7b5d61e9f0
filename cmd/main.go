package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/sisdineng/api-compras/internal/config"
	"github.com/sisdineng/api-compras/internal/middleware"
	"github.com/sisdineng/api-compras/internal/server"
	"github.com/sisdineng/api-compras/internal/utils"
	"github.com/sisdineng/api-compras/internal/utils/db"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuração inválida", "error", err)
		os.Exit(1)
	}
	utils.ConfigurarAmbiente(cfg.App.IsProduction())

	database, err := db.Connect(cfg.Database)
	if err != nil {
		slog.Error("erro ao conectar no banco", "error", err)
		os.Exit(1)
	}

	if err := server.Migrate(database); err != nil {
		slog.Error("erro no AutoMigrate", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(database, cfg)

	corsMiddleware := cors.New(cors.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := corsMiddleware.Handler(
		middleware.Logging(
			middleware.Metrics(router)))

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("servidor rodando", "port", cfg.App.Port, "environment", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("erro no servidor", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("encerrando o servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("erro ao encerrar o servidor", "error", err)
	}
}
