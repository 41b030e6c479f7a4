package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The audit log is optional; without a database generation still works.
	var auditRepo *repository.AuditRepository
	if cfg.AuditEnabled() {
		db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, audit log disabled", "error", err)
		} else {
			defer db.Close()
			repo := repository.NewAuditRepository(db)
			if err := repo.EnsureSchema(ctx); err != nil {
				slog.Warn("creating audit schema failed, audit log disabled", "error", err)
			} else {
				auditRepo = repo
			}
		}
	}

	var recorder service.AuditRecorder
	if auditRepo != nil {
		recorder = auditRepo
	}
	limits := service.Limits{MaxLength: cfg.MaxLength, MaxCount: cfg.MaxCount}
	genService := service.NewGeneratorService(limits, recorder)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/analyze", genHandler.HandleAnalyze)
	})

	if auditRepo != nil {
		auditHandler := handler.NewAuditHandler(service.NewAuditService(auditRepo))
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, crypto.ScopeAuditRead))
			r.Get("/api/v1/audit", auditHandler.HandleListEvents)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "audit", auditRepo != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
