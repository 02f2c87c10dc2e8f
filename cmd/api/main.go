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

	"github.com/genix/genix-go/internal/config"
	"github.com/genix/genix-go/internal/handler"
	"github.com/genix/genix-go/internal/middleware"
	"github.com/genix/genix-go/internal/repository"
	"github.com/genix/genix-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	estHandler := handler.NewEntropyHandler(service.NewEstimatorService())

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/entropy/check", estHandler.HandleCheck)
	r.Post("/api/v1/entropy/profile", estHandler.HandleProfile)

	// Wordlist storage and auth routes need a database; generation works
	// without one (stored wordlists excluded).
	var wordlistRepo *repository.WordlistRepository
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth and wordlist routes disabled", "error", err)
	} else {
		wordlistRepo = repository.NewWordlistRepository(db)

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		wlService := service.NewWordlistService(wordlistRepo)
		wlHandler := handler.NewWordlistHandler(wlService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/wordlists", wlHandler.HandleList)
			r.Post("/api/v1/wordlists", wlHandler.HandleCreate)
			r.Get("/api/v1/wordlists/{name}", wlHandler.HandleGet)
			r.Delete("/api/v1/wordlists/{name}", wlHandler.HandleDelete)
		})
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(wordlistRepo))
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
