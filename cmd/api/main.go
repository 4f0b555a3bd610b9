package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/focus-functions/internal/application/email"
	"github.com/focus-functions/internal/application/sweep"
	"github.com/focus-functions/internal/config"
	"github.com/focus-functions/internal/infrastructure/smtp"
	"github.com/focus-functions/internal/infrastructure/store"
	"github.com/focus-functions/internal/scheduler"
	transporthttp "github.com/focus-functions/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mail transport is built once and shared by both email handlers.
	transport := smtp.NewTransport(cfg)
	if _, ok := transport.Mailer(); !ok {
		log.Println("WARN: GMAIL_USER/GMAIL_APP_PASSWORD not set; email callables will fail with failed-precondition")
	}

	otpStore, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	sweeper := sweep.NewService(otpStore, nil)
	deps := &transporthttp.Deps{
		Email:   email.NewService(transport),
		Sweeper: sweeper,
	}

	if cfg.SweepEnabled {
		job := func(ctx context.Context) error {
			_, err := sweeper.Run(ctx)
			return err
		}
		go scheduler.New("cleanupExpiredOtps", cfg.SweepInterval, job).Start(ctx)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(cfg, deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, store=%s)", cfg.AppPort, cfg.AppEnv, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
