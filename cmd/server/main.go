package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"extracurricular/config"
	_ "extracurricular/docs"
	"extracurricular/internal/adapters/email"
	deliveryhttp "extracurricular/internal/delivery/http"
	"extracurricular/internal/delivery/http/controllers"
	"extracurricular/internal/domain"
	"extracurricular/internal/repository/memory"
	"extracurricular/internal/services"
)

// @title Extracurricular Activities API
// @version 1.0
// @description Sign up for and unregister from extracurricular activities.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// buildHandler wires the registry, services and HTTP stack.
func buildHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	repo, err := memory.NewActivityRepository(memory.DefaultActivities())
	if err != nil {
		return nil, fmt.Errorf("seed activities: %w", err)
	}

	var emails domain.EmailService
	if cfg.NotifyOnSignup {
		mailer, err := email.NewMailer(logger, email.MailerConfig{
			Provider:    cfg.Email.Provider,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			SES: email.SESConfig{
				Region:             cfg.Email.AWSRegion,
				AccessKeyID:        cfg.Email.AWSAccessKeyID,
				SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
				InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("create mailer: %w", err)
		}
		emails = services.NewEmailService(logger, mailer, email.NewTemplateRenderer())
	}

	registry := services.NewActivityService(logger, repo, emails)
	activityController := controllers.NewActivityController(logger, registry)
	router := deliveryhttp.NewRouter(activityController)
	return deliveryhttp.NewHandler(logger, cfg.AllowedOrigins, router), nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	handler, err := buildHandler(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
