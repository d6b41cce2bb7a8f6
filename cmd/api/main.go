package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moksh009/topedge-site-sub001/internal/api/router"
	"github.com/moksh009/topedge-site-sub001/internal/booking"
	appconfig "github.com/moksh009/topedge-site-sub001/internal/config"
	"github.com/moksh009/topedge-site-sub001/internal/contact"
	"github.com/moksh009/topedge-site-sub001/internal/gcal"
	"github.com/moksh009/topedge-site-sub001/internal/notify"
	"github.com/moksh009/topedge-site-sub001/internal/observability/metrics"
	"github.com/moksh009/topedge-site-sub001/internal/zoom"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting topedge site API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_provider", cfg.EmailProvider,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)
	emailMetrics := metrics.NewEmailMetrics(registry)

	ctx := context.Background()

	zoomClient, err := zoom.New(zoom.Config{
		ClientID:     cfg.ZoomClientID,
		ClientSecret: cfg.ZoomClientSecret,
		AccountID:    cfg.ZoomAccountID,
		BaseURL:      cfg.ZoomBaseURL,
		TokenURL:     cfg.ZoomTokenURL,
		Timeout:      cfg.ProviderTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create zoom client", "error", err)
		os.Exit(1)
	}

	calClient, err := gcal.New(ctx, gcal.Config{
		ClientEmail: cfg.GoogleClientEmail,
		PrivateKey:  cfg.GooglePrivateKey,
		CalendarID:  cfg.GoogleCalendarID,
		Timezone:    cfg.DefaultTimezone,
	}, logger)
	if err != nil {
		logger.Error("failed to create calendar client", "error", err)
		os.Exit(1)
	}

	sender := newEmailSender(ctx, cfg, logger)
	notifySvc := notify.NewService(sender, cfg.AdminEmail, emailMetrics, logger)

	bookingSvc := booking.NewService(zoomClient, zoomClient, calClient,
		notifySvc, bookingMetrics, cfg.DefaultTimezone, logger)

	routerCfg := &router.Config{
		Logger:             logger,
		BookingHandler:     booking.NewHandler(bookingSvc, logger),
		ContactHandler:     contact.NewHandler(notifySvc, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newEmailSender picks the transactional mail transport from configuration.
func newEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		return notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		}, logger)
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		}, logger)
	default:
		logger.Warn("email sending disabled, using stub sender")
		return notify.NewStubEmailSender(logger)
	}
}
