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

	"github.com/SscSPs/ads_resale_dashboard/internal/handlers"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/platform/config"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/ulule/limiter/v3"
)

const (
	sessionSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API the browser dashboard talks to.

Configuration is read from the environment and an optional .env file:
  BACKEND_BASE_URL     - REST backend every entity lives in
  JWT_SECRET           - key the session tokens are signed with
  REPORTING_SOURCE     - backend (default) or pgsql
  PGSQL_URL            - reporting replica, when REPORTING_SOURCE=pgsql
  POSTHOG_API_KEY      - product analytics, off when empty`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.close()

	go app.sessions.RunSweeper(ctx, sessionSweepInterval)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	analytics := utils.NewAnalyticsClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RequestAnalytics(analytics),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	var loginLimiter *limiter.Limiter
	if cfg.LoginRateLimit != "" {
		loginLimiter, err = middleware.NewMemoryLimiter(cfg.LoginRateLimit)
		if err != nil {
			logger.Warn("Invalid LOGIN_RATE_LIMIT, login is not rate limited",
				slog.String("value", cfg.LoginRateLimit), slog.String("error", err.Error()))
		}
	}

	handlers.RegisterRoutes(r, cfg, app.services, loginLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
