package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/adapters/backend"
	"github.com/SscSPs/ads_resale_dashboard/internal/adapters/session"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/platform/config"
	"github.com/SscSPs/ads_resale_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/ads_resale_dashboard/pkg/database"
)

// application is everything a command needs once configuration is loaded.
type application struct {
	services *portssvc.ServiceContainer
	sessions *session.MemoryStore
	// replica is set when the dashboard reads from the PostgreSQL replica.
	replica bool
	close   func()
}

// buildApplication wires the backend client, session store, optional
// reporting replica and the services on top of them.
func buildApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client := backend.NewClient(cfg.BackendBaseURL, backend.WithTimeout(cfg.BackendTimeout))
	sessions := session.NewMemoryStore()

	app := &application{sessions: sessions, close: func() {}}

	var reporting portsrepo.ReportingRepository
	if cfg.ReportingSource == config.ReportingSourcePgsql {
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("connect reporting replica: %w", err)
		}
		logger.Info("Dashboard reads from the PostgreSQL replica")
		reporting = pgsql.NewReportingRepository(pool)
		app.replica = true
		app.close = func() { database.ClosePgxPool(pool) }
	}

	repos := backend.NewRepositoryProvider(client, sessions, reporting)
	app.services = services.NewServiceContainer(cfg, repos)

	logger.Info("Backend client configured",
		slog.String("base_url", client.BaseURL()),
		slog.String("reporting_source", cfg.ReportingSource),
	)
	return app, nil
}
