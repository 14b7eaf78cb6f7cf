package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/platform/config"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print reports without starting the server",
}

var reportDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard for one period as JSON",
	Long: `Print the dashboard for one period as JSON, followed by a one line summary
on stderr.

With REPORTING_SOURCE=pgsql the figures are read from the replica and no login
is needed. Otherwise the command logs in to the backend with --email and
--password.`,
	Example: `  # February 2025 from the backend
  adsdash report dashboard --type month --value 2025-02 --email admin@shop.vn --password '***'

  # The week containing 12 February, from the replica
  REPORTING_SOURCE=pgsql adsdash report dashboard --type week --value 2025-02-12`,
	RunE: runReportDashboard,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportDashboardCmd)

	reportDashboardCmd.Flags().String("type", "month", "Granularity: date, week, month or year")
	reportDashboardCmd.Flags().String("value", "", "Period in that granularity, e.g. 2025-02 for a month")
	reportDashboardCmd.Flags().String("email", "", "Operator email used to log in to the backend")
	reportDashboardCmd.Flags().String("password", "", "Operator password used to log in to the backend")
	_ = reportDashboardCmd.MarkFlagRequired("value")
}

func runReportDashboard(cmd *cobra.Command, args []string) error {
	granularity, _ := cmd.Flags().GetString("type")
	value, _ := cmd.Flags().GetString("value")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	ctx := cmd.Context()

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.close()

	sess, err := reportSession(ctx, cfg, app, email, password)
	if err != nil {
		return err
	}

	resp, err := app.services.Dashboard.Dashboard(ctx, sess, granularity, value)
	if err != nil {
		return fmt.Errorf("build dashboard: %w", err)
	}
	if resp.Warning != "" {
		logger.Warn("Dashboard built with warnings", slog.String("warning", resp.Warning))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s %s to %s: %d contracts, revenue %s, profit %s, received %s, debt %s\n",
		resp.Granularity, resp.Period.From, resp.Period.To, resp.TotalContracts,
		utils.FormatVND(resp.Revenue), utils.FormatVND(resp.Profit),
		utils.FormatVND(resp.Received), utils.FormatVND(resp.TotalDebt))
	return nil
}

// reportSession logs in to the backend, or builds a local admin session when
// the replica is the reporting source since the replica takes no token.
func reportSession(ctx context.Context, cfg *config.Config, app *application, email, password string) (*domain.Session, error) {
	if app.replica {
		now := time.Now()
		return &domain.Session{
			ID:           "cli-report",
			User:         domain.User{ID: "cli", Name: "adsdash", Role: domain.RoleAdmin, Status: domain.UserActive},
			BackendToken: "replica",
			CreatedAt:    now,
			ExpiresAt:    now.Add(time.Hour),
		}, nil
	}

	if email == "" || password == "" {
		return nil, errors.New("--email and --password are required unless REPORTING_SOURCE=pgsql")
	}
	login, err := app.services.Auth.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	sessionID, err := utils.ParseJWTSubject(login.AccessToken, cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	return app.services.Auth.ResolveSession(ctx, sessionID)
}
