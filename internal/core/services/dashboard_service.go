package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/aggregation"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/ledger"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

const screenDashboard = "dashboard"

// dashboardService computes the dashboard from raw records. The reporting
// repository is either the backend or the read replica.
type dashboardService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewDashboardService creates the dashboard service.
func NewDashboardService(reportingRepo portsrepo.ReportingRepository, guard *pagination.Guard) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService:   BaseService{Guard: guard},
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// load reads one record kind for the period. A degradable failure leaves the
// records empty and adds to warnings.
func load[T any](ctx context.Context, s *BaseService, what string, warnings *[]string, read func() ([]T, error)) ([]T, error) {
	records, err := read()
	if err == nil {
		return records, nil
	}
	warning, err := s.Degrade(ctx, err, "Failed to load dashboard records", slog.String("records", what))
	if err != nil {
		return nil, err
	}
	*warnings = append(*warnings, what+": "+warning)
	return nil, nil
}

func (s *dashboardService) Dashboard(ctx context.Context, sess *domain.Session, granularity, value string) (*dto.DashboardResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	g, err := aggregation.ParseGranularity(granularity)
	if err != nil {
		return nil, err
	}
	period, err := aggregation.ParsePeriod(g, value)
	if err != nil {
		return nil, err
	}

	ctx, release := s.Track(ctx, sess, screenDashboard)
	defer release()

	var warnings []string
	contracts, err := load(ctx, &s.BaseService, "contracts", &warnings, func() ([]domain.Contract, error) {
		return s.reportingRepo.ContractsBetween(ctx, sess, period)
	})
	if err != nil {
		return nil, err
	}
	bills, err := load(ctx, &s.BaseService, "bills", &warnings, func() ([]domain.Bill, error) {
		return s.reportingRepo.BillsBetween(ctx, sess, period)
	})
	if err != nil {
		return nil, err
	}
	budgets, err := load(ctx, &s.BaseService, "budgets", &warnings, func() ([]domain.Budget, error) {
		return s.reportingRepo.BudgetsBetween(ctx, sess, period)
	})
	if err != nil {
		return nil, err
	}
	if err := pagination.Err(ctx, nil); err != nil {
		return nil, err
	}

	board := Summarize(period, g, contracts, bills, budgets)
	s.LogDebug(ctx, "Dashboard computed",
		slog.String("granularity", string(g)),
		slog.String("from", period.From.String()),
		slog.String("to", period.To.String()),
		slog.Int("contracts", board.TotalContracts))
	return &dto.DashboardResponse{Dashboard: board, Warning: strings.Join(warnings, "; ")}, nil
}

// Summarize builds the dashboard for period out of the given records. Records
// dated outside the period are ignored.
func Summarize(period domain.Period, g aggregation.Granularity, contracts []domain.Contract, bills []domain.Bill, budgets []domain.Budget) domain.Dashboard {
	contractSummary := aggregation.Aggregate(contracts, period, aggregation.ContractMeasure, aggregation.ContractGroupers...)
	billSummary := aggregation.Aggregate(bills, period, aggregation.BillMeasure, aggregation.BillGroupers...)
	budgetSummary := aggregation.Aggregate(budgets, period, aggregation.BudgetMeasure, aggregation.BudgetGroupers...)

	inPeriod := aggregation.Filter(contracts, period, aggregation.ContractMeasure.Date)
	totals := allocation.SumContracts(inPeriod)
	billTotals := ledger.SumBills(aggregation.Filter(bills, period, aggregation.BillMeasure.Date))

	accountTypes := nonNilGroups(contractSummary.Group(aggregation.GroupAccountType))
	return domain.Dashboard{
		Period:         period,
		Granularity:    string(g),
		TotalContracts: contractSummary.Count,
		TotalCost:      contractSummary.TotalMoney,
		Revenue:        totals.CustomerCost,
		Profit:         contractSummary.TotalProfit,
		Received:       billTotals.TotalPaid,
		TotalBills:     billSummary.Count,
		TotalDebt:      billTotals.TotalDebt,
		TotalBudgets:   budgetSummary.Count,
		BudgetMoney:    budgetSummary.TotalMoney,
		TopAccountType: aggregation.Top(accountTypes),
		AccountTypes:   accountTypes,
		Products:       nonNilGroups(contractSummary.Group(aggregation.GroupProduct)),
		Customers:      nonNilGroups(contractSummary.Group(aggregation.GroupCustomer)),
		Suppliers:      nonNilGroups(contractSummary.Group(aggregation.GroupSupplier)),
		Trend:          nonNilGroups(aggregation.Series(inPeriod, period, aggregation.SeriesGranularity(g), aggregation.ContractMeasure)),
	}
}

func nonNilGroups(groups []domain.GroupSummary) []domain.GroupSummary {
	if groups == nil {
		return []domain.GroupSummary{}
	}
	return groups
}
