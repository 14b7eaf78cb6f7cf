package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

const screenSupplierBudgets = "supplier-budgets"

type budgetService struct {
	BaseService
	budgetRepo     portsrepo.BudgetRepositoryFacade
	defaultPerPage int
}

// ListOption configures list page sizes of a service
type ListOption func(*int)

// WithDefaultPerPage sets the page size used when a request names none.
func WithDefaultPerPage(n int) ListOption {
	return func(perPage *int) {
		if n > 0 && n <= pagination.MaxPerPage {
			*perPage = n
		}
	}
}

// NewBudgetService creates the budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, guard *pagination.Guard, options ...ListOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		BaseService:    BaseService{Guard: guard},
		budgetRepo:     budgetRepo,
		defaultPerPage: pagination.DefaultPerPage,
	}
	for _, option := range options {
		option(&svc.defaultPerPage)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func validateBudget(b domain.Budget) error {
	if b.Money.IsNegative() {
		return fmt.Errorf("%w: money must not be negative", apperrors.ErrValidation)
	}
	if !b.CustomerRate.InRange() || !b.SupplierRate.InRange() {
		return fmt.Errorf("%w: rates must be within [0,1]", apperrors.ErrValidation)
	}
	if !b.ProductType.IsValid() {
		return fmt.Errorf("%w: unknown product type %q", apperrors.ErrValidation, b.ProductType)
	}
	return nil
}

func (s *budgetService) GetBudget(ctx context.Context, sess *domain.Session, budgetID string) (*domain.Budget, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("budget id", budgetID); err != nil {
		return nil, err
	}
	budget, err := s.budgetRepo.FindBudgetByID(ctx, sess, domain.ID(budgetID))
	if err != nil {
		s.LogError(ctx, err, "Failed to find budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Budget], error) {
	return listAll(ctx, &s.BaseService, sess, "budgets", s.budgetRepo.ListBudgets)
}

// ListBudgetsBySupplier serves the supplier budget screen: status and product
// type filters, sort and page. The backend pages this endpoint itself; when it
// answers with a bare list the same view is computed here.
func (s *budgetService) ListBudgetsBySupplier(ctx context.Context, sess *domain.Session, supplierID string, params dto.ListParams) (*dto.PagedResponse[domain.Budget], error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("supplier id", supplierID); err != nil {
		return nil, err
	}
	q, err := listQuery(params, budgetAccessors, s.defaultPerPage)
	if err != nil {
		return nil, err
	}
	screen := screenSupplierBudgets + ":" + supplierID

	ctx, release := s.Track(ctx, sess, screen)
	defer release()

	res, err := fetchPage(ctx, &q, func(ctx context.Context, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Budget], error) {
		return s.budgetRepo.ListBudgetsBySupplier(ctx, sess, domain.ID(supplierID), q)
	})
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list supplier budgets", slog.String("supplier_id", supplierID))
		if err != nil {
			return nil, err
		}
		resp := emptyPage[domain.Budget](screen, q, warning)
		return &resp, nil
	}
	// the supplier is fixed by the path, not by a filter
	local := q
	local.Filters.SupplierID = ""
	page, err := pageOf(res, budgetAccessors, local)
	if err != nil {
		return nil, err
	}
	if err := pagination.Err(ctx, nil); err != nil {
		return nil, err
	}
	resp := pagedResponse(screen, q, page)
	return &resp, nil
}

func (s *budgetService) ListBudgetUsage(ctx context.Context, sess *domain.Session) (*dto.ListResponse[dto.BudgetUsageRow], error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	usage, err := s.budgetRepo.ListBudgetUsage(ctx, sess)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list budget usage")
		if err != nil {
			return nil, err
		}
		resp := dto.NewListResponse[dto.BudgetUsageRow](nil)
		resp.Warning = warning
		return resp, nil
	}
	return dto.NewListResponse(dto.ToBudgetUsageRows(usage)), nil
}

func (s *budgetService) CreateBudget(ctx context.Context, sess *domain.Session, req dto.BudgetRequest) (*domain.Budget, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	budget := req.ToDomain("")
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	created, err := s.budgetRepo.CreateBudget(ctx, sess, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to create budget", slog.String("supplier_id", req.SupplierID))
		return nil, err
	}
	s.LogInfo(ctx, "Budget created", slog.String("budget_id", created.ID.String()))
	return created, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, sess *domain.Session, budgetID string, req dto.BudgetRequest) (*domain.Budget, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("budget id", budgetID); err != nil {
		return nil, err
	}
	budget := req.ToDomain(domain.ID(budgetID))
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	updated, err := s.budgetRepo.UpdateBudget(ctx, sess, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	return updated, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, sess *domain.Session, budgetID string) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := requireID("budget id", budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, sess, domain.ID(budgetID)); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return err
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
