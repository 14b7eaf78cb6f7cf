package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

const screenContracts = "contracts"

// contractService lists contracts with their allocation and refuses to
// forward a contract that would overdraw its budget.
type contractService struct {
	BaseService
	contractRepo   portsrepo.ContractRepositoryFacade
	budgetRepo     portsrepo.BudgetReader
	defaultPerPage int
}

// NewContractService creates the contract service.
func NewContractService(contractRepo portsrepo.ContractRepositoryFacade, budgetRepo portsrepo.BudgetReader, guard *pagination.Guard, options ...ListOption) portssvc.ContractSvcFacade {
	svc := &contractService{
		BaseService:    BaseService{Guard: guard},
		contractRepo:   contractRepo,
		budgetRepo:     budgetRepo,
		defaultPerPage: pagination.DefaultPerPage,
	}
	for _, option := range options {
		option(&svc.defaultPerPage)
	}
	return svc
}

var _ portssvc.ContractSvcFacade = (*contractService)(nil)

// contractRows works out every contract's allocation. A contract with rates
// outside [0,1] or a negative cost is flagged instead of failing the page.
func contractRows(contracts []domain.Contract) []dto.ContractRow {
	rows := make([]dto.ContractRow, len(contracts))
	for i, c := range contracts {
		a, err := allocation.Allocate(c)
		rows[i] = dto.ContractRow{Contract: c, Allocation: a, Invalid: err != nil}
	}
	return rows
}

func (s *contractService) ListContracts(ctx context.Context, sess *domain.Session, params dto.ListParams) (*dto.ContractListResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	q, err := listQuery(params, contractAccessors, s.defaultPerPage)
	if err != nil {
		return nil, err
	}

	ctx, release := s.Track(ctx, sess, screenContracts)
	defer release()

	res, err := fetchPage(ctx, &q, func(ctx context.Context, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Contract], error) {
		return s.contractRepo.ListContracts(ctx, sess, q)
	})
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list contracts")
		if err != nil {
			return nil, err
		}
		return &dto.ContractListResponse{
			PagedResponse: emptyPage[dto.ContractRow](screenContracts, q, warning),
			Totals:        allocation.SumContracts(nil),
		}, nil
	}

	page, err := pageOf(res, contractAccessors, q)
	if err != nil {
		return nil, err
	}
	if err := pagination.Err(ctx, nil); err != nil {
		return nil, err
	}

	rows := pagination.Page[dto.ContractRow]{Items: contractRows(page.Items), PageInfo: page.PageInfo}
	return &dto.ContractListResponse{
		PagedResponse: pagedResponse(screenContracts, q, rows),
		Totals:        allocation.SumContracts(page.Items),
	}, nil
}

// checkAgainstBudget loads the budget and every contract drawing on it and
// runs the budget check for the candidate.
func (s *contractService) checkAgainstBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID, candidate allocation.Candidate) (*domain.Budget, allocation.BudgetCheck, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, sess, budgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load budget for check", slog.String("budget_id", budgetID.String()))
		return nil, allocation.BudgetCheck{}, err
	}
	existing, err := s.contractRepo.ListContractsByBudget(ctx, sess, budgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load budget contracts for check", slog.String("budget_id", budgetID.String()))
		return nil, allocation.BudgetCheck{}, err
	}
	check, err := allocation.Check(*budget, existing, candidate)
	if err != nil {
		return nil, allocation.BudgetCheck{}, err
	}
	return budget, check, nil
}

func (s *contractService) CheckBudget(ctx context.Context, sess *domain.Session, req dto.CheckBudgetRequest) (*allocation.BudgetCheck, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("budget_id", req.BudgetID); err != nil {
		return nil, err
	}
	_, check, err := s.checkAgainstBudget(ctx, sess, domain.ID(req.BudgetID), allocation.Candidate{
		ContractID: domain.ID(req.ContractID),
		TotalCost:  req.TotalCost,
	})
	if err != nil {
		return nil, err
	}
	return &check, nil
}

// prepare fills the contract's rates from its budget, validates it and runs
// the budget check. An exceeded check is returned as *allocation.ExceededError.
func (s *contractService) prepare(ctx context.Context, sess *domain.Session, contract domain.Contract) (domain.Contract, allocation.Allocation, allocation.BudgetCheck, error) {
	budget, check, err := s.checkAgainstBudget(ctx, sess, contract.BudgetID, allocation.Candidate{
		ContractID: contract.ID,
		TotalCost:  contract.TotalCost,
	})
	if err != nil {
		return contract, allocation.Allocation{}, check, err
	}

	contract = allocation.WithBudgetRates(contract, *budget)
	alloc, err := allocation.Allocate(contract)
	if err != nil {
		return contract, alloc, check, err
	}
	if check.Exceeded {
		s.LogInfo(ctx, "Contract refused, budget would be exceeded",
			slog.String("budget_id", check.BudgetID.String()),
			slog.String("remaining", check.Remaining.String()),
			slog.String("candidate", check.Candidate.String()))
		return contract, alloc, check, &allocation.ExceededError{Check: check}
	}
	return contract, alloc, check, nil
}

func (s *contractService) CreateContract(ctx context.Context, sess *domain.Session, req dto.ContractRequest) (*dto.ContractMutationResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	contract, alloc, check, err := s.prepare(ctx, sess, req.ToDomain(""))
	if err != nil {
		return nil, err
	}

	created, err := s.contractRepo.CreateContract(ctx, sess, contract)
	if err != nil {
		s.LogError(ctx, err, "Failed to create contract", slog.String("budget_id", contract.BudgetID.String()))
		return nil, err
	}
	s.LogInfo(ctx, "Contract created",
		slog.String("contract_id", created.ID.String()),
		slog.String("budget_id", created.BudgetID.String()))
	return &dto.ContractMutationResponse{Contract: *created, Allocation: alloc, BudgetCheck: check}, nil
}

func (s *contractService) UpdateContract(ctx context.Context, sess *domain.Session, contractID string, req dto.ContractRequest) (*dto.ContractMutationResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("contract id", contractID); err != nil {
		return nil, err
	}
	contract, alloc, check, err := s.prepare(ctx, sess, req.ToDomain(domain.ID(contractID)))
	if err != nil {
		return nil, err
	}

	updated, err := s.contractRepo.UpdateContract(ctx, sess, contract)
	if err != nil {
		s.LogError(ctx, err, "Failed to update contract", slog.String("contract_id", contractID))
		return nil, err
	}
	return &dto.ContractMutationResponse{Contract: *updated, Allocation: alloc, BudgetCheck: check}, nil
}

func (s *contractService) DeleteContract(ctx context.Context, sess *domain.Session, contractID string) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := requireID("contract id", contractID); err != nil {
		return err
	}
	if err := s.contractRepo.DeleteContract(ctx, sess, domain.ID(contractID)); err != nil {
		s.LogError(ctx, err, "Failed to delete contract", slog.String("contract_id", contractID))
		return err
	}
	s.LogInfo(ctx, "Contract deleted", slog.String("contract_id", contractID))
	return nil
}
