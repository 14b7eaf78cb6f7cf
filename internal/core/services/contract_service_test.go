package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ContractServiceTestSuite struct {
	suite.Suite
	contractRepo *MockContractRepository
	budgetRepo   *MockBudgetRepository
	service      portssvc.ContractSvcFacade
}

func (suite *ContractServiceTestSuite) SetupTest() {
	suite.contractRepo = new(MockContractRepository)
	suite.budgetRepo = new(MockBudgetRepository)
	suite.service = services.NewContractService(suite.contractRepo, suite.budgetRepo, pagination.NewGuard())
}

func budgetB1() *domain.Budget {
	return &domain.Budget{
		ID:            "b-1",
		SupplierID:    "s-1",
		AccountTypeID: "at-1",
		Money:         domain.MoneyFromInt(1000000),
		CustomerRate:  domain.MustRate("0.2"),
		SupplierRate:  domain.MustRate("0.15"),
		ProductType:   domain.ProductLegal,
	}
}

func existingContract(id string, cost int64) domain.Contract {
	return domain.Contract{ID: domain.ID(id), BudgetID: "b-1", TotalCost: domain.MoneyFromInt(cost)}
}

func contractRequest(cost int64) dto.ContractRequest {
	return dto.ContractRequest{
		Date:       "2025-02-10",
		BudgetID:   "b-1",
		CustomerID: "c-1",
		Product:    "shoes",
		TotalCost:  domain.MoneyFromInt(cost),
	}
}

// --- CreateContract Tests ---
func (suite *ContractServiceTestSuite) TestCreateContract_FillsRatesFromBudget() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, managerSession, domain.ID("b-1")).Return(budgetB1(), nil).Once()
	suite.contractRepo.On("ListContractsByBudget", ctx, managerSession, domain.ID("b-1")).
		Return([]domain.Contract{existingContract("c-1", 400000), existingContract("c-2", 300000)}, nil).Once()
	suite.contractRepo.On("CreateContract", ctx, managerSession, mock.MatchedBy(func(c domain.Contract) bool {
		return c.CustomerRate.Equal(domain.MustRate("0.2")) &&
			c.SupplierRate.Equal(domain.MustRate("0.15")) &&
			c.SupplierID == "s-1" && c.ProductType == domain.ProductLegal
	})).Return(&domain.Contract{ID: "c-3", BudgetID: "b-1"}, nil).Once()

	resp, err := suite.service.CreateContract(ctx, managerSession, contractRequest(200000))

	suite.Require().NoError(err)
	suite.Equal(domain.ID("c-3"), resp.Contract.ID)
	suite.Equal("40000", resp.Allocation.CustomerCost.String())
	suite.Equal("30000", resp.Allocation.SupplierCost.String())
	suite.Equal("10000", resp.Allocation.Profit.String())
	suite.False(resp.BudgetCheck.Exceeded)
	suite.Equal("700000", resp.BudgetCheck.Used.String())
	suite.contractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_ExceededIsNotForwarded() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, managerSession, domain.ID("b-1")).Return(budgetB1(), nil).Once()
	suite.contractRepo.On("ListContractsByBudget", ctx, managerSession, domain.ID("b-1")).Return([]domain.Contract{
		existingContract("c-1", 400000),
		existingContract("c-2", 300000),
		existingContract("c-3", 200000),
	}, nil).Once()

	resp, err := suite.service.CreateContract(ctx, managerSession, contractRequest(150000))

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrBudgetExceeded)
	var exceeded *allocation.ExceededError
	suite.Require().True(errors.As(err, &exceeded))
	suite.Equal("100000", exceeded.Check.Remaining.String())
	suite.Equal("1050000", exceeded.Check.Projected.String())
	suite.contractRepo.AssertNotCalled(suite.T(), "CreateContract", mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateContract Tests ---
func (suite *ContractServiceTestSuite) TestUpdateContract_ExcludesOwnPriorCost() {
	ctx := context.Background()
	budget := budgetB1()
	budget.Money = domain.MoneyFromInt(1000)
	suite.budgetRepo.On("FindBudgetByID", ctx, managerSession, domain.ID("b-1")).Return(budget, nil).Once()
	suite.contractRepo.On("ListContractsByBudget", ctx, managerSession, domain.ID("b-1")).
		Return([]domain.Contract{existingContract("c-1", 600), existingContract("c-2", 300)}, nil).Once()
	suite.contractRepo.On("UpdateContract", ctx, managerSession, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ID == "c-1" && c.TotalCost.Equal(domain.MoneyFromInt(700))
	})).Return(&domain.Contract{ID: "c-1", BudgetID: "b-1", TotalCost: domain.MoneyFromInt(700)}, nil).Once()

	resp, err := suite.service.UpdateContract(ctx, managerSession, "c-1", contractRequest(700))

	suite.Require().NoError(err)
	suite.Equal("1000", resp.BudgetCheck.Projected.String())
	suite.False(resp.BudgetCheck.Exceeded)
	suite.contractRepo.AssertExpectations(suite.T())
}

func (suite *ContractServiceTestSuite) TestCreateContract_BudgetNotFound() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, managerSession, domain.ID("b-1")).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateContract(ctx, managerSession, contractRequest(1))

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- CheckBudget Tests ---
func (suite *ContractServiceTestSuite) TestCheckBudget() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetByID", ctx, managerSession, domain.ID("b-1")).Return(budgetB1(), nil).Once()
	suite.contractRepo.On("ListContractsByBudget", ctx, managerSession, domain.ID("b-1")).
		Return([]domain.Contract{existingContract("c-1", 999000)}, nil).Once()

	check, err := suite.service.CheckBudget(ctx, managerSession, dto.CheckBudgetRequest{BudgetID: "b-1", TotalCost: domain.MoneyFromInt(2000)})

	suite.Require().NoError(err)
	suite.True(check.Exceeded)
	suite.Equal("1000", check.Remaining.String())
}

// --- ListContracts Tests ---
func (suite *ContractServiceTestSuite) TestListContracts_BareListPagedLocally() {
	valid := domain.Contract{ID: "c-1", Date: domain.DateOf(2025, 2, 1), TotalCost: domain.MoneyFromInt(200000),
		CustomerRate: domain.MustRate("0.2"), SupplierRate: domain.MustRate("0.15")}
	invalid := domain.Contract{ID: "c-2", Date: domain.DateOf(2025, 2, 2), TotalCost: domain.MoneyFromInt(100),
		CustomerRate: domain.MustRate("1.5")}
	suite.contractRepo.On("ListContracts", mock.Anything, managerSession, mock.AnythingOfType("repositories.ListQuery")).
		Return(portsrepo.ListResult[domain.Contract]{Items: []domain.Contract{invalid, valid}}, nil).Once()

	resp, err := suite.service.ListContracts(context.Background(), managerSession, dto.ListParams{SortBy: "date", SortOrder: "asc"})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Data, 2)
	suite.Equal(domain.ID("c-1"), resp.Data[0].ID)
	suite.Equal("10000", resp.Data[0].Profit.String())
	suite.True(resp.Data[1].Invalid)
	suite.Equal(2, resp.Pagination.Total)
	suite.Equal(1, resp.Totals.Invalid)
	suite.Equal("200000", resp.Totals.TotalCost.String())
	suite.NotEmpty(resp.StateToken)
}

func (suite *ContractServiceTestSuite) TestListContracts_UnknownSortField() {
	_, err := suite.service.ListContracts(context.Background(), managerSession, dto.ListParams{SortBy: "password"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.contractRepo.AssertNotCalled(suite.T(), "ListContracts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ContractServiceTestSuite) TestListContracts_DegradesToEmptyPage() {
	suite.contractRepo.On("ListContracts", mock.Anything, managerSession, mock.Anything).
		Return(portsrepo.ListResult[domain.Contract]{}, fmt.Errorf("%w: timeout", apperrors.ErrUpstreamUnavailable)).Once()

	resp, err := suite.service.ListContracts(context.Background(), managerSession, dto.ListParams{})

	suite.Require().NoError(err)
	suite.NotNil(resp.Data)
	suite.Empty(resp.Data)
	suite.Equal(0, resp.Pagination.Total)
	suite.Contains(resp.Warning, "timeout")
}

func (suite *ContractServiceTestSuite) TestListContracts_AuthErrorPropagates() {
	suite.contractRepo.On("ListContracts", mock.Anything, managerSession, mock.Anything).
		Return(portsrepo.ListResult[domain.Contract]{}, apperrors.ErrUnauthorized).Once()

	resp, err := suite.service.ListContracts(context.Background(), managerSession, dto.ListParams{})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *ContractServiceTestSuite) TestListContracts_PagePastEndServesLastPage() {
	pageAt := func(n int) any {
		return mock.MatchedBy(func(q portsrepo.ListQuery) bool { return q.Page.Page == n })
	}
	suite.contractRepo.On("ListContracts", mock.Anything, managerSession, pageAt(99)).
		Return(portsrepo.ListResult[domain.Contract]{
			Items: []domain.Contract{},
			Page:  &pagination.PageInfo{CurrentPage: 99, PerPage: 10, Total: 23, LastPage: 3},
		}, nil).Once()
	suite.contractRepo.On("ListContracts", mock.Anything, managerSession, pageAt(3)).
		Return(portsrepo.ListResult[domain.Contract]{
			Items: []domain.Contract{existingContract("c-21", 100), existingContract("c-22", 100), existingContract("c-23", 100)},
			Page:  &pagination.PageInfo{CurrentPage: 3, PerPage: 10, From: 21, To: 23, Total: 23, LastPage: 3, HasPrev: true},
		}, nil).Once()

	resp, err := suite.service.ListContracts(context.Background(), managerSession, dto.ListParams{Page: 99, PerPage: 10})

	suite.Require().NoError(err)
	suite.Len(resp.Data, 3)
	suite.Equal(3, resp.Pagination.CurrentPage)
	suite.Equal(21, resp.Pagination.From)
	state, err := pagination.ParseState(resp.StateToken)
	suite.Require().NoError(err)
	suite.Equal(3, state.Page.Page)
	suite.contractRepo.AssertExpectations(suite.T())
}

// --- DeleteContract Tests ---
func (suite *ContractServiceTestSuite) TestDeleteContract_AdminOnly() {
	ctx := context.Background()
	err := suite.service.DeleteContract(ctx, managerSession, "c-1")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.contractRepo.On("DeleteContract", ctx, adminSession, domain.ID("c-1")).Return(nil).Once()
	suite.Require().NoError(suite.service.DeleteContract(ctx, adminSession, "c-1"))
	suite.contractRepo.AssertExpectations(suite.T())
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}
