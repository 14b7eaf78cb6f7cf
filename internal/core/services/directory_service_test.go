package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, sess *domain.Session) ([]domain.Customer, error) {
	args := m.Called(ctx, sess)
	return slice[domain.Customer](args, 0), args.Error(1)
}
func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, sess *domain.Session, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, sess, customer)
	return ptr[domain.Customer](args, 0), args.Error(1)
}
func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, sess *domain.Session, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, sess, customer)
	return ptr[domain.Customer](args, 0), args.Error(1)
}
func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, sess *domain.Session, customerID domain.ID) error {
	return m.Called(ctx, sess, customerID).Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func TestDirectory_ListCustomersDegradesToEmpty(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := services.NewDirectoryService(repo, nil, nil)
	ctx := context.Background()

	repo.On("ListCustomers", ctx, managerSession).Return(nil, fmt.Errorf("customers: %w", apperrors.ErrUpstreamUnavailable)).Once()

	resp, err := svc.ListCustomers(ctx, managerSession)
	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.NotEmpty(t, resp.Warning)
	repo.AssertExpectations(t)
}

func TestDirectory_ListCustomersAuthFailurePropagates(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := services.NewDirectoryService(repo, nil, nil)
	ctx := context.Background()

	repo.On("ListCustomers", ctx, managerSession).Return(nil, apperrors.ErrUnauthorized).Once()

	_, err := svc.ListCustomers(ctx, managerSession)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestDirectory_CreateCustomerRejectsRateAboveOne(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := services.NewDirectoryService(repo, nil, nil)

	_, err := svc.CreateCustomer(context.Background(), managerSession, dto.CustomerRequest{Name: "Shop", Rate: domain.MustRate("1.2")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestDirectory_UpdateCustomerPassesID(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := services.NewDirectoryService(repo, nil, nil)
	ctx := context.Background()

	repo.On("UpdateCustomer", ctx, managerSession, mock.MatchedBy(func(c domain.Customer) bool {
		return c.ID == "c-7" && c.Name == "Renamed"
	})).Return(&domain.Customer{ID: "c-7", Name: "Renamed"}, nil).Once()

	updated, err := svc.UpdateCustomer(ctx, managerSession, "c-7", dto.CustomerRequest{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	_, err = svc.UpdateCustomer(ctx, managerSession, " ", dto.CustomerRequest{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestDirectory_DeleteCustomerAdminOnly(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := services.NewDirectoryService(repo, nil, nil)
	ctx := context.Background()

	err := svc.DeleteCustomer(ctx, managerSession, "c-1")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	repo.On("DeleteCustomer", ctx, adminSession, domain.ID("c-1")).Return(nil).Once()
	require.NoError(t, svc.DeleteCustomer(ctx, adminSession, "c-1"))
	repo.AssertExpectations(t)
}
