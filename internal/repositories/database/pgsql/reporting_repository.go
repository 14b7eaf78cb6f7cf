package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/ledger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func newReportingRepository(db *pgxpool.Pool) *reportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const contractsBetweenQuery = `
	SELECT
		c.id,
		c.date,
		c.budget_id,
		c.customer_id,
		COALESCE(cu.name, '') AS customer_name,
		COALESCE(b.supplier_id::text, '') AS supplier_id,
		COALESCE(s.name, '') AS supplier_name,
		COALESCE(b.account_type_id::text, '') AS account_type_id,
		COALESCE(at.name, '') AS account_type_name,
		COALESCE(c.product, '') AS product,
		COALESCE(c.product_type, b.product_type, '') AS product_type,
		COALESCE(c.total_cost, 0)::text AS total_cost,
		COALESCE(c.customer_rate, b.customer_rate, 0)::text AS customer_rate,
		COALESCE(c.supplier_rate, b.supplier_rate, 0)::text AS supplier_rate,
		COALESCE(c.customer_actually_paid, 0)::text AS customer_actually_paid,
		COALESCE(c.note, '') AS note
	FROM contracts c
	LEFT JOIN budgets b ON b.id = c.budget_id
	LEFT JOIN customers cu ON cu.id = c.customer_id
	LEFT JOIN suppliers s ON s.id = b.supplier_id
	LEFT JOIN account_types at ON at.id = b.account_type_id
	WHERE c.date BETWEEN $1 AND $2
	ORDER BY c.date, c.id
`

// ContractsBetween retrieves contracts with their budget's supplier and
// account type resolved by join.
func (r *reportingRepository) ContractsBetween(ctx context.Context, _ *domain.Session, within portsrepo.DateRange) ([]domain.Contract, error) {
	return inSnapshot(ctx, r, contractsBetweenQuery, within, func(row pgx.Rows) (domain.Contract, error) {
		var c domain.Contract
		var productType string
		err := row.Scan(
			&c.ID,
			&c.Date,
			&c.BudgetID,
			&c.CustomerID,
			&c.CustomerName,
			&c.SupplierID,
			&c.SupplierName,
			&c.AccountTypeID,
			&c.AccountTypeName,
			&c.Product,
			&productType,
			&c.TotalCost,
			&c.CustomerRate,
			&c.SupplierRate,
			&c.CustomerActuallyPaid,
			&c.Note,
		)
		c.ProductType = domain.ProductType(productType)
		return c, err
	})
}

const billsBetweenQuery = `
	SELECT
		bl.id,
		bl.date,
		bl.customer_id,
		COALESCE(cu.name, '') AS customer_name,
		COALESCE(bl.product, '') AS product,
		COALESCE(bl.total_money, 0)::text AS total_money,
		COALESCE(p.paid, 0)::text AS paid_amount,
		COALESCE(bl.deposit_amount, 0)::text AS deposit_amount,
		COALESCE(bl.note, '') AS note
	FROM bills bl
	LEFT JOIN customers cu ON cu.id = bl.customer_id
	LEFT JOIN (
		SELECT bill_id, SUM(amount) AS paid FROM payments GROUP BY bill_id
	) p ON p.bill_id = bl.id
	WHERE bl.date BETWEEN $1 AND $2
	ORDER BY bl.date, bl.id
`

// BillsBetween retrieves bills with the paid amount summed from payments and
// debt and status settled from it.
func (r *reportingRepository) BillsBetween(ctx context.Context, _ *domain.Session, within portsrepo.DateRange) ([]domain.Bill, error) {
	return inSnapshot(ctx, r, billsBetweenQuery, within, func(row pgx.Rows) (domain.Bill, error) {
		var b domain.Bill
		err := row.Scan(
			&b.ID,
			&b.Date,
			&b.CustomerID,
			&b.CustomerName,
			&b.Product,
			&b.TotalMoney,
			&b.PaidAmount,
			&b.DepositAmount,
			&b.Note,
		)
		return ledger.Settle(b), err
	})
}

const budgetsBetweenQuery = `
	SELECT
		b.id,
		b.supplier_id,
		COALESCE(s.name, '') AS supplier_name,
		b.account_type_id,
		COALESCE(at.name, '') AS account_type_name,
		COALESCE(b.money, 0)::text AS money,
		COALESCE(b.product_type, '') AS product_type,
		COALESCE(b.supplier_rate, 0)::text AS supplier_rate,
		COALESCE(b.customer_rate, 0)::text AS customer_rate,
		COALESCE(b.status, '') AS status,
		COALESCE(b.note, '') AS note,
		b.date
	FROM budgets b
	LEFT JOIN suppliers s ON s.id = b.supplier_id
	LEFT JOIN account_types at ON at.id = b.account_type_id
	WHERE b.date BETWEEN $1 AND $2
	ORDER BY b.date, b.id
`

func (r *reportingRepository) BudgetsBetween(ctx context.Context, _ *domain.Session, within portsrepo.DateRange) ([]domain.Budget, error) {
	return inSnapshot(ctx, r, budgetsBetweenQuery, within, func(row pgx.Rows) (domain.Budget, error) {
		var b domain.Budget
		var productType, status string
		err := row.Scan(
			&b.ID,
			&b.SupplierID,
			&b.SupplierName,
			&b.AccountTypeID,
			&b.AccountTypeName,
			&b.Money,
			&productType,
			&b.SupplierRate,
			&b.CustomerRate,
			&status,
			&b.Note,
			&b.Date,
		)
		b.ProductType = domain.ProductType(productType)
		b.Status = domain.BudgetStatus(status)
		return b, err
	})
}

// inSnapshot runs one range query inside a read-only transaction.
func inSnapshot[T any](ctx context.Context, r *reportingRepository, query string, within portsrepo.DateRange, scan func(pgx.Rows) (T, error)) ([]T, error) {
	if within.From.IsZero() || within.To.IsZero() {
		return nil, fmt.Errorf("%w: reporting range needs both ends", apperrors.ErrValidation)
	}

	tx, err := r.BeginReadOnly(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rows, err := tx.Query(ctx, query, within.From.Time, within.To.Time)
	if err != nil {
		return nil, fmt.Errorf("error querying reporting data: %w", errors.Join(apperrors.ErrUpstreamUnavailable, err))
	}
	items, err := collect(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("error scanning reporting rows: %w", errors.Join(apperrors.ErrMalformedResponse, err))
	}
	return items, nil
}
