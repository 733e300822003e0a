package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/fallback"
	"github.com/claimstack/expense_claims_app/internal/models"
	"github.com/claimstack/expense_claims_app/internal/utils/money"
)

const (
	procGetExpenses    = "SELECT * FROM get_expenses($1, $2, $3, $4)"
	procGetExpenseByID = "SELECT * FROM get_expense_by_id($1)"
	procCreateExpense  = "SELECT create_expense($1, $2, $3, $4, $5, $6, $7)"
	procUpdateExpense  = "SELECT update_expense($1, $2, $3, $4, $5, $6, $7)"
	procDeleteExpense  = "SELECT delete_expense($1)"
	procSubmitExpense  = "SELECT submit_expense($1)"
	procApproveExpense = "SELECT approve_expense($1, $2)"
	procRejectExpense  = "SELECT reject_expense($1, $2)"
	procGetStatuses    = "SELECT * FROM get_expense_statuses()"
	procGetSummary     = "SELECT * FROM get_expense_summary()"
)

type ExpenseRepository struct {
	g *Gateway
}

func NewExpenseRepository(g *Gateway) *ExpenseRepository {
	return &ExpenseRepository{g: g}
}

var _ portsrepo.ExpenseRepository = (*ExpenseRepository)(nil)

func scanExpense(rows pgx.Rows) (domain.Expense, error) {
	var m models.Expense
	err := rows.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.UserName,
		&m.CategoryID,
		&m.CategoryName,
		&m.StatusID,
		&m.StatusName,
		&m.AmountMinor,
		&m.Currency,
		&m.ExpenseDate,
		&m.Description,
		&m.ReceiptFile,
		&m.SubmittedAt,
		&m.ReviewedBy,
		&m.ReviewerName,
		&m.ReviewedAt,
		&m.CreatedAt,
	)
	if err != nil {
		return domain.Expense{}, err
	}
	return toDomainExpense(m), nil
}

// toDomainExpense derives the display amount from the authoritative
// minor-unit count; the store never supplies it.
func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		UserID:        m.UserID,
		UserName:      m.UserName,
		CategoryID:    m.CategoryID,
		CategoryName:  m.CategoryName,
		StatusID:      m.StatusID,
		StatusName:    m.StatusName,
		AmountMinor:   m.AmountMinor,
		AmountDecimal: money.ToDecimal(m.AmountMinor),
		Currency:      m.Currency,
		ExpenseDate:   m.ExpenseDate,
		Description:   m.Description,
		ReceiptFile:   m.ReceiptFile,
		SubmittedAt:   m.SubmittedAt,
		ReviewedBy:    m.ReviewedBy,
		ReviewerName:  m.ReviewerName,
		ReviewedAt:    m.ReviewedAt,
		CreatedAt:     m.CreatedAt,
	}
}

func scanStatus(rows pgx.Rows) (domain.ExpenseStatus, error) {
	var m models.ExpenseStatus
	if err := rows.Scan(&m.StatusID, &m.StatusName); err != nil {
		return domain.ExpenseStatus{}, err
	}
	return domain.ExpenseStatus{StatusID: m.StatusID, StatusName: m.StatusName}, nil
}

func scanSummary(rows pgx.Rows) (domain.ExpenseSummary, error) {
	var m models.ExpenseSummary
	if err := rows.Scan(&m.StatusName, &m.TotalCount, &m.TotalAmountMinor); err != nil {
		return domain.ExpenseSummary{}, err
	}
	return domain.ExpenseSummary{
		StatusName:       m.StatusName,
		TotalCount:       m.TotalCount,
		TotalAmountMinor: m.TotalAmountMinor,
		TotalAmount:      money.ToDecimal(m.TotalAmountMinor),
	}, nil
}

func (r *ExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) portsrepo.ReadResult[[]domain.Expense] {
	args := []any{filter.UserID, filter.StatusID, filter.Page, filter.PageSize}
	return readList(ctx, r.g, "GetExpenses", procGetExpenses, args, scanExpense, (*fallback.Snapshot).Expenses)
}

func (r *ExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int) portsrepo.ReadResult[*domain.Expense] {
	return readOne(ctx, r.g, "GetExpenseById", procGetExpenseByID, []any{expenseID}, scanExpense,
		func(s *fallback.Snapshot) *domain.Expense { return s.ExpenseByID(expenseID) })
}

func (r *ExpenseRepository) CreateExpense(ctx context.Context, expense domain.NewExpense) (int, error) {
	id, err := r.g.callScalar(ctx, "CreateExpense", procCreateExpense,
		expense.UserID,
		expense.CategoryID,
		expense.AmountMinor,
		expense.Currency,
		expense.ExpenseDate,
		expense.Description,
		expense.ReceiptFile,
	)
	return int(id), err
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, expenseID int, expense domain.ExpenseUpdate) (int64, error) {
	return r.g.callScalar(ctx, "UpdateExpense", procUpdateExpense,
		expenseID,
		expense.CategoryID,
		expense.AmountMinor,
		expense.Currency,
		expense.ExpenseDate,
		expense.Description,
		expense.ReceiptFile,
	)
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID int) (int64, error) {
	return r.g.callScalar(ctx, "DeleteExpense", procDeleteExpense, expenseID)
}

// SubmitExpense, ApproveExpense and RejectExpense each run as a single
// conditional update inside the store: the status check and the transition
// are one indivisible step, so concurrent transitions on the same claim
// yield exactly one row-count of 1.
func (r *ExpenseRepository) SubmitExpense(ctx context.Context, expenseID int) (int64, error) {
	return r.g.callScalar(ctx, "SubmitExpense", procSubmitExpense, expenseID)
}

func (r *ExpenseRepository) ApproveExpense(ctx context.Context, expenseID int, reviewedBy int) (int64, error) {
	return r.g.callScalar(ctx, "ApproveExpense", procApproveExpense, expenseID, reviewedBy)
}

func (r *ExpenseRepository) RejectExpense(ctx context.Context, expenseID int, reviewedBy int) (int64, error) {
	return r.g.callScalar(ctx, "RejectExpense", procRejectExpense, expenseID, reviewedBy)
}

func (r *ExpenseRepository) ListStatuses(ctx context.Context) portsrepo.ReadResult[[]domain.ExpenseStatus] {
	return readList(ctx, r.g, "GetExpenseStatuses", procGetStatuses, nil, scanStatus, (*fallback.Snapshot).Statuses)
}

func (r *ExpenseRepository) Summarize(ctx context.Context) portsrepo.ReadResult[[]domain.ExpenseSummary] {
	return readList(ctx, r.g, "GetExpenseSummary", procGetSummary, nil, scanSummary, (*fallback.Snapshot).Summary)
}
