package repositories

import (
	"context"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
)

// ExpenseRepository is the gateway surface for claims. The transition
// operations return an affected-row verdict: 1 when the atomic
// check-and-apply inside the store succeeded, 0 when the claim was absent
// or not in the required status.
type ExpenseRepository interface {
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ReadResult[[]domain.Expense]
	FindExpenseByID(ctx context.Context, expenseID int) ReadResult[*domain.Expense]
	CreateExpense(ctx context.Context, expense domain.NewExpense) (int, error)
	UpdateExpense(ctx context.Context, expenseID int, expense domain.ExpenseUpdate) (int64, error)
	DeleteExpense(ctx context.Context, expenseID int) (int64, error)
	SubmitExpense(ctx context.Context, expenseID int) (int64, error)
	ApproveExpense(ctx context.Context, expenseID int, reviewedBy int) (int64, error)
	RejectExpense(ctx context.Context, expenseID int, reviewedBy int) (int64, error)
	ListStatuses(ctx context.Context) ReadResult[[]domain.ExpenseStatus]
	Summarize(ctx context.Context) ReadResult[[]domain.ExpenseSummary]
}
