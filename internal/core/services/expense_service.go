package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/dto"
	"github.com/claimstack/expense_claims_app/internal/utils/money"
	"github.com/claimstack/expense_claims_app/internal/utils/pagination"
)

// ExpenseService validates claim input at the boundary, normalizes amounts
// and pagination, and maps the gateway's row-count verdicts onto the
// workflow contract. A zero verdict means the claim was absent or not in
// the status the transition requires; the two causes are indistinguishable
// by design.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepository
}

func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

func (s *ExpenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) portsrepo.ReadResult[[]domain.Expense] {
	page, size := pagination.Clamp(params.Page, params.PageSize)
	return s.expenseRepo.ListExpenses(ctx, domain.ExpenseFilter{
		UserID:   params.UserID,
		StatusID: params.StatusID,
		Page:     page,
		PageSize: size,
	})
}

func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID int) portsrepo.ReadResult[*domain.Expense] {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// CreateExpense validates and normalizes the claim, then creates it in
// Draft. The new claim carries no submission or review fields.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (int, error) {
	minor, err := resolveAmount(req.AmountMinor, req.Amount)
	if err != nil {
		return 0, err
	}
	if req.CategoryID <= 0 {
		return 0, fmt.Errorf("%w: categoryId must reference an existing category", apperrors.ErrValidation)
	}
	id, err := s.expenseRepo.CreateExpense(ctx, domain.NewExpense{
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
		AmountMinor: minor,
		Currency:    money.NormalizeCurrency(req.Currency),
		ExpenseDate: req.ExpenseDate,
		Description: req.Description,
		ReceiptFile: req.ReceiptFile,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create expense: %w", err)
	}
	return id, nil
}

// UpdateExpense replaces the details of a Draft claim. The status itself is
// never changed by an update.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID int, req dto.UpdateExpenseRequest) error {
	minor, err := resolveAmount(req.AmountMinor, req.Amount)
	if err != nil {
		return err
	}
	rows, err := s.expenseRepo.UpdateExpense(ctx, expenseID, domain.ExpenseUpdate{
		CategoryID:  req.CategoryID,
		AmountMinor: minor,
		Currency:    money.NormalizeCurrency(req.Currency),
		ExpenseDate: req.ExpenseDate,
		Description: req.Description,
		ReceiptFile: req.ReceiptFile,
	})
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return verdict(rows, expenseID, domain.TransitionUpdate)
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID int) error {
	rows, err := s.expenseRepo.DeleteExpense(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return verdict(rows, expenseID, domain.TransitionDelete)
}

func (s *ExpenseService) SubmitExpense(ctx context.Context, expenseID int) error {
	rows, err := s.expenseRepo.SubmitExpense(ctx, expenseID)
	if err != nil {
		return fmt.Errorf("failed to submit expense: %w", err)
	}
	return verdict(rows, expenseID, domain.TransitionSubmit)
}

func (s *ExpenseService) ApproveExpense(ctx context.Context, expenseID int, req dto.ReviewRequest) error {
	if req.ReviewedBy <= 0 {
		return fmt.Errorf("%w: reviewedBy must reference an existing user", apperrors.ErrValidation)
	}
	rows, err := s.expenseRepo.ApproveExpense(ctx, expenseID, req.ReviewedBy)
	if err != nil {
		return fmt.Errorf("failed to approve expense: %w", err)
	}
	return verdict(rows, expenseID, domain.TransitionApprove)
}

func (s *ExpenseService) RejectExpense(ctx context.Context, expenseID int, req dto.ReviewRequest) error {
	if req.ReviewedBy <= 0 {
		return fmt.Errorf("%w: reviewedBy must reference an existing user", apperrors.ErrValidation)
	}
	rows, err := s.expenseRepo.RejectExpense(ctx, expenseID, req.ReviewedBy)
	if err != nil {
		return fmt.Errorf("failed to reject expense: %w", err)
	}
	return verdict(rows, expenseID, domain.TransitionReject)
}

func (s *ExpenseService) ListStatuses(ctx context.Context) portsrepo.ReadResult[[]domain.ExpenseStatus] {
	return s.expenseRepo.ListStatuses(ctx)
}

func (s *ExpenseService) Summarize(ctx context.Context) portsrepo.ReadResult[[]domain.ExpenseSummary] {
	return s.expenseRepo.Summarize(ctx)
}

// resolveAmount picks the authoritative minor-unit amount: the integer form
// when given, otherwise the decimal form converted by rounding half away
// from zero. The result must be positive.
func resolveAmount(minor int64, amount *decimal.Decimal) (int64, error) {
	if minor == 0 && amount != nil {
		minor = money.ToMinor(*amount)
	}
	if minor <= 0 {
		return 0, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return minor, nil
}

func verdict(rows int64, expenseID int, t domain.Transition) error {
	if rows == 0 {
		return fmt.Errorf("expense %d not found or not in %s status: %w",
			expenseID, domain.StatusName(t.RequiredStatus()), apperrors.ErrNotFound)
	}
	return nil
}
