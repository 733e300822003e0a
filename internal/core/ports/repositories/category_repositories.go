package repositories

import (
	"context"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
)

// CategoryRepository is the gateway surface for expense categories.
// Deleting a category deactivates it; historic claims keep their reference.
type CategoryRepository interface {
	ListCategories(ctx context.Context, activeOnly bool) ReadResult[[]domain.ExpenseCategory]
	FindCategoryByID(ctx context.Context, categoryID int) ReadResult[*domain.ExpenseCategory]
	CreateCategory(ctx context.Context, category domain.NewCategory) (int, error)
	UpdateCategory(ctx context.Context, categoryID int, category domain.CategoryUpdate) (int64, error)
	DeleteCategory(ctx context.Context, categoryID int) (int64, error)
}
