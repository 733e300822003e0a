package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
	portsrepo "github.com/claimstack/expense_claims_app/internal/core/ports/repositories"
	"github.com/claimstack/expense_claims_app/internal/fallback"
	"github.com/claimstack/expense_claims_app/internal/models"
)

const (
	procGetCategories   = "SELECT * FROM get_expense_categories($1)"
	procGetCategoryByID = "SELECT * FROM get_expense_category_by_id($1)"
	procCreateCategory  = "SELECT create_expense_category($1)"
	procUpdateCategory  = "SELECT update_expense_category($1, $2, $3)"
	procDeleteCategory  = "SELECT delete_expense_category($1)"
)

type CategoryRepository struct {
	g *Gateway
}

func NewCategoryRepository(g *Gateway) *CategoryRepository {
	return &CategoryRepository{g: g}
}

var _ portsrepo.CategoryRepository = (*CategoryRepository)(nil)

func scanCategory(rows pgx.Rows) (domain.ExpenseCategory, error) {
	var m models.ExpenseCategory
	if err := rows.Scan(&m.CategoryID, &m.CategoryName, &m.IsActive); err != nil {
		return domain.ExpenseCategory{}, err
	}
	return domain.ExpenseCategory{
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		IsActive:     m.IsActive,
	}, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context, activeOnly bool) portsrepo.ReadResult[[]domain.ExpenseCategory] {
	return readList(ctx, r.g, "GetExpenseCategories", procGetCategories, []any{activeOnly}, scanCategory, (*fallback.Snapshot).Categories)
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, categoryID int) portsrepo.ReadResult[*domain.ExpenseCategory] {
	return readOne(ctx, r.g, "GetExpenseCategoryById", procGetCategoryByID, []any{categoryID}, scanCategory,
		func(s *fallback.Snapshot) *domain.ExpenseCategory { return s.CategoryByID(categoryID) })
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category domain.NewCategory) (int, error) {
	id, err := r.g.callScalar(ctx, "CreateExpenseCategory", procCreateCategory, category.CategoryName)
	return int(id), err
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, categoryID int, category domain.CategoryUpdate) (int64, error) {
	return r.g.callScalar(ctx, "UpdateExpenseCategory", procUpdateCategory,
		categoryID, category.CategoryName, category.IsActive)
}

// DeleteCategory deactivates the category; the row itself stays so historic
// claims keep a valid reference.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID int) (int64, error) {
	return r.g.callScalar(ctx, "DeleteExpenseCategory", procDeleteCategory, categoryID)
}
