package repositories

import (
	"context"

	"github.com/claimstack/expense_claims_app/internal/core/domain"
)

// UserRepository is the gateway surface for users. Reads never fail (they
// degrade to the fallback snapshot); writes return the new id or an
// affected-row verdict and always propagate failures.
type UserRepository interface {
	ListUsers(ctx context.Context, activeOnly bool) ReadResult[[]domain.User]
	FindUserByID(ctx context.Context, userID int) ReadResult[*domain.User]
	CreateUser(ctx context.Context, user domain.NewUser) (int, error)
	UpdateUser(ctx context.Context, userID int, user domain.UserUpdate) (int64, error)
	DeleteUser(ctx context.Context, userID int) (int64, error)
}
