package ports

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
// FindByEmail includes the password hash; FindByID and List never do.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
