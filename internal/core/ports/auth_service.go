package ports

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	// Role defaults to USER when empty.
	Role string
}

// AuthResult is the token envelope returned by register and login.
type AuthResult struct {
	AccessToken string
	TokenType   string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64
	User      *domain.User
}

// AuthService defines identity use-cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
