package service

import (
	"context"
	"strings"

	"github.com/longrunpc/calmato-be/internal/api/metrics"
	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
	"github.com/longrunpc/calmato-be/internal/pkg/password"
)

// AuthService implements registration, login, and profile lookups.
type AuthService struct {
	repo   ports.AuthRepository
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.AuthRepository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Register creates an account and returns a token envelope. The uniqueness
// check runs first; the database unique index is the backstop when two
// registrations race past it.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(created.Role).Inc()
	return s.issueFor(created)
}

// Login verifies credentials and returns a token envelope. An unknown email
// and a wrong password produce the same error so the caller cannot tell
// which check failed.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return s.issueFor(user)
}

// GetProfile returns the user backing an authenticated identity. The row may
// be gone even though the token is still valid; that surfaces as not-found.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// ListUsers returns every account. Restricted to admins at the route level.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) issueFor(user *domain.User) (*ports.AuthResult, error) {
	token, err := s.issuer.Issue(ports.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, err
	}

	safe := *user
	safe.PasswordHash = ""

	return &ports.AuthResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.issuer.TTL().Seconds()),
		User:        &safe,
	}, nil
}
