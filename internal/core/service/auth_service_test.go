package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

func registerInput(email, pass string) ports.RegisterInput {
	return ports.RegisterInput{Email: email, Name: "Tester", Password: pass}
}

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := cloneUser(u)
			clone.PasswordHash = ""
			return clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		clone.PasswordHash = ""
		out = append(out, clone)
	}
	return out, nil
}

func newAuthService(repo *stubAuthRepo) *AuthService {
	return NewAuthService(repo, NewJWTIssuer("secret", time.Hour))
}

func register(t *testing.T, svc *AuthService, email, pass string) *domain.User {
	t.Helper()
	result, err := svc.Register(context.Background(), registerInput(email, pass))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return result.User
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	result, err := svc.Register(context.Background(), registerInput("Alice@Example.com", "Sup3r!pass"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if result.AccessToken == "" {
		t.Fatalf("expected access token")
	}
	if result.TokenType != "Bearer" {
		t.Fatalf("unexpected token type: %s", result.TokenType)
	}
	if result.ExpiresIn != int64(time.Hour.Seconds()) {
		t.Fatalf("unexpected expiresIn: %d", result.ExpiresIn)
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("email not lowercased: %s", result.User.Email)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", result.User.Role)
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked into result")
	}

	stored := repo.users["alice@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3r!pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)

	register(t, svc, "bob@example.com", "Sup3r!pass")
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", "Other1!pw")); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register created a row")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	input := registerInput("carol@example.com", "Sup3r!pass")
	input.Role = "SUPERUSER"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)
	register(t, svc, "carol@example.com", "Sup3r!pass")

	result, err := svc.Login(context.Background(), "Carol@Example.com", "Sup3r!pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected token")
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked into result")
	}

	identity, err := NewJWTIssuer("secret", time.Hour).Verify(result.AccessToken)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if identity.UserID != result.User.ID {
		t.Fatalf("token subject %d does not match user %d", identity.UserID, result.User.ID)
	}
}

func TestAuthService_Login_UnifiedFailure(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)
	register(t, svc, "dave@example.com", "Sup3r!pass")

	// Unknown email and wrong password must be indistinguishable.
	if _, err := svc.Login(context.Background(), "nobody@example.com", "Sup3r!pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "dave@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(repo)
	user := register(t, svc, "erin@example.com", "Sup3r!pass")

	profile, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.Email != "erin@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.GetProfile(context.Background(), 9999); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
