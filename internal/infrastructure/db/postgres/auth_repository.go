package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

const uniqueViolation = "23505"

// AuthRepository persists users.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// Create inserts a user. The unique index on email is the final arbiter when
// two registrations race past the service-level uniqueness check.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, name, password_hash, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at`

	created := *user
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.PasswordHash, user.Role).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &created, nil
}

// FindByEmail returns the user including the password hash; used by login.
func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, password_hash, role, created_at, updated_at
	          FROM users WHERE email = $1`

	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return u, nil
}

// FindByID returns the user without the password hash.
func (r *AuthRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, name, role, created_at, updated_at
	          FROM users WHERE id = $1`

	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	return u, nil
}

// List returns all users, newest first, without password hashes.
func (r *AuthRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, email, name, role, created_at, updated_at
	          FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
