package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

const commentColumns = `c.id, c.post_id, c.user_id, c.content,
	COALESCE(c.parent_comment_id, 0), c.status, c.created_at, c.updated_at,
	u.id, u.email, u.name, u.role`

// CommentRepository persists comments.
type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query := `INSERT INTO comments (post_id, user_id, content, parent_comment_id, status)
	          VALUES ($1, $2, $3, NULLIF($4, 0), $5)
	          RETURNING id, created_at, updated_at`

	created := *c
	err := r.db.QueryRowContext(ctx, query,
		c.PostID, c.UserID, c.Content, c.ParentCommentID, c.Status).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return &created, nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + `
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.post_id = $1 AND c.status = $2
	          ORDER BY c.created_at`

	rows, err := r.db.QueryContext(ctx, query, postID, domain.CommentActive)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + `
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.id = $1`

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	query := `UPDATE comments SET content = $1, status = $2, updated_at = now()
	          WHERE id = $3
	          RETURNING updated_at`

	updated := *c
	err := r.db.QueryRowContext(ctx, query, c.Content, c.Status, c.ID).Scan(&updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return &updated, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) CountActiveReplies(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE parent_comment_id = $1 AND status = $2`,
		parentID, domain.CommentActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count replies: %w", err)
	}
	return count, nil
}

// FindByUser returns a page of a user's active comments, newest first, along
// with the total count.
func (r *CommentRepository) FindByUser(ctx context.Context, userID int64, page, limit int) ([]domain.Comment, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE user_id = $1 AND status = $2`,
		userID, domain.CommentActive).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count user comments: %w", err)
	}

	query := `SELECT ` + commentColumns + `
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.user_id = $1 AND c.status = $2
	          ORDER BY c.created_at DESC
	          LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, userID, domain.CommentActive, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list user comments: %w", err)
	}
	defer rows.Close()

	comments, err := collectComments(rows)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func collectComments(rows *sql.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}
