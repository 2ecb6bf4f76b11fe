package ports

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// CommentRepository persists comments. FindByPost and FindByUser return
// active rows only.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	Update(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
	CountActiveReplies(ctx context.Context, parentID int64) (int64, error)
	FindByUser(ctx context.Context, userID int64, page, limit int) ([]domain.Comment, int64, error)
}

// CommentPage is a paginated list of a user's comments.
type CommentPage struct {
	Items      []domain.Comment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CommentService defines comment use-cases.
type CommentService interface {
	Create(ctx context.Context, postID, userID int64, content string, parentCommentID int64) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	Update(ctx context.Context, id, userID int64, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id, userID int64) error
	ListMine(ctx context.Context, userID int64, page, limit int) (*CommentPage, error)
}
