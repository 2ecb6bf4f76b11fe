package service

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// CommentService implements comments with one level of replies.
type CommentService struct {
	comments ports.CommentRepository
	boards   ports.BoardRepository
}

func NewCommentService(comments ports.CommentRepository, boards ports.BoardRepository) *CommentService {
	return &CommentService{comments: comments, boards: boards}
}

// Create attaches a comment to an active post. When parentCommentID is set
// the parent must exist, be active, and belong to the same post.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, content string, parentCommentID int64) (*domain.Comment, error) {
	if err := s.requireActivePost(ctx, postID); err != nil {
		return nil, err
	}

	if parentCommentID > 0 {
		parent, err := s.comments.FindByID(ctx, parentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID || parent.Status != domain.CommentActive {
			return nil, domain.ErrCommentNotFound
		}
	}

	return s.comments.Create(ctx, &domain.Comment{
		PostID:          postID,
		UserID:          userID,
		Content:         content,
		ParentCommentID: parentCommentID,
		Status:          domain.CommentActive,
	})
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if err := s.requireActivePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.FindByPost(ctx, postID)
}

func (s *CommentService) Update(ctx context.Context, id, userID int64, content string) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CommentActive {
		return nil, domain.ErrCommentNotFound
	}
	if c.UserID != userID {
		return nil, domain.ErrForbidden
	}

	c.Content = content
	return s.comments.Update(ctx, c)
}

// Delete removes a comment. With active replies the comment is kept as a
// tombstone so the thread stays readable; otherwise the row is removed.
func (s *CommentService) Delete(ctx context.Context, id, userID int64) error {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status != domain.CommentActive {
		return domain.ErrCommentNotFound
	}
	if c.UserID != userID {
		return domain.ErrForbidden
	}

	replies, err := s.comments.CountActiveReplies(ctx, id)
	if err != nil {
		return err
	}

	if replies > 0 {
		c.Status = domain.CommentDeleted
		c.Content = domain.DeletedCommentBody
		_, err = s.comments.Update(ctx, c)
		return err
	}
	return s.comments.Delete(ctx, id)
}

func (s *CommentService) ListMine(ctx context.Context, userID int64, page, limit int) (*ports.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.comments.FindByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.CommentPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// requireActivePost checks that the post exists and is active on either board.
func (s *CommentService) requireActivePost(ctx context.Context, postID int64) error {
	if _, err := s.boards.FindByID(ctx, domain.BoardFree, postID); err == nil {
		return nil
	}
	_, err := s.boards.FindByID(ctx, domain.BoardRequest, postID)
	return err
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
