package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/api/metrics"
	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// ViewMarker abstracts the per-user view dedup store (Redis). A view is
// counted at most once per user and post within the marker's TTL.
type ViewMarker interface {
	AlreadyViewed(ctx context.Context, postID, userID int64) (bool, error)
	MarkViewed(ctx context.Context, postID, userID int64) error
}

// FreeBoardService implements the free community board.
type FreeBoardService struct {
	repo    ports.BoardRepository
	views   ViewMarker
	cleaner Cleaner
	log     zerolog.Logger
}

func NewFreeBoardService(repo ports.BoardRepository, views ViewMarker, cleaner Cleaner, log zerolog.Logger) *FreeBoardService {
	if cleaner == nil {
		cleaner = NoopCleaner{}
	}
	return &FreeBoardService{repo: repo, views: views, cleaner: cleaner, log: log}
}

func (s *FreeBoardService) Create(ctx context.Context, userID int64, input ports.CreateFreePostInput) (*domain.Post, error) {
	post, err := s.repo.Create(ctx, &domain.Post{
		BoardType:  domain.BoardFree,
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		ImageURLs:  input.ImageURLs,
		AsmrID:     input.AsmrID,
		PlaylistID: input.PlaylistID,
		UserID:     userID,
		Status:     domain.PostActive,
	})
	if err != nil {
		return nil, err
	}
	metrics.PostsCreatedTotal.WithLabelValues(string(domain.BoardFree)).Inc()
	return post, nil
}

func (s *FreeBoardService) List(ctx context.Context, q ports.PostQuery) (*ports.PostPage, error) {
	return s.repo.Find(ctx, domain.BoardFree, q)
}

// Get returns a post and bumps its view count unless the viewer is the
// author or already viewed it recently. Dedup-store failures only log;
// the read itself must not fail because Redis is down.
func (s *FreeBoardService) Get(ctx context.Context, id, viewerID int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, domain.BoardFree, id)
	if err != nil {
		return nil, err
	}

	countView(ctx, s.repo, s.views, s.log, post, viewerID)
	return post, nil
}

// Update applies a partial update after the ownership check. Images dropped
// from the list are queued for object-store cleanup.
func (s *FreeBoardService) Update(ctx context.Context, id, userID int64, input ports.UpdateFreePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, domain.BoardFree, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.ImageURLs != nil && len(post.ImageURLs) > 0 {
		if gone := replacedURLs(post.ImageURLs, *input.ImageURLs); len(gone) > 0 {
			s.cleaner.EnqueueURLs(gone...)
		}
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.ImageURLs != nil {
		post.ImageURLs = *input.ImageURLs
	}
	if input.AsmrID != nil {
		post.AsmrID = *input.AsmrID
	}
	if input.PlaylistID != nil {
		post.PlaylistID = *input.PlaylistID
	}

	return s.repo.Update(ctx, post)
}

// Delete soft-deletes the post after the ownership check and queues its
// images for cleanup.
func (s *FreeBoardService) Delete(ctx context.Context, id, userID int64) error {
	post, err := s.repo.FindByID(ctx, domain.BoardFree, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrForbidden
	}

	if len(post.ImageURLs) > 0 {
		s.cleaner.EnqueueURLs(post.ImageURLs...)
	}

	return s.repo.SetStatus(ctx, id, domain.PostDeleted)
}

func (s *FreeBoardService) ToggleLike(ctx context.Context, id, userID int64) (*ports.LikeResult, error) {
	if _, err := s.repo.FindByID(ctx, domain.BoardFree, id); err != nil {
		return nil, err
	}
	liked, count, err := s.repo.ToggleLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return &ports.LikeResult{Liked: liked, LikeCount: count}, nil
}

func (s *FreeBoardService) ListMine(ctx context.Context, userID int64, q ports.PostQuery) (*ports.PostPage, error) {
	q.UserID = userID
	return s.repo.Find(ctx, domain.BoardFree, q)
}
