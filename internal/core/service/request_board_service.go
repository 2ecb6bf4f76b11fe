package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/api/metrics"
	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// RequestBoardService implements the track-request board. Requests move
// through PENDING → IN_PROGRESS → COMPLETED/REJECTED via UpdateStatus,
// which only admins can reach.
type RequestBoardService struct {
	repo    ports.BoardRepository
	views   ViewMarker
	cleaner Cleaner
	log     zerolog.Logger
}

func NewRequestBoardService(repo ports.BoardRepository, views ViewMarker, cleaner Cleaner, log zerolog.Logger) *RequestBoardService {
	if cleaner == nil {
		cleaner = NoopCleaner{}
	}
	return &RequestBoardService{repo: repo, views: views, cleaner: cleaner, log: log}
}

func (s *RequestBoardService) Create(ctx context.Context, userID int64, input ports.CreateRequestPostInput) (*domain.Post, error) {
	post, err := s.repo.Create(ctx, &domain.Post{
		BoardType:     domain.BoardRequest,
		Title:         input.Title,
		Content:       input.Content,
		RequestType:   input.RequestType,
		RequestStatus: domain.RequestPending,
		YoutubeURL:    input.YoutubeURL,
		Description:   input.Description,
		ImageURLs:     input.ImageURLs,
		UserID:        userID,
		Status:        domain.PostActive,
	})
	if err != nil {
		return nil, err
	}
	metrics.PostsCreatedTotal.WithLabelValues(string(domain.BoardRequest)).Inc()
	return post, nil
}

func (s *RequestBoardService) List(ctx context.Context, q ports.PostQuery) (*ports.PostPage, error) {
	return s.repo.Find(ctx, domain.BoardRequest, q)
}

func (s *RequestBoardService) Get(ctx context.Context, id, viewerID int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, domain.BoardRequest, id)
	if err != nil {
		return nil, err
	}

	countView(ctx, s.repo, s.views, s.log, post, viewerID)
	return post, nil
}

func (s *RequestBoardService) Update(ctx context.Context, id, userID int64, input ports.UpdateRequestPostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, domain.BoardRequest, id)
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
	if input.RequestType != nil {
		post.RequestType = *input.RequestType
	}
	if input.YoutubeURL != nil {
		post.YoutubeURL = *input.YoutubeURL
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.ImageURLs != nil {
		post.ImageURLs = *input.ImageURLs
	}

	return s.repo.Update(ctx, post)
}

// UpdateStatus moves a request through its workflow.
func (s *RequestBoardService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Post, error) {
	if !domain.ValidRequestStatus(status) {
		return nil, domain.ErrInvalidRequestStatus
	}
	post, err := s.repo.FindByID(ctx, domain.BoardRequest, id)
	if err != nil {
		return nil, err
	}
	post.RequestStatus = status
	return s.repo.Update(ctx, post)
}

func (s *RequestBoardService) Delete(ctx context.Context, id, userID int64) error {
	post, err := s.repo.FindByID(ctx, domain.BoardRequest, id)
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

func (s *RequestBoardService) ToggleLike(ctx context.Context, id, userID int64) (*ports.LikeResult, error) {
	if _, err := s.repo.FindByID(ctx, domain.BoardRequest, id); err != nil {
		return nil, err
	}
	liked, count, err := s.repo.ToggleLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return &ports.LikeResult{Liked: liked, LikeCount: count}, nil
}

func (s *RequestBoardService) ListMine(ctx context.Context, userID int64, q ports.PostQuery) (*ports.PostPage, error) {
	q.UserID = userID
	return s.repo.Find(ctx, domain.BoardRequest, q)
}
