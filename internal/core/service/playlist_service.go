package service

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// PlaylistService implements playlist CRUD with soft deletes.
type PlaylistService struct {
	repo    ports.PlaylistRepository
	cleaner Cleaner
}

func NewPlaylistService(repo ports.PlaylistRepository, cleaner Cleaner) *PlaylistService {
	if cleaner == nil {
		cleaner = NoopCleaner{}
	}
	return &PlaylistService{repo: repo, cleaner: cleaner}
}

func (s *PlaylistService) Create(ctx context.Context, input ports.CreatePlaylistInput) (*domain.Playlist, error) {
	return s.repo.Create(ctx, &domain.Playlist{
		Name:   input.Name,
		ImgURL: input.ImgURL,
		Status: domain.PlaylistActive,
	})
}

func (s *PlaylistService) List(ctx context.Context) ([]domain.Playlist, error) {
	return s.repo.FindAllActive(ctx)
}

func (s *PlaylistService) Get(ctx context.Context, id int64) (*domain.Playlist, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. A replaced cover image is queued for
// object-store cleanup.
func (s *PlaylistService) Update(ctx context.Context, id int64, input ports.UpdatePlaylistInput) (*domain.Playlist, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ImgURL != nil && p.ImgURL != "" && *input.ImgURL != p.ImgURL {
		s.cleaner.EnqueueURLs(p.ImgURL)
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.ImgURL != nil {
		p.ImgURL = *input.ImgURL
	}
	if input.Status != nil {
		p.Status = domain.PlaylistStatus(*input.Status)
	}

	return s.repo.Update(ctx, p)
}

// Delete soft-deletes the playlist and queues its cover image for cleanup.
func (s *PlaylistService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if p.ImgURL != "" {
		s.cleaner.EnqueueURLs(p.ImgURL)
	}

	return s.repo.SetStatus(ctx, id, domain.PlaylistDeleted)
}
