package service

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// AsmrService implements track CRUD. Tracks are hard-deleted; their files in
// the object store are removed asynchronously.
type AsmrService struct {
	repo    ports.AsmrRepository
	cleaner Cleaner
}

func NewAsmrService(repo ports.AsmrRepository, cleaner Cleaner) *AsmrService {
	if cleaner == nil {
		cleaner = NoopCleaner{}
	}
	return &AsmrService{repo: repo, cleaner: cleaner}
}

func (s *AsmrService) Create(ctx context.Context, input ports.CreateAsmrInput) (*domain.Asmr, error) {
	return s.repo.Create(ctx, &domain.Asmr{
		PlaylistID: input.PlaylistID,
		Name:       input.Name,
		ImageURL:   input.ImageURL,
		YoutubeURL: input.YoutubeURL,
		MusicURL:   input.MusicURL,
	})
}

func (s *AsmrService) List(ctx context.Context, playlistID int64) ([]domain.Asmr, error) {
	if playlistID > 0 {
		return s.repo.FindByPlaylist(ctx, playlistID)
	}
	return s.repo.FindAll(ctx)
}

func (s *AsmrService) Get(ctx context.Context, id int64) (*domain.Asmr, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Replaced image or music files are queued
// for object-store cleanup.
func (s *AsmrService) Update(ctx context.Context, id int64, input ports.UpdateAsmrInput) (*domain.Asmr, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ImageURL != nil && a.ImageURL != "" && *input.ImageURL != a.ImageURL {
		s.cleaner.EnqueueURLs(a.ImageURL)
	}
	if input.MusicURL != nil && a.MusicURL != "" && *input.MusicURL != a.MusicURL {
		s.cleaner.EnqueueURLs(a.MusicURL)
	}

	if input.PlaylistID != nil {
		a.PlaylistID = *input.PlaylistID
	}
	if input.Name != nil {
		a.Name = *input.Name
	}
	if input.ImageURL != nil {
		a.ImageURL = *input.ImageURL
	}
	if input.YoutubeURL != nil {
		a.YoutubeURL = *input.YoutubeURL
	}
	if input.MusicURL != nil {
		a.MusicURL = *input.MusicURL
	}

	return s.repo.Update(ctx, a)
}

// Delete removes the track row and queues its files for cleanup.
func (s *AsmrService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var urls []string
	if a.ImageURL != "" {
		urls = append(urls, a.ImageURL)
	}
	if a.MusicURL != "" {
		urls = append(urls, a.MusicURL)
	}
	if len(urls) > 0 {
		s.cleaner.EnqueueURLs(urls...)
	}

	return s.repo.Delete(ctx, id)
}
