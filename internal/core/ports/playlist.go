package ports

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// PlaylistRepository persists playlists. FindAllActive loads the tracks of
// each playlist; SetStatus implements the soft delete.
type PlaylistRepository interface {
	Create(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error)
	FindAllActive(ctx context.Context) ([]domain.Playlist, error)
	FindByID(ctx context.Context, id int64) (*domain.Playlist, error)
	Update(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error)
	SetStatus(ctx context.Context, id int64, status domain.PlaylistStatus) error
}

// CreatePlaylistInput carries the fields for a new playlist.
type CreatePlaylistInput struct {
	Name   string
	ImgURL string
}

// UpdatePlaylistInput carries a partial update; nil fields are left unchanged.
type UpdatePlaylistInput struct {
	Name   *string
	ImgURL *string
	Status *string
}

// PlaylistService defines playlist use-cases.
type PlaylistService interface {
	Create(ctx context.Context, input CreatePlaylistInput) (*domain.Playlist, error)
	List(ctx context.Context) ([]domain.Playlist, error)
	Get(ctx context.Context, id int64) (*domain.Playlist, error)
	Update(ctx context.Context, id int64, input UpdatePlaylistInput) (*domain.Playlist, error)
	Delete(ctx context.Context, id int64) error
}
