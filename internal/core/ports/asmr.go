package ports

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// AsmrRepository persists tracks. Delete is a hard delete; the associated
// object-store files are cleaned up by the service layer.
type AsmrRepository interface {
	Create(ctx context.Context, a *domain.Asmr) (*domain.Asmr, error)
	FindAll(ctx context.Context) ([]domain.Asmr, error)
	FindByPlaylist(ctx context.Context, playlistID int64) ([]domain.Asmr, error)
	FindByID(ctx context.Context, id int64) (*domain.Asmr, error)
	Update(ctx context.Context, a *domain.Asmr) (*domain.Asmr, error)
	Delete(ctx context.Context, id int64) error
}

// CreateAsmrInput carries the fields for a new track.
type CreateAsmrInput struct {
	PlaylistID int64
	Name       string
	ImageURL   string
	YoutubeURL string
	MusicURL   string
}

// UpdateAsmrInput carries a partial update; nil fields are left unchanged.
type UpdateAsmrInput struct {
	PlaylistID *int64
	Name       *string
	ImageURL   *string
	YoutubeURL *string
	MusicURL   *string
}

// AsmrService defines track use-cases. List with playlistID 0 returns all tracks.
type AsmrService interface {
	Create(ctx context.Context, input CreateAsmrInput) (*domain.Asmr, error)
	List(ctx context.Context, playlistID int64) ([]domain.Asmr, error)
	Get(ctx context.Context, id int64) (*domain.Asmr, error)
	Update(ctx context.Context, id int64, input UpdateAsmrInput) (*domain.Asmr, error)
	Delete(ctx context.Context, id int64) error
}
