package service

import (
	"context"
	"testing"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

type stubPlaylistRepo struct {
	playlists map[int64]*domain.Playlist
	nextID    int64
}

func newStubPlaylistRepo() *stubPlaylistRepo {
	return &stubPlaylistRepo{playlists: make(map[int64]*domain.Playlist)}
}

func (r *stubPlaylistRepo) Create(_ context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	r.nextID++
	clone := *p
	clone.ID = r.nextID
	r.playlists[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlaylistRepo) FindAllActive(_ context.Context) ([]domain.Playlist, error) {
	var out []domain.Playlist
	for _, p := range r.playlists {
		if p.Status == domain.PlaylistActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPlaylistRepo) FindByID(_ context.Context, id int64) (*domain.Playlist, error) {
	p, ok := r.playlists[id]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlaylistRepo) Update(_ context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	if _, ok := r.playlists[p.ID]; !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	clone := *p
	r.playlists[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlaylistRepo) SetStatus(_ context.Context, id int64, status domain.PlaylistStatus) error {
	p, ok := r.playlists[id]
	if !ok {
		return domain.ErrPlaylistNotFound
	}
	p.Status = status
	return nil
}

func TestPlaylistService_Create(t *testing.T) {
	svc := NewPlaylistService(newStubPlaylistRepo(), nil)

	p, err := svc.Create(context.Background(), ports.CreatePlaylistInput{Name: "rain", ImgURL: "https://cdn/r.png"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Status != domain.PlaylistActive {
		t.Fatalf("expected ACTIVE, got %s", p.Status)
	}
}

func TestPlaylistService_Update_CleansReplacedImage(t *testing.T) {
	repo := newStubPlaylistRepo()
	cleaner := &recordingCleaner{}
	svc := NewPlaylistService(repo, cleaner)
	p, _ := svc.Create(context.Background(), ports.CreatePlaylistInput{Name: "rain", ImgURL: "https://cdn/old.png"})

	img := "https://cdn/new.png"
	updated, err := svc.Update(context.Background(), p.ID, ports.UpdatePlaylistInput{ImgURL: &img})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImgURL != img {
		t.Fatalf("image not updated: %s", updated.ImgURL)
	}
	if len(cleaner.urls) != 1 || cleaner.urls[0] != "https://cdn/old.png" {
		t.Fatalf("old image not queued for cleanup: %v", cleaner.urls)
	}
}

func TestPlaylistService_Delete_Soft(t *testing.T) {
	repo := newStubPlaylistRepo()
	cleaner := &recordingCleaner{}
	svc := NewPlaylistService(repo, cleaner)
	p, _ := svc.Create(context.Background(), ports.CreatePlaylistInput{Name: "rain", ImgURL: "https://cdn/r.png"})

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.playlists[p.ID].Status != domain.PlaylistDeleted {
		t.Fatalf("expected soft delete, got %s", repo.playlists[p.ID].Status)
	}
	if len(cleaner.urls) != 1 {
		t.Fatalf("cover image not queued for cleanup: %v", cleaner.urls)
	}

	// Deleted playlists drop out of the listing.
	active, _ := svc.List(context.Background())
	if len(active) != 0 {
		t.Fatalf("deleted playlist still listed")
	}
}
