package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// PlaylistRepository persists playlists.
type PlaylistRepository struct {
	db *sql.DB
}

func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	query := `INSERT INTO playlists (name, img_url, status)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	created := *p
	err := r.db.QueryRowContext(ctx, query, p.Name, p.ImgURL, p.Status).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert playlist: %w", err)
	}

	return &created, nil
}

// FindAllActive returns ACTIVE playlists with their tracks loaded.
func (r *PlaylistRepository) FindAllActive(ctx context.Context) ([]domain.Playlist, error) {
	query := `SELECT id, name, img_url, status, created_at, updated_at
	          FROM playlists WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, domain.PlaylistActive)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	var playlists []domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.ImgURL, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range playlists {
		asmrs, err := r.tracksOf(ctx, playlists[i].ID)
		if err != nil {
			return nil, err
		}
		playlists[i].Asmrs = asmrs
	}

	return playlists, nil
}

func (r *PlaylistRepository) FindByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	query := `SELECT id, name, img_url, status, created_at, updated_at
	          FROM playlists WHERE id = $1`

	p := &domain.Playlist{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.ImgURL, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("find playlist: %w", err)
	}

	asmrs, err := r.tracksOf(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Asmrs = asmrs

	return p, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, p *domain.Playlist) (*domain.Playlist, error) {
	query := `UPDATE playlists SET name = $1, img_url = $2, status = $3, updated_at = now()
	          WHERE id = $4
	          RETURNING updated_at`

	updated := *p
	err := r.db.QueryRowContext(ctx, query, p.Name, p.ImgURL, p.Status, p.ID).Scan(&updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("update playlist: %w", err)
	}

	return &updated, nil
}

func (r *PlaylistRepository) SetStatus(ctx context.Context, id int64, status domain.PlaylistStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE playlists SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("set playlist status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistRepository) tracksOf(ctx context.Context, playlistID int64) ([]domain.Asmr, error) {
	query := `SELECT id, playlist_id, name,
	                 COALESCE(image_url, ''), COALESCE(youtube_url, ''), COALESCE(music_url, ''),
	                 created_at, updated_at
	          FROM asmrs WHERE playlist_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list playlist tracks: %w", err)
	}
	defer rows.Close()

	var asmrs []domain.Asmr
	for rows.Next() {
		var a domain.Asmr
		if err := rows.Scan(&a.ID, &a.PlaylistID, &a.Name, &a.ImageURL, &a.YoutubeURL, &a.MusicURL,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		asmrs = append(asmrs, a)
	}

	return asmrs, rows.Err()
}
