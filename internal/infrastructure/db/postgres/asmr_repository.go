package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

const asmrColumns = `id, playlist_id, name,
	COALESCE(image_url, ''), COALESCE(youtube_url, ''), COALESCE(music_url, ''),
	created_at, updated_at`

// AsmrRepository persists tracks.
type AsmrRepository struct {
	db *sql.DB
}

func NewAsmrRepository(db *sql.DB) *AsmrRepository {
	return &AsmrRepository{db: db}
}

func (r *AsmrRepository) Create(ctx context.Context, a *domain.Asmr) (*domain.Asmr, error) {
	query := `INSERT INTO asmrs (playlist_id, name, image_url, youtube_url, music_url)
	          VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
	          RETURNING id, created_at, updated_at`

	created := *a
	err := r.db.QueryRowContext(ctx, query, a.PlaylistID, a.Name, a.ImageURL, a.YoutubeURL, a.MusicURL).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert asmr: %w", err)
	}

	return &created, nil
}

func (r *AsmrRepository) FindAll(ctx context.Context) ([]domain.Asmr, error) {
	return r.queryMany(ctx, `SELECT `+asmrColumns+` FROM asmrs ORDER BY created_at DESC`)
}

func (r *AsmrRepository) FindByPlaylist(ctx context.Context, playlistID int64) ([]domain.Asmr, error) {
	return r.queryMany(ctx,
		`SELECT `+asmrColumns+` FROM asmrs WHERE playlist_id = $1 ORDER BY created_at DESC`,
		playlistID)
}

func (r *AsmrRepository) FindByID(ctx context.Context, id int64) (*domain.Asmr, error) {
	a := &domain.Asmr{}
	err := r.db.QueryRowContext(ctx, `SELECT `+asmrColumns+` FROM asmrs WHERE id = $1`, id).
		Scan(&a.ID, &a.PlaylistID, &a.Name, &a.ImageURL, &a.YoutubeURL, &a.MusicURL,
			&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAsmrNotFound
		}
		return nil, fmt.Errorf("find asmr: %w", err)
	}
	return a, nil
}

func (r *AsmrRepository) Update(ctx context.Context, a *domain.Asmr) (*domain.Asmr, error) {
	query := `UPDATE asmrs
	          SET playlist_id = $1, name = $2,
	              image_url = NULLIF($3, ''), youtube_url = NULLIF($4, ''), music_url = NULLIF($5, ''),
	              updated_at = now()
	          WHERE id = $6
	          RETURNING updated_at`

	updated := *a
	err := r.db.QueryRowContext(ctx, query,
		a.PlaylistID, a.Name, a.ImageURL, a.YoutubeURL, a.MusicURL, a.ID).
		Scan(&updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAsmrNotFound
		}
		return nil, fmt.Errorf("update asmr: %w", err)
	}

	return &updated, nil
}

func (r *AsmrRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM asmrs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asmr: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrAsmrNotFound
	}
	return nil
}

func (r *AsmrRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Asmr, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list asmrs: %w", err)
	}
	defer rows.Close()

	var asmrs []domain.Asmr
	for rows.Next() {
		var a domain.Asmr
		if err := rows.Scan(&a.ID, &a.PlaylistID, &a.Name, &a.ImageURL, &a.YoutubeURL, &a.MusicURL,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asmr: %w", err)
		}
		asmrs = append(asmrs, a)
	}

	return asmrs, rows.Err()
}
