package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// BoardRepository persists posts and likes for both boards.
type BoardRepository struct {
	db *sql.DB
}

func NewBoardRepository(db *sql.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

const postColumns = `p.id, p.board_type, p.title, p.content, p.image_urls, p.user_id,
	p.view_count, p.like_count, p.status,
	COALESCE(p.category, ''), COALESCE(p.asmr_id, 0), COALESCE(p.playlist_id, 0),
	COALESCE(p.request_type, ''), COALESCE(p.request_status, ''),
	COALESCE(p.youtube_url, ''), COALESCE(p.description, ''),
	p.created_at, p.updated_at,
	u.id, u.email, u.name, u.role`

func (r *BoardRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	images, err := encodeImageURLs(p.ImageURLs)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO posts
	          (board_type, title, content, image_urls, user_id, status,
	           category, asmr_id, playlist_id,
	           request_type, request_status, youtube_url, description)
	          VALUES ($1, $2, $3, $4, $5, $6,
	                  NULLIF($7, ''), NULLIF($8, 0), NULLIF($9, 0),
	                  NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''))
	          RETURNING id, created_at, updated_at`

	created := *p
	err = r.db.QueryRowContext(ctx, query,
		p.BoardType, p.Title, p.Content, images, p.UserID, p.Status,
		p.Category, p.AsmrID, p.PlaylistID,
		p.RequestType, p.RequestStatus, p.YoutubeURL, p.Description).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &created, nil
}

// Find returns a page of ACTIVE posts matching the query filters.
func (r *BoardRepository) Find(ctx context.Context, boardType domain.BoardType, q ports.PostQuery) (*ports.PostPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	where := []string{"p.board_type = $1", "p.status = $2"}
	args := []any{boardType, domain.PostActive}

	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if q.Category != "" {
		add("p.category = $%d", q.Category)
	}
	if q.AsmrID > 0 {
		add("p.asmr_id = $%d", q.AsmrID)
	}
	if q.PlaylistID > 0 {
		add("p.playlist_id = $%d", q.PlaylistID)
	}
	if q.RequestType != "" {
		add("p.request_type = $%d", q.RequestType)
	}
	if q.RequestStatus != "" {
		add("p.request_status = $%d", q.RequestStatus)
	}
	if q.UserID > 0 {
		add("p.user_id = $%d", q.UserID)
	}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		where = append(where, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", len(args), len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM posts p WHERE " + cond
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	order := "p.created_at DESC"
	switch q.Sort {
	case "popular":
		order = "p.like_count DESC, p.created_at DESC"
	case "views":
		order = "p.view_count DESC, p.created_at DESC"
	}

	args = append(args, limit, (page-1)*limit)
	listQuery := fmt.Sprintf(
		`SELECT %s FROM posts p JOIN users u ON u.id = p.user_id
		 WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		postColumns, cond, order, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &ports.PostPage{
		Items:      posts,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// FindByID returns an ACTIVE post with its author and active comments.
func (r *BoardRepository) FindByID(ctx context.Context, boardType domain.BoardType, id int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + `
	          FROM posts p JOIN users u ON u.id = p.user_id
	          WHERE p.id = $1 AND p.board_type = $2 AND p.status = $3`

	row := r.db.QueryRowContext(ctx, query, id, boardType, domain.PostActive)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	comments, err := r.commentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Comments = comments

	return p, nil
}

func (r *BoardRepository) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	images, err := encodeImageURLs(p.ImageURLs)
	if err != nil {
		return nil, err
	}

	query := `UPDATE posts
	          SET title = $1, content = $2, image_urls = $3,
	              category = NULLIF($4, ''), asmr_id = NULLIF($5, 0), playlist_id = NULLIF($6, 0),
	              request_type = NULLIF($7, ''), request_status = NULLIF($8, ''),
	              youtube_url = NULLIF($9, ''), description = NULLIF($10, ''),
	              updated_at = now()
	          WHERE id = $11
	          RETURNING updated_at`

	updated := *p
	err = r.db.QueryRowContext(ctx, query,
		p.Title, p.Content, images,
		p.Category, p.AsmrID, p.PlaylistID,
		p.RequestType, p.RequestStatus, p.YoutubeURL, p.Description,
		p.ID).
		Scan(&updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	return &updated, nil
}

func (r *BoardRepository) SetStatus(ctx context.Context, id int64, status domain.PostStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("set post status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *BoardRepository) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE posts SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// ToggleLike inserts or removes the (post, user) like row and adjusts the
// post's like counter in one transaction.
func (r *BoardRepository) ToggleLike(ctx context.Context, postID, userID int64) (bool, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("begin like toggle: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("remove like: %w", err)
	}

	removed, _ := res.RowsAffected()
	liked := removed == 0
	delta := int64(-1)

	if liked {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`, postID, userID); err != nil {
			return false, 0, fmt.Errorf("insert like: %w", err)
		}
		delta = 1
	}

	var count int64
	err = tx.QueryRowContext(ctx,
		`UPDATE posts SET like_count = like_count + $1 WHERE id = $2 RETURNING like_count`,
		delta, postID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, 0, domain.ErrPostNotFound
		}
		return false, 0, fmt.Errorf("adjust like count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("commit like toggle: %w", err)
	}

	return liked, count, nil
}

func (r *BoardRepository) commentsOf(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query := `SELECT c.id, c.post_id, c.user_id, c.content,
	                 COALESCE(c.parent_comment_id, 0), c.status, c.created_at, c.updated_at,
	                 u.id, u.email, u.name, u.role
	          FROM comments c JOIN users u ON u.id = c.user_id
	          WHERE c.post_id = $1 AND c.status = $2
	          ORDER BY c.created_at`

	rows, err := r.db.QueryContext(ctx, query, postID, domain.CommentActive)
	if err != nil {
		return nil, fmt.Errorf("list post comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}

	return comments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	p := &domain.Post{Author: &domain.User{}}
	var images []byte

	err := row.Scan(
		&p.ID, &p.BoardType, &p.Title, &p.Content, &images, &p.UserID,
		&p.ViewCount, &p.LikeCount, &p.Status,
		&p.Category, &p.AsmrID, &p.PlaylistID,
		&p.RequestType, &p.RequestStatus,
		&p.YoutubeURL, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Email, &p.Author.Name, &p.Author.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.ImageURLs); err != nil {
			return nil, fmt.Errorf("decode image urls: %w", err)
		}
	}

	return p, nil
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	c := &domain.Comment{Author: &domain.User{}}
	err := row.Scan(
		&c.ID, &c.PostID, &c.UserID, &c.Content,
		&c.ParentCommentID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Email, &c.Author.Name, &c.Author.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return c, nil
}

// encodeImageURLs stores nil/empty slices as SQL NULL.
func encodeImageURLs(urls []string) ([]byte, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return nil, fmt.Errorf("encode image urls: %w", err)
	}
	return b, nil
}
