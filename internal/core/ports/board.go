package ports

import (
	"context"

	"github.com/longrunpc/calmato-be/internal/core/domain"
)

// PostQuery carries list filters shared by both boards. Zero values mean
// "no filter". Sort is one of "latest" (default), "popular", "views".
type PostQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string

	// Free board filters.
	Category   string
	AsmrID     int64
	PlaylistID int64

	// Request board filters.
	RequestType   string
	RequestStatus string

	// UserID restricts results to a single author ("my posts").
	UserID int64
}

// PostPage is a paginated list result.
type PostPage struct {
	Items      []domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BoardRepository persists posts and likes for both boards.
type BoardRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Find(ctx context.Context, boardType domain.BoardType, q PostQuery) (*PostPage, error)
	// FindByID returns the post with its author and active comments; only
	// ACTIVE posts of the given board are visible.
	FindByID(ctx context.Context, boardType domain.BoardType, id int64) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	SetStatus(ctx context.Context, id int64, status domain.PostStatus) error
	IncrementViewCount(ctx context.Context, id int64) error

	// Like bookkeeping. ToggleLike inserts or removes the (post, user) row and
	// adjusts like_count atomically, returning the new state.
	ToggleLike(ctx context.Context, postID, userID int64) (liked bool, likeCount int64, err error)
}

// CreateFreePostInput carries the fields for a new free-board post.
type CreateFreePostInput struct {
	Title      string
	Content    string
	Category   string
	ImageURLs  []string
	AsmrID     int64
	PlaylistID int64
}

// UpdateFreePostInput carries a partial update; nil fields are left unchanged.
type UpdateFreePostInput struct {
	Title      *string
	Content    *string
	Category   *string
	ImageURLs  *[]string
	AsmrID     *int64
	PlaylistID *int64
}

// CreateRequestPostInput carries the fields for a new track request.
type CreateRequestPostInput struct {
	Title       string
	Content     string
	RequestType string
	YoutubeURL  string
	Description string
	ImageURLs   []string
}

// UpdateRequestPostInput carries a partial update; nil fields are left unchanged.
type UpdateRequestPostInput struct {
	Title       *string
	Content     *string
	RequestType *string
	YoutubeURL  *string
	Description *string
	ImageURLs   *[]string
}

// LikeResult is returned by the like toggle.
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// FreeBoardService defines free-board use-cases. viewerID identifies the
// requesting user for view counting and ownership checks.
type FreeBoardService interface {
	Create(ctx context.Context, userID int64, input CreateFreePostInput) (*domain.Post, error)
	List(ctx context.Context, q PostQuery) (*PostPage, error)
	Get(ctx context.Context, id, viewerID int64) (*domain.Post, error)
	Update(ctx context.Context, id, userID int64, input UpdateFreePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id, userID int64) error
	ToggleLike(ctx context.Context, id, userID int64) (*LikeResult, error)
	ListMine(ctx context.Context, userID int64, q PostQuery) (*PostPage, error)
}

// RequestBoardService defines request-board use-cases. UpdateStatus is
// restricted to admins at the route level.
type RequestBoardService interface {
	Create(ctx context.Context, userID int64, input CreateRequestPostInput) (*domain.Post, error)
	List(ctx context.Context, q PostQuery) (*PostPage, error)
	Get(ctx context.Context, id, viewerID int64) (*domain.Post, error)
	Update(ctx context.Context, id, userID int64, input UpdateRequestPostInput) (*domain.Post, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Post, error)
	Delete(ctx context.Context, id, userID int64) error
	ToggleLike(ctx context.Context, id, userID int64) (*LikeResult, error)
	ListMine(ctx context.Context, userID int64, q PostQuery) (*PostPage, error)
}
