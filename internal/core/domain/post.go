package domain

import (
	"errors"
	"time"
)

// BoardType distinguishes the two community boards sharing the posts table.
type BoardType string

const (
	BoardFree    BoardType = "FREE"
	BoardRequest BoardType = "REQUEST"
)

// PostStatus is the lifecycle state of a post.
type PostStatus string

const (
	PostActive  PostStatus = "ACTIVE"
	PostDeleted PostStatus = "DELETED"
	PostBlocked PostStatus = "BLOCKED"
)

// Free-board categories.
const (
	CategoryReview   = "REVIEW"
	CategoryQuestion = "QUESTION"
	CategoryDaily    = "DAILY"
	CategoryTip      = "TIP"
)

// Request-board request types and statuses.
const (
	RequestTypeAsmr  = "ASMR"
	RequestTypeMusic = "MUSIC"

	RequestPending    = "PENDING"
	RequestInProgress = "IN_PROGRESS"
	RequestCompleted  = "COMPLETED"
	RequestRejected   = "REJECTED"
)

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidRequestStatus = errors.New("invalid request status")

// ValidRequestStatus reports whether s is a known request workflow state.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestInProgress, RequestCompleted, RequestRejected:
		return true
	}
	return false
}

// Post is a board entry. FREE posts carry Category and optional track links;
// REQUEST posts carry RequestType/RequestStatus and an optional reference URL.
// Deletion is soft: status flips to DELETED, counters and comments are kept.
type Post struct {
	ID        int64      `json:"id"`
	BoardType BoardType  `json:"board_type"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageURLs []string   `json:"image_urls,omitempty"`
	UserID    int64      `json:"user_id"`
	ViewCount int64      `json:"view_count"`
	LikeCount int64      `json:"like_count"`
	Status    PostStatus `json:"status"`

	// Free board only.
	Category   string `json:"category,omitempty"`
	AsmrID     int64  `json:"asmr_id,omitempty"`
	PlaylistID int64  `json:"playlist_id,omitempty"`

	// Request board only.
	RequestType   string `json:"request_type,omitempty"`
	RequestStatus string `json:"request_status,omitempty"`
	YoutubeURL    string `json:"youtube_url,omitempty"`
	Description   string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author   *User     `json:"author,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}
