package domain

import (
	"errors"
	"time"
)

// CommentStatus is the lifecycle state of a comment.
type CommentStatus string

const (
	CommentActive  CommentStatus = "ACTIVE"
	CommentDeleted CommentStatus = "DELETED"
	CommentBlocked CommentStatus = "BLOCKED"
)

// DeletedCommentBody replaces the content of a soft-deleted comment that
// still has visible replies.
const DeletedCommentBody = "삭제된 댓글입니다."

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to a post; ParentCommentID links a reply to its parent.
type Comment struct {
	ID              int64         `json:"id"`
	PostID          int64         `json:"post_id"`
	UserID          int64         `json:"user_id"`
	Content         string        `json:"content"`
	ParentCommentID int64         `json:"parent_comment_id,omitempty"`
	Status          CommentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Author *User `json:"author,omitempty"`
}
