package domain

import (
	"errors"
	"time"
)

// PlaylistStatus is the visibility state of a playlist.
type PlaylistStatus string

const (
	PlaylistActive   PlaylistStatus = "ACTIVE"
	PlaylistInactive PlaylistStatus = "INACTIVE"
	PlaylistDeleted  PlaylistStatus = "DELETED"
)

var ErrPlaylistNotFound = errors.New("playlist not found")

// Playlist groups ASMR tracks under a shared cover image.
// Deleting a playlist is a soft delete: status flips to DELETED and the row stays.
type Playlist struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	ImgURL    string         `json:"img_url"`
	Status    PlaylistStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Asmrs     []Asmr         `json:"asmrs,omitempty"`
}
