package domain

import (
	"errors"
	"time"
)

var ErrAsmrNotFound = errors.New("asmr not found")

// Asmr is a single track: an uploaded audio file, a YouTube link, or both,
// with an optional cover image. File URLs point into the object store.
type Asmr struct {
	ID         int64     `json:"id"`
	PlaylistID int64     `json:"playlist_id"`
	Name       string    `json:"name"`
	ImageURL   string    `json:"image_url,omitempty"`
	YoutubeURL string    `json:"youtube_url,omitempty"`
	MusicURL   string    `json:"music_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
