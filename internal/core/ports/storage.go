package ports

import (
	"context"
	"io"
)

// BlobStore abstracts the object-storage backend holding uploaded assets.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (url string, err error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// KeyFromURL extracts the object key from a public URL of this store;
	// ok is false when the URL does not point into the store's bucket.
	KeyFromURL(url string) (key string, ok bool)
}

// UploadResult describes a stored file.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadInput carries an inbound file upload.
type UploadInput struct {
	// Type is the asset category (asmrImage, playlistImage, profileImage, postImage).
	Type        string
	UserID      int64
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadService stores and removes user-uploaded files.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Remove(ctx context.Context, url string) error
}
