package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/longrunpc/calmato-be/internal/api/metrics"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// Asset categories accepted by the upload endpoint. The category becomes the
// first path segment of the storage key.
var uploadTypes = map[string]struct{}{
	"asmrImage":     {},
	"asmrMusic":     {},
	"playlistImage": {},
	"profileImage":  {},
	"postImage":     {},
}

var ErrInvalidUploadType = fmt.Errorf("invalid upload type")
var ErrFileRequired = fmt.Errorf("file is required")
var ErrUnknownFileURL = fmt.Errorf("url does not point into the storage bucket")

// UploadService stores files under {type}/{userID}/{uuid}.{ext}.
type UploadService struct {
	store ports.BlobStore
}

func NewUploadService(store ports.BlobStore) *UploadService {
	return &UploadService{store: store}
}

func (s *UploadService) Upload(ctx context.Context, input ports.UploadInput) (*ports.UploadResult, error) {
	if input.Body == nil {
		return nil, ErrFileRequired
	}
	if _, ok := uploadTypes[input.Type]; !ok {
		return nil, ErrInvalidUploadType
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	key := fmt.Sprintf("%s/%d/%s%s", input.Type, input.UserID, uuid.NewString(), ext)

	url, err := s.store.Put(ctx, key, input.ContentType, input.Size, input.Body)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues(input.Type).Inc()
	return &ports.UploadResult{Key: key, URL: url}, nil
}

// Remove deletes the object behind a public URL. URLs outside the configured
// bucket, or keys with no object behind them, are rejected rather than
// guessed at.
func (s *UploadService) Remove(ctx context.Context, url string) error {
	key, ok := s.store.KeyFromURL(url)
	if !ok {
		return ErrUnknownFileURL
	}

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check file: %w", err)
	}
	if !exists {
		return ErrUnknownFileURL
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}
