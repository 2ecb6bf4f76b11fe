package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewTTL = time.Hour

// ViewMarker deduplicates post view counting per viewer, backed by Redis.
// Key format: view:<post_id>:<user_id>
type ViewMarker struct {
	client *redis.Client
}

// NewViewMarker creates a ViewMarker wrapping the given Redis client.
func NewViewMarker(client *redis.Client) *ViewMarker {
	return &ViewMarker{client: client}
}

// AlreadyViewed reports whether this viewer's view was counted recently.
func (m *ViewMarker) AlreadyViewed(ctx context.Context, postID, userID int64) (bool, error) {
	n, err := m.client.Exists(ctx, m.key(postID, userID)).Result()
	if err != nil {
		return false, fmt.Errorf("view check: %w", err)
	}
	return n > 0, nil
}

// MarkViewed records that the view was counted (expires after viewTTL).
func (m *ViewMarker) MarkViewed(ctx context.Context, postID, userID int64) error {
	return m.client.Set(ctx, m.key(postID, userID), "1", viewTTL).Err()
}

func (m *ViewMarker) key(postID, userID int64) string {
	return fmt.Sprintf("view:%d:%d", postID, userID)
}
