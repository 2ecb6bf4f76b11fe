package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/longrunpc/calmato-be/internal/core/domain"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// countView bumps a post's view counter unless the viewer is anonymous, is
// the author, or the dedup store has seen this (post, user) pair recently.
// A broken dedup store degrades to counting every view; reads never fail
// because of it.
func countView(ctx context.Context, repo ports.BoardRepository, views ViewMarker, log zerolog.Logger, post *domain.Post, viewerID int64) {
	if viewerID <= 0 || viewerID == post.UserID {
		return
	}
	if views != nil {
		seen, err := views.AlreadyViewed(ctx, post.ID, viewerID)
		if err != nil {
			log.Warn().Err(err).Int64("post_id", post.ID).Msg("view dedup check failed")
		} else if seen {
			return
		}
		if err := views.MarkViewed(ctx, post.ID, viewerID); err != nil {
			log.Warn().Err(err).Int64("post_id", post.ID).Msg("view dedup mark failed")
		}
	}
	if err := repo.IncrementViewCount(ctx, post.ID); err != nil {
		log.Warn().Err(err).Int64("post_id", post.ID).Msg("view count increment failed")
		return
	}
	post.ViewCount++
}
