package interactions

import (
	"context"
	"fmt"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

// ViewerStateResolver annotates post sets with per-viewer state. It is the
// single enrichment path shared by feed assembly and single-post retrieval:
// three batched edge-set lookups over the whole id set, never one storage
// round trip per post.
type ViewerStateResolver struct {
	repo Repository
}

// NewViewerStateResolver creates a resolver backed by the interaction repository
func NewViewerStateResolver(repo Repository) *ViewerStateResolver {
	return &ViewerStateResolver{repo: repo}
}

// Resolve returns a ViewerState for every requested post. Posts with no
// likes and no viewer interaction still get a zero-valued entry, so callers
// can index the map unconditionally.
func (r *ViewerStateResolver) Resolve(ctx context.Context, viewerID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]posts.ViewerState, error) {
	result := make(map[uuid.UUID]posts.ViewerState, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	counts, err := r.repo.LikeCounts(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to batch like counts: %w", err)
	}

	liked, err := r.repo.LikedSet(ctx, viewerID, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to batch liked set: %w", err)
	}

	saved, err := r.repo.SavedSet(ctx, viewerID, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to batch saved set: %w", err)
	}

	for _, id := range postIDs {
		result[id] = posts.ViewerState{
			LikeCount: counts[id],
			IsLiked:   liked[id],
			IsSaved:   saved[id],
		}
	}

	return result, nil
}
