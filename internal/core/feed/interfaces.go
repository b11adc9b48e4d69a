package feed

import (
	"context"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

// Repository defines the storage interface for feed candidate selection
type Repository interface {
	// SampleFollowedPosts draws a uniform random sample of up to limit posts
	// whose author the viewer follows. An empty follow graph yields an empty
	// slice, never a fallback to global content.
	SampleFollowedPosts(ctx context.Context, viewerID uuid.UUID, limit int) ([]*posts.Post, error)

	// SampleAllPosts draws a uniform random sample across all posts with
	// like counts resolved in the same query.
	SampleAllPosts(ctx context.Context, sampleSize int) ([]*ExplorePost, error)
}

// Service assembles per-user feeds on read from the follow graph and the
// interaction ledger. There is no precomputed per-follower feed storage.
type Service interface {
	// GetFeed returns up to limit posts from followed authors, annotated
	// with the viewer's like/save state and author summaries.
	GetFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*FeedPost, error)

	// GetExplore returns a graph-independent random sample for discovery
	GetExplore(ctx context.Context, sampleSize int) ([]*ExplorePost, error)
}
