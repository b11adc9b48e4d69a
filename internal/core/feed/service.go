package feed

import (
	"context"
	"fmt"
	"log/slog"

	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

const (
	// DefaultFeedLimit bounds one feed page. Sampling policy: when the
	// candidate set exceeds the limit, a fresh uniform random sample is
	// drawn per request. The feed is intentionally non-deterministic and
	// non-paginated: refreshing yields a new sample. This preserves the
	// product's original behavior; recency or engagement weighting would be
	// a new policy, not a fix.
	DefaultFeedLimit = 50

	// DefaultExploreSize is the discovery sample size
	DefaultExploreSize = 20

	maxFeedLimit = 100
)

type feedService struct {
	repo     Repository
	resolver posts.ViewerStateResolver
	authors  posts.AuthorResolver
	logger   *slog.Logger
}

// NewService creates a new feed service instance
func NewService(repo Repository, resolver posts.ViewerStateResolver, authors posts.AuthorResolver, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		repo:     repo,
		resolver: resolver,
		authors:  authors,
		logger:   logger,
	}
}

// GetFeed assembles the viewer's feed on read:
// 1. Sample candidate posts from followed authors (one query).
// 2. Batch-resolve like counts and the viewer's like/save flags over the
//    whole selection (one pass per edge set, never per post).
// 3. Resolve each distinct author once.
func (s *feedService) GetFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*FeedPost, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	selected, err := s.repo.SampleFollowedPosts(ctx, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample followed posts: %w", err)
	}

	// Empty follow graph or no candidate posts: the feed is strictly
	// graph-scoped, so return empty rather than falling back to global
	// content.
	result := make([]*FeedPost, 0, len(selected))
	if len(selected) == 0 {
		return result, nil
	}

	postIDs := make([]uuid.UUID, 0, len(selected))
	authorIDs := make([]uuid.UUID, 0, len(selected))
	seenAuthors := make(map[uuid.UUID]bool)
	for _, p := range selected {
		postIDs = append(postIDs, p.ID)
		if !seenAuthors[p.AuthorID] {
			seenAuthors[p.AuthorID] = true
			authorIDs = append(authorIDs, p.AuthorID)
		}
	}

	states, err := s.resolver.Resolve(ctx, viewerID, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve viewer state: %w", err)
	}

	authorViews, err := s.authors.GetAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve feed authors: %w", err)
	}

	for _, p := range selected {
		result = append(result, &FeedPost{
			Post:        p,
			Author:      authorViews[p.AuthorID],
			ViewerState: states[p.ID],
		})
	}

	s.logger.Debug("feed assembled",
		"viewer", viewerID,
		"posts", len(result),
		"authors", len(authorIDs))

	return result, nil
}

// GetExplore draws a uniform random sample across all posts for discovery.
// No viewer-state annotation; like counts ride along from the sample query.
func (s *feedService) GetExplore(ctx context.Context, sampleSize int) ([]*ExplorePost, error) {
	if sampleSize <= 0 {
		sampleSize = DefaultExploreSize
	}
	if sampleSize > maxFeedLimit {
		sampleSize = maxFeedLimit
	}

	sample, err := s.repo.SampleAllPosts(ctx, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to sample posts: %w", err)
	}
	if sample == nil {
		sample = []*ExplorePost{}
	}
	return sample, nil
}
