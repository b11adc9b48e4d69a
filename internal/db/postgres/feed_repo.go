package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Glimpse/internal/core/feed"
	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feed.Repository {
	return &postgresFeedRepo{db: db}
}

// SampleFollowedPosts draws a uniform random sample of posts whose author
// the viewer follows. The join restricts candidates to the viewer's follow
// graph before sampling, so an empty graph yields an empty result rather
// than falling back to global content.
func (r *postgresFeedRepo) SampleFollowedPosts(ctx context.Context, viewerID uuid.UUID, limit int) ([]*posts.Post, error) {
	query := `
		SELECT p.id, p.author_id, p.caption, p.images, p.hashtags, p.created_at
		FROM posts p
		JOIN follows f ON f.followee_id = p.author_id
		WHERE f.follower_id = $1
		ORDER BY random()
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample followed posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// SampleAllPosts draws a uniform random sample across all posts with like
// counts aggregated in the same query
func (r *postgresFeedRepo) SampleAllPosts(ctx context.Context, sampleSize int) ([]*feed.ExplorePost, error) {
	query := `
		SELECT p.id, p.images, COUNT(pl.user_id) AS like_count
		FROM posts p
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		GROUP BY p.id, p.images
		ORDER BY random()
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, sampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to sample posts: %w", err)
	}
	defer rows.Close()

	results := []*feed.ExplorePost{}
	for rows.Next() {
		var p feed.ExplorePost
		if err := rows.Scan(&p.ID, pq.Array(&p.Images), &p.LikeCount); err != nil {
			return nil, fmt.Errorf("failed to scan explore post: %w", err)
		}
		results = append(results, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating explore posts: %w", err)
	}

	return results, nil
}

func scanPosts(rows *sql.Rows) ([]*posts.Post, error) {
	result := []*posts.Post{}
	for rows.Next() {
		var p posts.Post
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Caption,
			pq.Array(&p.Images), pq.Array(&p.Hashtags), &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}
