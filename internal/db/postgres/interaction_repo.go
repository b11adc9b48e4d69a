package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Glimpse/internal/core/interactions"
	"Glimpse/internal/core/notifications"
	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresInteractionRepo struct {
	db *sql.DB
}

// NewInteractionRepository creates a new PostgreSQL like/save repository
func NewInteractionRepository(db *sql.DB) interactions.Repository {
	return &postgresInteractionRepo{db: db}
}

// ToggleLike flips the like edge for (user, post) in one transaction and
// returns the resulting state with the post's like count computed from the
// edge set before commit. The like notification targets the post author and
// rides the insert transaction.
func (r *postgresInteractionRepo) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var authorID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT author_id FROM posts WHERE id = $1`, postID).Scan(&authorID)
	if err == sql.ErrNoRows {
		return false, 0, interactions.ErrPostNotFound
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to get post author: %w", err)
	}

	insert := `
		INSERT INTO post_likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, insert, userID, postID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to insert like: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check insert result: %w", err)
	}

	liked := inserted > 0
	if liked {
		pid := postID
		n := notifications.FromTransition(notifications.Event{
			Type:      notifications.TypeLike,
			ActorID:   userID,
			Recipient: authorID,
			PostID:    &pid,
		})
		if err := insertNotificationTx(ctx, tx, n); err != nil {
			return false, 0, err
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM post_likes WHERE user_id = $1 AND post_id = $2`,
			userID, postID,
		); err != nil {
			return false, 0, fmt.Errorf("failed to delete like: %w", err)
		}
	}

	// Count inside the transaction so the returned total reflects exactly
	// the state this toggle produced
	var likeCount int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID,
	).Scan(&likeCount); err != nil {
		return false, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit like toggle: %w", err)
	}

	return liked, likeCount, nil
}

// ToggleSave flips the save edge for (user, post). Saves are private, so no
// notification is appended in either direction.
func (r *postgresInteractionRepo) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return false, interactions.ErrPostNotFound
	}

	insert := `
		INSERT INTO post_saves (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, insert, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to insert save: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	saved := inserted > 0
	if !saved {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM post_saves WHERE user_id = $1 AND post_id = $2`,
			userID, postID,
		); err != nil {
			return false, fmt.Errorf("failed to delete save: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit save toggle: %w", err)
	}

	return saved, nil
}

// LikeCounts aggregates like-edge cardinality for a batch of posts in one
// query. Posts with no likes produce no row.
func (r *postgresInteractionRepo) LikeCounts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT post_id, COUNT(*)
		FROM post_likes
		WHERE post_id = ANY($1::uuid[])
		GROUP BY post_id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(postIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[id] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like counts: %w", err)
	}

	return counts, nil
}

// LikedSet returns which of the given posts the user has liked
func (r *postgresInteractionRepo) LikedSet(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return r.edgeSet(ctx, "post_likes", userID, postIDs)
}

// SavedSet returns which of the given posts the user has saved
func (r *postgresInteractionRepo) SavedSet(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return r.edgeSet(ctx, "post_saves", userID, postIDs)
}

// edgeSet intersects the user's edges in table with the given post IDs. Both
// edge tables share the (user_id, post_id) shape.
func (r *postgresInteractionRepo) edgeSet(ctx context.Context, table string, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return set, nil
	}

	query := fmt.Sprintf(`
		SELECT post_id
		FROM %s
		WHERE user_id = $1 AND post_id = ANY($2::uuid[])
	`, table)

	rows, err := r.db.QueryContext(ctx, query, userID, pq.Array(uuidStrings(postIDs)))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		set[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return set, nil
}

// ListLikedPosts returns previews of every post the user has liked, newest
// like first
func (r *postgresInteractionRepo) ListLikedPosts(ctx context.Context, userID uuid.UUID) ([]*posts.PostPreview, error) {
	return r.listEdgePreviews(ctx, "post_likes", userID)
}

// ListSavedPosts returns previews of every post the user has saved, newest
// save first
func (r *postgresInteractionRepo) ListSavedPosts(ctx context.Context, userID uuid.UUID) ([]*posts.PostPreview, error) {
	return r.listEdgePreviews(ctx, "post_saves", userID)
}

func (r *postgresInteractionRepo) listEdgePreviews(ctx context.Context, table string, userID uuid.UUID) ([]*posts.PostPreview, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.images, COUNT(pl.user_id) AS like_count
		FROM %s e
		JOIN posts p ON p.id = e.post_id
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		WHERE e.user_id = $1
		GROUP BY p.id, p.images, e.created_at
		ORDER BY e.created_at DESC
	`, table)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s previews: %w", table, err)
	}
	defer rows.Close()

	previews := []*posts.PostPreview{}
	for rows.Next() {
		var p posts.PostPreview
		if err := rows.Scan(&p.ID, pq.Array(&p.Images), &p.LikeCount); err != nil {
			return nil, fmt.Errorf("failed to scan preview: %w", err)
		}
		previews = append(previews, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating previews: %w", err)
	}

	return previews, nil
}
