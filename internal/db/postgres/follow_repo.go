package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Glimpse/internal/core/graph"
	"Glimpse/internal/core/notifications"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db *sql.DB) graph.Repository {
	return &postgresFollowRepo{db: db}
}

// ToggleFollow flips the follow edge for (follower, followee) in one
// transaction. The conditional insert keyed on the pair's primary key is the
// serialization point: concurrent identical requests resolve to alternating
// states, never a duplicate edge. The follow notification rides the insert
// transaction so the edge and its notification commit or roll back together.
func (r *postgresFollowRepo) ToggleFollow(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, insert, followerID, followeeID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == "23503":
				return false, graph.ErrUserNotFound
			case pqErr.Constraint == "chk_no_self_follow":
				return false, graph.ErrSelfFollow
			}
		}
		return false, fmt.Errorf("failed to insert follow: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	following := inserted > 0
	if following {
		n := notifications.FromTransition(notifications.Event{
			Type:      notifications.TypeFollow,
			ActorID:   followerID,
			Recipient: followeeID,
		})
		if err := insertNotificationTx(ctx, tx, n); err != nil {
			return false, err
		}
	} else {
		// Edge already existed: this request is the unfollow half of the
		// toggle. Removals never notify.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
			followerID, followeeID,
		); err != nil {
			return false, fmt.Errorf("failed to delete follow: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit follow toggle: %w", err)
	}

	return following, nil
}

// IsFollowing reports whether the follow edge exists
func (r *postgresFollowRepo) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND followee_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, followerID, followeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

// Counts returns follower and following cardinality from the edge set. Both
// directions read the same rows, so they cannot drift apart.
func (r *postgresFollowRepo) Counts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE followee_id = $1),
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1)
	`

	var followers, following int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&followers, &following); err != nil {
		return 0, 0, fmt.Errorf("failed to count follows: %w", err)
	}

	return followers, following, nil
}
