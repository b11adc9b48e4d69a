package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Glimpse/internal/core/notifications"

	"github.com/google/uuid"
)

// uuidStrings converts UUIDs to their text form for pq.Array binding against
// ANY($n::uuid[]) parameters.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// insertNotificationTx appends a notification row inside the transaction that
// applied the triggering write. A nil notification (self-directed event or a
// removal) is a no-op, so callers can pass the transition result straight
// through.
func insertNotificationTx(ctx context.Context, tx *sql.Tx, n *notifications.Notification) error {
	if n == nil {
		return nil
	}

	query := `
		INSERT INTO notifications (recipient_id, type, actor_id, post_id)
		VALUES ($1, $2, $3, $4)
	`

	var postID interface{}
	if n.PostID != nil {
		postID = *n.PostID
	}

	if _, err := tx.ExecContext(ctx, query, n.RecipientID, n.Type, n.ActorID, postID); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}
