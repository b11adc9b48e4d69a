package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Glimpse/internal/core/comments"
	"Glimpse/internal/core/notifications"
	"Glimpse/internal/core/posts"

	"github.com/google/uuid"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts the comment and appends the comment notification for the
// post author in the same transaction. The author lookup doubles as the
// post-existence check.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var authorID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT author_id FROM posts WHERE id = $1`, comment.PostID).Scan(&authorID)
	if err == sql.ErrNoRows {
		return nil, comments.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post author: %w", err)
	}

	insert := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := tx.QueryRowContext(
		ctx, insert, comment.PostID, comment.AuthorID, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	pid := comment.PostID
	n := notifications.FromTransition(notifications.Event{
		Type:      notifications.TypeComment,
		ActorID:   comment.AuthorID,
		Recipient: authorID,
		PostID:    &pid,
	})
	if err := insertNotificationTx(ctx, tx, n); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit comment: %w", err)
	}

	return comment, nil
}

// GetByID retrieves a comment by its ID
func (r *postgresCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*comments.Comment, error) {
	query := `
		SELECT id, post_id, author_id, text, created_at
		FROM comments
		WHERE id = $1
	`

	var c comments.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PostID, &c.AuthorID, &c.Text, &c.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

// Delete removes a comment
func (r *postgresCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// ListByPost returns the post's comments newest first with author identity
// joined in the same query
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comments.CommentView, error) {
	query := `
		SELECT c.id, c.post_id, c.text, c.created_at,
		       u.id, u.username, u.avatar
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	views := []*comments.CommentView{}
	for rows.Next() {
		var v comments.CommentView
		var author posts.AuthorView
		if err := rows.Scan(
			&v.ID, &v.PostID, &v.Text, &v.CreatedAt,
			&author.ID, &author.Username, &author.Avatar,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		v.Author = &author
		views = append(views, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return views, nil
}
