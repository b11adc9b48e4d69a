package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user profile
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, name, bio, avatar, is_private)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		user.Username, user.Name, user.Bio, user.Avatar, user.IsPrivate,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their ID
func (r *postgresUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*users.User, error) {
	query := `
		SELECT id, username, name, bio, avatar, is_private, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user users.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Name, &user.Bio,
		&user.Avatar, &user.IsPrivate, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateProfile applies a partial profile update. Nil avatar/bio leave the
// stored values untouched.
func (r *postgresUserRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req users.UpdateProfileRequest) (*users.User, error) {
	query := `
		UPDATE users
		SET name = $2,
		    bio = COALESCE($3, bio),
		    avatar = COALESCE($4, avatar),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, name, bio, avatar, is_private, created_at, updated_at
	`

	var user users.User
	err := r.db.QueryRowContext(ctx, query, userID, req.Name, req.Bio, req.Avatar).Scan(
		&user.ID, &user.Username, &user.Name, &user.Bio,
		&user.Avatar, &user.IsPrivate, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &user, nil
}

// Search finds users whose username or display name contains the query,
// excluding the caller from their own results.
func (r *postgresUserRepo) Search(ctx context.Context, query string, exclude uuid.UUID, limit int) ([]*users.UserSummary, error) {
	sqlQuery := `
		SELECT id, username, name, avatar
		FROM users
		WHERE (username ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')
		  AND id <> $2
		ORDER BY username
		LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, query, exclude, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	results := []*users.UserSummary{}
	for rows.Next() {
		var s users.UserSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.Name, &s.Avatar); err != nil {
			return nil, fmt.Errorf("failed to scan user summary: %w", err)
		}
		results = append(results, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return results, nil
}

// ListPostPreviews returns a user's posts newest first as grid previews with
// fresh like counts.
func (r *postgresUserRepo) ListPostPreviews(ctx context.Context, authorID uuid.UUID) ([]*users.ProfilePost, error) {
	query := `
		SELECT p.id, p.images, COUNT(pl.user_id) AS like_count
		FROM posts p
		LEFT JOIN post_likes pl ON pl.post_id = p.id
		WHERE p.author_id = $1
		GROUP BY p.id, p.images, p.created_at
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list post previews: %w", err)
	}
	defer rows.Close()

	previews := []*users.ProfilePost{}
	for rows.Next() {
		var p users.ProfilePost
		if err := rows.Scan(&p.ID, pq.Array(&p.Images), &p.LikeCount); err != nil {
			return nil, fmt.Errorf("failed to scan post preview: %w", err)
		}
		previews = append(previews, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post previews: %w", err)
	}

	return previews, nil
}

type postgresAuthorResolver struct {
	db *sql.DB
}

// NewAuthorResolver creates a batched author lookup for post hydration
func NewAuthorResolver(db *sql.DB) posts.AuthorResolver {
	return &postgresAuthorResolver{db: db}
}

// GetAuthors resolves the display identity for a batch of author IDs in a
// single query. Each distinct author is fetched once regardless of how many
// posts reference them.
func (r *postgresAuthorResolver) GetAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*posts.AuthorView, error) {
	result := make(map[uuid.UUID]*posts.AuthorView, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `
		SELECT id, username, avatar
		FROM users
		WHERE id = ANY($1::uuid[])
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(uuidStrings(ids)))
	if err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a posts.AuthorView
		if err := rows.Scan(&a.ID, &a.Username, &a.Avatar); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		result[a.ID] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return result, nil
}
