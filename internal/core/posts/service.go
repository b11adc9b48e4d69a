package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type postService struct {
	repo     Repository
	authors  AuthorResolver
	resolver ViewerStateResolver
	logger   *slog.Logger
}

// NewService creates a new post service instance
func NewService(repo Repository, authors AuthorResolver, resolver ViewerStateResolver, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:     repo,
		authors:  authors,
		resolver: resolver,
		logger:   logger,
	}
}

// CreatePost stores a new post for the author.
// Request fields are schema-validated at the HTTP boundary; this layer only
// normalizes them (trimmed caption, lowercased hashtags).
func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req CreatePostRequest) (*Post, error) {
	hashtags := make([]string, 0, len(req.Hashtags))
	for _, tag := range req.Hashtags {
		tag = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(tag, "#")))
		if tag != "" {
			hashtags = append(hashtags, tag)
		}
	}

	post := &Post{
		AuthorID: authorID,
		Images:   req.Images,
		Caption:  strings.TrimSpace(req.Caption),
		Hashtags: hashtags,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post", created.ID,
		"author", authorID,
		"images", len(created.Images))

	return created, nil
}

// DeletePost removes a post after verifying the actor is its author
func (s *postService) DeletePost(ctx context.Context, actorID, postID uuid.UUID) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		return ErrNotPostAuthor
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted", "post", postID, "author", actorID)
	return nil
}

// GetPost returns the post with author summary and viewer annotations.
// A post the viewer never interacted with reports likeCount from the edge
// set and false for both flags.
func (s *postService) GetPost(ctx context.Context, viewerID, postID uuid.UUID) (*PostView, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	states, err := s.resolver.Resolve(ctx, viewerID, []uuid.UUID{post.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve viewer state: %w", err)
	}

	authorViews, err := s.authors.GetAuthors(ctx, []uuid.UUID{post.AuthorID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post author: %w", err)
	}

	view := &PostView{
		Post:        post,
		Author:      authorViews[post.AuthorID],
		ViewerState: states[post.ID],
	}
	return view, nil
}
