package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// maxCommentGraphemes is the maximum comment length in graphemes, so emoji
// and combining sequences count as one character each.
const maxCommentGraphemes = 2200

type commentService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new comment service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		logger: logger,
	}
}

// AddComment validates and stores a comment on a post
func (s *commentService) AddComment(ctx context.Context, actorID uuid.UUID, req AddCommentRequest) (*Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(text) > maxCommentGraphemes {
		return nil, ErrContentTooLong
	}

	comment := &Comment{
		PostID:   req.PostID,
		AuthorID: actorID,
		Text:     text,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"comment", created.ID,
		"post", created.PostID,
		"author", actorID)

	return created, nil
}

// DeleteComment removes a comment after verifying ownership.
// A failed authorization check leaves the comment untouched.
func (s *commentService) DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != actorID {
		return ErrNotCommentAuthor
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("comment deleted", "comment", commentID, "author", actorID)
	return nil
}

// ListComments returns the post's comments newest first. The per-post volume
// is bounded, so the listing is a restartable read with no cursor.
func (s *commentService) ListComments(ctx context.Context, postID uuid.UUID) ([]*CommentView, error) {
	views, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return views, nil
}
