package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type notificationService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notification service instance
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID) ([]*NotificationView, error) {
	views, err := s.repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return views, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := s.repo.MarkAllRead(ctx, recipientID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	s.logger.Info("notifications marked read", "recipient", recipientID)
	return nil
}
