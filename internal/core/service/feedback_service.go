package service

import (
	"context"
	"fmt"
	"time"

	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/martijn/feedbackd/internal/core/repository"
	"go.uber.org/zap"
)

type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Create adds a feedback entry owned by owner. Only the owner may
// create entries under their own name.
func (s *FeedbackService) Create(ctx context.Context, actor, owner, title, content string) (*domain.Feedback, error) {
	if err := RequireOwner(actor, owner); err != nil {
		return nil, err
	}

	if err := ValidateFeedback(title, content); err != nil {
		return nil, err
	}

	feedback := domain.NewFeedback(title, content, owner)
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	s.logger.Info("feedback created",
		zap.Int64("id", feedback.ID),
		zap.String("username", owner),
	)
	return feedback, nil
}

// Get fetches a feedback entry, then checks that the actor owns it.
// The row is always looked up before the ownership comparison: the
// owner is stored on the row itself, so there is nothing to compare
// against until the fetch has happened.
func (s *FeedbackService) Get(ctx context.Context, actor string, id int64) (*domain.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := RequireOwner(actor, feedback.Username); err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListForUser returns all feedback owned by owner, restricted to the
// owner themselves.
func (s *FeedbackService) ListForUser(ctx context.Context, actor, owner string) ([]*domain.Feedback, error) {
	if err := RequireOwner(actor, owner); err != nil {
		return nil, err
	}
	return s.feedbackRepo.FindByUsername(ctx, owner)
}

// Update mutates title and content of an entry. Ownership never
// changes. Fetch-then-check, same as Get.
func (s *FeedbackService) Update(ctx context.Context, actor string, id int64, title, content string) (*domain.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := RequireOwner(actor, feedback.Username); err != nil {
		return nil, err
	}

	if err := ValidateFeedback(title, content); err != nil {
		return nil, err
	}

	feedback.Title = title
	feedback.Content = content
	feedback.UpdatedAt = time.Now()
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	return feedback, nil
}

// Delete removes an entry and reports its owner, so callers can
// redirect back to the owner's page.
func (s *FeedbackService) Delete(ctx context.Context, actor string, id int64) (string, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := RequireOwner(actor, feedback.Username); err != nil {
		return "", err
	}

	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete feedback: %w", err)
	}

	s.logger.Info("feedback deleted",
		zap.Int64("id", id),
		zap.String("username", feedback.Username),
	)
	return feedback.Username, nil
}
