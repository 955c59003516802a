package repository

import (
	"context"

	"github.com/martijn/feedbackd/internal/core/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	FindByID(ctx context.Context, id int64) (*domain.Feedback, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Feedback, error)
	Update(ctx context.Context, feedback *domain.Feedback) error
	Delete(ctx context.Context, id int64) error
}
