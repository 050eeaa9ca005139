package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campus-compliments/internal/metrics"
	"campus-compliments/internal/models"

	"github.com/go-playground/validator/v10"
)

const maxFeedbackLength = 5000

var validate = validator.New()

// FeedbackService stores feedback about the app
type FeedbackService struct {
	repo FeedbackRepository
	now  func() time.Time
}

// FeedbackRepository interface for dependency injection
type FeedbackRepository interface {
	InsertFeedback(ctx context.Context, f models.Feedback) (int64, error)
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo, now: time.Now}
}

// Submit validates and stores a feedback message.
func (s *FeedbackService) Submit(ctx context.Context, f models.Feedback) (models.Feedback, error) {
	f.Text = strings.TrimSpace(f.Text)
	f.Email = strings.TrimSpace(f.Email)
	if f.Text == "" {
		return models.Feedback{}, invalid("text is required")
	}
	if utf8.RuneCountInString(f.Text) > maxFeedbackLength {
		return models.Feedback{}, invalid(fmt.Sprintf("text must be at most %d characters", maxFeedbackLength))
	}
	if f.Email != "" {
		if err := validate.Var(f.Email, "email"); err != nil {
			return models.Feedback{}, invalid("email is not a valid address")
		}
	}
	f.Timestamp = s.now().UTC()

	id, err := s.repo.InsertFeedback(ctx, f)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("service: failed to save feedback: %w", err)
	}
	f.ID = id

	metrics.FeedbackTotal.Inc()
	return f, nil
}
