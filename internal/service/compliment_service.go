package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campus-compliments/internal/metrics"
	"campus-compliments/internal/models"
	"campus-compliments/internal/repository"

	"github.com/google/uuid"
)

// ComplimentService contains the business logic of the compliment feed
type ComplimentService struct {
	repo      ComplimentRepository
	maxLength int
	now       func() time.Time
	newID     func() string
}

// ComplimentRepository interface for dependency injection
type ComplimentRepository interface {
	InsertCompliment(ctx context.Context, c models.Compliment) error
	ListCompliments(ctx context.Context, filter models.ComplimentFilter) ([]models.Compliment, error)
	AdjustLikes(ctx context.Context, id string, delta int) (int, error)
	ComplimentStats(ctx context.Context, since time.Time) (models.Stats, error)
}

// NewComplimentService creates a new compliment service. Texts longer than
// maxLength runes are rejected.
func NewComplimentService(repo ComplimentRepository, maxLength int) *ComplimentService {
	return &ComplimentService{
		repo:      repo,
		maxLength: maxLength,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// List returns the feed, newest first.
func (s *ComplimentService) List(ctx context.Context, filter models.ComplimentFilter) ([]models.Compliment, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.BuildingCode = strings.TrimSpace(filter.BuildingCode)

	compliments, err := s.repo.ListCompliments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list compliments: %w", err)
	}
	return compliments, nil
}

// Create validates and stores a new compliment. The server assigns its ID,
// timestamp and like count; pins without a building get a custom_ code.
func (s *ComplimentService) Create(ctx context.Context, in models.NewCompliment) (models.Compliment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return models.Compliment{}, invalid("text is required")
	}
	if n := utf8.RuneCountInString(text); s.maxLength > 0 && n > s.maxLength {
		return models.Compliment{}, invalid(fmt.Sprintf("text must be at most %d characters", s.maxLength))
	}
	name := strings.TrimSpace(in.BuildingName)
	if name == "" {
		return models.Compliment{}, invalid("buildingName is required")
	}
	if in.Coordinates == nil || !in.Coordinates.Valid() {
		return models.Compliment{}, invalid("coordinates must be [longitude, latitude]")
	}

	now := s.now().UTC()
	code := strings.TrimSpace(in.BuildingCode)
	if code == "" {
		code = fmt.Sprintf("custom_%d", now.UnixMilli())
	}

	c := models.Compliment{
		ID:           s.newID(),
		BuildingCode: code,
		BuildingName: name,
		Text:         text,
		Coordinates:  *in.Coordinates,
		Timestamp:    now,
		Likes:        0,
	}
	if err := s.repo.InsertCompliment(ctx, c); err != nil {
		return models.Compliment{}, fmt.Errorf("service: failed to save compliment: %w", err)
	}

	metrics.ComplimentsCreatedTotal.Inc()
	return c, nil
}

// Like adds one like, or removes one when like is false, and returns the new count.
func (s *ComplimentService) Like(ctx context.Context, id string, like bool) (int, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, ErrInvalidID
	}

	delta, direction := 1, "like"
	if !like {
		delta, direction = -1, "unlike"
	}

	likes, err := s.repo.AdjustLikes(ctx, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("service: failed to update likes: %w", err)
	}

	metrics.LikesTotal.WithLabelValues(direction).Inc()
	return likes, nil
}

// Stats counts compliments overall, distinct locations and compliments since
// local midnight.
func (s *ComplimentService) Stats(ctx context.Context) (models.Stats, error) {
	now := s.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	stats, err := s.repo.ComplimentStats(ctx, midnight)
	if err != nil {
		return models.Stats{}, fmt.Errorf("service: failed to compute stats: %w", err)
	}
	return stats, nil
}
