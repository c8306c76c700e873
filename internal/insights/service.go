package insights

import (
	"context"

	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/kafka"
)

type Service struct {
	repo   InsightsRepo
	logger *zap.SugaredLogger
}

func NewService(repo InsightsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ProcessEvent - сворачивает событие сабмита в счетчик категории.
// События миграции и события с неизвестной категорией игнорируются.
func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.Type != kafka.EventTypeSubmission {
		return nil
	}
	if !feedback.KnownCategory(event.Category) {
		s.logger.Warnf("Skipping event with unknown category: %s", event.Category)
		return nil
	}

	return s.repo.IncrementCategory(ctx, event.Category)
}

func (s *Service) TopCategories(ctx context.Context, limit int) ([]CategoryCount, error) {
	return s.repo.TopCategories(ctx, limit)
}
