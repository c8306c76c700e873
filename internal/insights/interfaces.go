package insights

import (
	"context"

	"monad-feedback/internal/kafka"
)

// CategoryCount - счетчик отзывов по категории
type CategoryCount struct {
	Category    string `json:"category"`
	Submissions int64  `json:"submissions"`
}

// InsightsRepo — интерфейс репозитория счетчиков по категориям.
type InsightsRepo interface {
	IncrementCategory(ctx context.Context, category string) error
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
}

// InsightsService — интерфейс сервиса статистики.
type InsightsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	TopCategories(ctx context.Context, limit int) ([]CategoryCount, error)
}
