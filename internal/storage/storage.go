package storage

import (
	"context"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
)

// Storage - единый интерфейс хранилища для обеих коллекций.
// Анонимайзер и view-слой зависят только от него, конкретный бэкенд
// (Postgres, Redis, файл) выбирается при старте сервиса.
//
//go:generate mockgen -source=internal/storage/storage.go -destination=internal/mocks/mock_storage.go -package=mocks
type Storage interface {
	// AppendPair - сохраняет запись отзыва и парную запись истории.
	// Бэкенд обязан записать обе записи одного логического сабмита;
	// атомарность пары гарантирует только Postgres-бэкенд.
	AppendPair(ctx context.Context, fb feedback.Record, h history.Record) error

	// AppendFeedback - сохраняет одиночную запись отзыва (миграция)
	AppendFeedback(ctx context.Context, fb feedback.Record) error

	// AppendHistory - сохраняет одиночную запись истории (миграция)
	AppendHistory(ctx context.Context, h history.Record) error

	// ListFeedback - возвращает все записи отзывов,
	// отсортированные по анонимизированной метке времени по убыванию
	ListFeedback(ctx context.Context) ([]feedback.Record, error)

	// ListHistory - возвращает все записи истории,
	// отсортированные по анонимизированной метке времени по убыванию
	ListHistory(ctx context.Context) ([]history.Record, error)

	// UpgradeSchema - идемпотентно добавляет опциональную колонку x_handle.
	// Для бесхемных бэкендов - no-op.
	UpgradeSchema(ctx context.Context) error
}
