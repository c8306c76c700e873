package storage

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"monad-feedback/internal/feedback"
	"monad-feedback/internal/history"
	myErr "monad-feedback/internal/types/errors"
)

// Ключи совпадают с ключами KV-бэкенда остального стека проекта.
const (
	feedbackKey = "monad-feedback"
	historyKey  = "monad-feedback-history"
)

// RedisStorage - key-value бэкенд: обе коллекции хранятся как списки
// JSON-документов под фиксированными ключами. Пара пишется двумя RPUSH
// без транзакции, окно частичного сбоя допустимо для этого бэкенда.
type RedisStorage struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewRedisStorage(redisClient *redis.Client, logger *zap.SugaredLogger) *RedisStorage {
	return &RedisStorage{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (redisStorage *RedisStorage) AppendPair(
	ctx context.Context,
	fb feedback.Record,
	h history.Record,
) error {
	if err := redisStorage.AppendFeedback(ctx, fb); err != nil {
		return err
	}

	if err := redisStorage.AppendHistory(ctx, h); err != nil {
		redisStorage.Logger.Errorw(
			"History append failed after feedback append, pair is orphaned",
			"feedbackID", fb.ID,
		)

		return err
	}

	return nil
}

func (redisStorage *RedisStorage) AppendFeedback(ctx context.Context, fb feedback.Record) error {
	return redisStorage.push(ctx, feedbackKey, fb, fb.ID)
}

func (redisStorage *RedisStorage) AppendHistory(ctx context.Context, h history.Record) error {
	return redisStorage.push(ctx, historyKey, h, h.FeedbackID)
}

func (redisStorage *RedisStorage) ListFeedback(ctx context.Context) ([]feedback.Record, error) {
	raw, err := redisStorage.listRaw(ctx, feedbackKey)
	if err != nil {
		return nil, err
	}

	records := make([]feedback.Record, 0, len(raw))
	for _, item := range raw {
		var record feedback.Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			redisStorage.Logger.Error("Failed to decode feedback record from Redis", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AnonymizedTimestamp.After(records[j].AnonymizedTimestamp)
	})

	return records, nil
}

func (redisStorage *RedisStorage) ListHistory(ctx context.Context) ([]history.Record, error) {
	raw, err := redisStorage.listRaw(ctx, historyKey)
	if err != nil {
		return nil, err
	}

	records := make([]history.Record, 0, len(raw))
	for _, item := range raw {
		var record history.Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			redisStorage.Logger.Error("Failed to decode history record from Redis", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AnonymizedTimestamp.After(records[j].AnonymizedTimestamp)
	})

	return records, nil
}

// UpgradeSchema - бэкенд бесхемный, обновлять нечего
func (redisStorage *RedisStorage) UpgradeSchema(_ context.Context) error {
	return nil
}

func (redisStorage *RedisStorage) push(ctx context.Context, key string, value interface{}, id string) error {
	data, err := json.Marshal(value)
	if err != nil {
		redisStorage.Logger.Error(
			"Failed to encode record to JSON",
			zap.Error(err),
			zap.String("feedbackID", id),
		)

		return myErr.ErrDBInternal
	}

	if err := redisStorage.RedisClient.RPush(ctx, key, data).Err(); err != nil {
		redisStorage.Logger.Error(
			"Failed to push record to Redis",
			zap.Error(err),
			zap.String("key", key),
			zap.String("feedbackID", id),
		)

		return myErr.ErrDBInternal
	}

	return nil
}

func (redisStorage *RedisStorage) listRaw(ctx context.Context, key string) ([]string, error) {
	raw, err := redisStorage.RedisClient.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		redisStorage.Logger.Error(
			"Failed to read records from Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return nil, myErr.ErrDBInternal
	}

	return raw, nil
}
