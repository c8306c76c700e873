package paymentgate

import (
	"context"
	"errors"
	"strings"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const hasPaidKeyPrefix = "haspaid:"

// CachedGate - кэширует положительные ответы hasPaid в Redis.
// Оплата необратима, поэтому ключ живет без TTL; отрицательные ответы
// не кэшируются, чтобы свежий платеж был виден сразу.
type CachedGate struct {
	Gate        Gate
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewCachedGate(gate Gate, redisClient *redis.Client, logger *zap.SugaredLogger) *CachedGate {
	return &CachedGate{
		Gate:        gate,
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (cachedGate *CachedGate) HasPaid(ctx context.Context, walletAddress string) (bool, error) {
	key := hasPaidKeyPrefix + strings.ToLower(walletAddress)

	cached, err := cachedGate.RedisClient.Get(ctx, key).Result()
	if err == nil && cached == "1" {
		return true, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		// Кэш недоступен - идем напрямую в контракт
		cachedGate.Logger.Warnf("hasPaid cache lookup failed: %v", err)
	}

	paid, err := cachedGate.Gate.HasPaid(ctx, walletAddress)
	if err != nil {
		return false, err
	}

	if paid {
		if err := cachedGate.RedisClient.Set(ctx, key, "1", 0).Err(); err != nil {
			cachedGate.Logger.Warnf("Failed to cache hasPaid result: %v", err)
		}
	}

	return paid, nil
}

func (cachedGate *CachedGate) Fee() string {
	return cachedGate.Gate.Fee()
}
