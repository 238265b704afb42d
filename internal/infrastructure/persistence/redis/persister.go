// Package redis provides a Redis-backed state persister for deployments that
// want store states to survive host restarts and be shared across replicas.
// Last write wins; there is no merge between writers.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Persister stores each state payload as a plain Redis string value.
type Persister struct {
	client *redis.Client
	logger *zap.Logger
}

var _ outbound.StatePersister = (*Persister)(nil)

// NewPersister connects to Redis and verifies the connection.
func NewPersister(cfg config.RedisConfig, logger *zap.Logger) (*Persister, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis state persister initialized",
		zap.String("addr", client.Options().Addr),
		zap.Int("db", cfg.Database))

	return &Persister{client: client, logger: logger}, nil
}

// Save stores the payload under key without expiration. Store states are
// long-lived documents, not cache entries.
func (p *Persister) Save(ctx context.Context, key string, data []byte) error {
	if err := p.client.Set(ctx, key, data, 0).Err(); err != nil {
		p.logger.Error("redis save failed", zap.String("key", key), zap.Error(err))
		return apperrors.NewPersistenceError("save state to redis", err)
	}
	return nil
}

// Load returns the payload stored under key.
func (p *Persister) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := p.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		p.logger.Error("redis load failed", zap.String("key", key), zap.Error(err))
		return nil, false, apperrors.NewPersistenceError("load state from redis", err)
	}
	return data, true, nil
}

// Delete removes the payload stored under key.
func (p *Persister) Delete(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		p.logger.Error("redis delete failed", zap.String("key", key), zap.Error(err))
		return apperrors.NewPersistenceError("delete state from redis", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *Persister) Close() error {
	return p.client.Close()
}
