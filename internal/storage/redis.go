package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_guardian/internal/models"
)

// RedisStorage хранит коллекцию жалоб в Redis под одним ключом
type RedisStorage struct {
	redisClient *redis.Client
}

// NewRedisStorage создает Redis-хранилище поверх готового клиента
func NewRedisStorage(redisClient *redis.Client) *RedisStorage {
	return &RedisStorage{
		redisClient: redisClient,
	}
}

// LoadReports читает коллекцию жалоб из Redis
func (s *RedisStorage) LoadReports(ctx context.Context) ([]*models.Report, error) {
	val, err := s.redisClient.Get(ctx, ReportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report collection from redis: %w", err)
	}

	reports := make([]*models.Report, 0)
	if err := json.Unmarshal(val, &reports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report collection: %w", err)
	}
	return reports, nil
}

// SaveReports перезаписывает коллекцию жалоб в Redis целиком.
// Без срока жизни: жалобы хранятся, пока их не перезапишут.
func (s *RedisStorage) SaveReports(ctx context.Context, reports []*models.Report) error {
	val, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to marshal report collection: %w", err)
	}

	if err := s.redisClient.Set(ctx, ReportKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set report collection in redis: %w", err)
	}
	return nil
}
