package ratecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	"github.com/go-redis/redis/v8"
)

// RedisStore shares rate tables between replicas. Keys expire after ttl,
// which matches the freshness window checked by the service.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ portsrepo.RateCacheStore = (*RedisStore)(nil)

// NewRedisStore connects to addr and verifies the connection with PING.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, base string) (*domain.ExchangeRateSet, error) {
	payload, err := s.client.Get(ctx, keyPrefix+base).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("reading cached rates for %s: %w", base, err)
	}
	return decode(payload)
}

func (s *RedisStore) Put(ctx context.Context, set domain.ExchangeRateSet) error {
	payload, err := encode(set)
	if err != nil {
		return fmt.Errorf("encoding rates for %s: %w", set.Base, err)
	}
	if err := s.client.Set(ctx, keyPrefix+set.Base, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing cached rates for %s: %w", set.Base, err)
	}
	return nil
}
