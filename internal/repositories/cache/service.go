package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bankagent/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes the value at key into dest. A missing key is (false, nil).
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Bank caching
func (s *CacheService) CacheBank(ctx context.Context, bank *models.Bank) error {
	if bank == nil {
		return errors.New("cannot cache nil bank")
	}
	return s.Set(ctx, s.GenerateKey("bank", "id", bank.ID), bank)
}

// GetBank returns the cached bank, or nil when it is not cached.
func (s *CacheService) GetBank(ctx context.Context, id uint) (*models.Bank, error) {
	var bank models.Bank
	found, err := s.Get(ctx, s.GenerateKey("bank", "id", id), &bank)
	if err != nil || !found {
		return nil, err
	}
	return &bank, nil
}

func (s *CacheService) InvalidateBank(ctx context.Context, id uint) error {
	return s.Delete(ctx, s.GenerateKey("bank", "id", id))
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
