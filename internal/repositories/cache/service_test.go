package cache

import (
	"context"
	"testing"
	"time"

	"bankagent/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheService(client, time.Minute), mr
}

func TestCacheService_Bank(t *testing.T) {
	svc, mr := newTestCache(t)
	ctx := context.Background()

	bank := &models.Bank{
		ID:    7,
		Name:  "First Bank",
		UUID:  uuid.MustParse("5b1c9c3e-2f7a-4a55-8d0e-7f2b3c4d5e6f"),
		Token: "s3cret",
		URL:   "http://bank.local/api/",
	}

	missing, err := svc.GetBank(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, svc.CacheBank(ctx, bank))
	assert.True(t, mr.Exists("bank:id:7"))
	assert.Equal(t, time.Minute, mr.TTL("bank:id:7"))

	cached, err := svc.GetBank(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, bank.UUID, cached.UUID)
	assert.Equal(t, "s3cret", cached.Token)
	assert.Equal(t, bank.URL, cached.URL)

	require.NoError(t, svc.InvalidateBank(ctx, 7))
	assert.False(t, mr.Exists("bank:id:7"))
}

func TestCacheService_CorruptEntry(t *testing.T) {
	svc, mr := newTestCache(t)
	require.NoError(t, mr.Set("bank:id:1", "{not json"))

	bank, err := svc.GetBank(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, bank)
}

func TestCacheService_HealthCheck(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewCacheService(client, time.Minute)

	assert.NoError(t, svc.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, svc.HealthCheck(context.Background()))
}
