package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFrozenCache создает кэш с управляемыми часами для детерминированных проверок окна
func newFrozenCache(window time.Duration, maxEntries int) (*MemoryCache, *time.Time) {
	cache := NewMemoryCache(window, maxEntries)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	return cache, &now
}

func TestMemoryCache_FirstCheckAllowed(t *testing.T) {
	// Подготовка
	cache, _ := newFrozenCache(60*time.Second, 100)
	ctx := context.Background()

	// Действие
	suppress, err := cache.ShouldSuppress(ctx, "f:a:zone")

	// Проверки
	require.NoError(t, err)
	assert.False(t, suppress)
}

func TestMemoryCache_RepeatWithinWindowSuppressed(t *testing.T) {
	// Подготовка
	cache, now := newFrozenCache(60*time.Second, 100)
	ctx := context.Background()

	_, err := cache.ShouldSuppress(ctx, "f:a:zone")
	require.NoError(t, err)

	// Действие: повтор через 30 секунд
	*now = now.Add(30 * time.Second)
	suppress, err := cache.ShouldSuppress(ctx, "f:a:zone")

	// Проверки
	require.NoError(t, err)
	assert.True(t, suppress)
}

func TestMemoryCache_RefreshOnEveryCheck(t *testing.T) {
	// Подготовка: отметка обновляется при каждой проверке, поэтому
	// серия проверок каждые 40 секунд подавляется бесконечно
	cache, now := newFrozenCache(60*time.Second, 100)
	ctx := context.Background()

	_, err := cache.ShouldSuppress(ctx, "f:a:zone")
	require.NoError(t, err)

	// Действие и проверки
	*now = now.Add(40 * time.Second)
	suppress, err := cache.ShouldSuppress(ctx, "f:a:zone")
	require.NoError(t, err)
	assert.True(t, suppress)

	// 80 секунд от первой проверки, но лишь 40 от последней - все еще подавлено
	*now = now.Add(40 * time.Second)
	suppress, err = cache.ShouldSuppress(ctx, "f:a:zone")
	require.NoError(t, err)
	assert.True(t, suppress)
}

func TestMemoryCache_AllowedAfterWindowExpires(t *testing.T) {
	// Подготовка
	cache, now := newFrozenCache(60*time.Second, 100)
	ctx := context.Background()

	_, err := cache.ShouldSuppress(ctx, "f:a:zone")
	require.NoError(t, err)

	// Действие: окно от последней отметки полностью истекло
	*now = now.Add(61 * time.Second)
	suppress, err := cache.ShouldSuppress(ctx, "f:a:zone")

	// Проверки
	require.NoError(t, err)
	assert.False(t, suppress)
}

func TestMemoryCache_IndependentKeys(t *testing.T) {
	// Подготовка
	cache, _ := newFrozenCache(60*time.Second, 100)
	ctx := context.Background()

	_, err := cache.ShouldSuppress(ctx, "f:a:zone1")
	require.NoError(t, err)

	// Действие: другой ключ не затронут
	suppress, err := cache.ShouldSuppress(ctx, "f:a:zone2")

	// Проверки
	require.NoError(t, err)
	assert.False(t, suppress)
}

func TestMemoryCache_EvictsOldestBeyondLimit(t *testing.T) {
	// Подготовка: лимит в две записи
	cache, now := newFrozenCache(60*time.Second, 2)
	ctx := context.Background()

	_, err := cache.ShouldSuppress(ctx, "oldest")
	require.NoError(t, err)
	*now = now.Add(time.Second)
	_, err = cache.ShouldSuppress(ctx, "middle")
	require.NoError(t, err)
	*now = now.Add(time.Second)

	// Действие: третий ключ вытесняет самый старый
	_, err = cache.ShouldSuppress(ctx, "newest")
	require.NoError(t, err)

	// Проверки
	assert.Len(t, cache.lastSeen, 2)
	_, hasOldest := cache.lastSeen["oldest"]
	assert.False(t, hasOldest)

	// Вытесненный ключ проверяется заново как впервые увиденный
	suppress, err := cache.ShouldSuppress(ctx, "oldest")
	require.NoError(t, err)
	assert.False(t, suppress)
}
