package dedup

import (
	"context"
	"sync"
	"time"
)

// Cache - кэш подавления повторных уведомлений с фиксированным окном охлаждения
type Cache interface {
	// ShouldSuppress возвращает true, если ключ уже встречался внутри окна.
	// Отметка времени ключа обновляется при каждой проверке независимо от результата.
	ShouldSuppress(ctx context.Context, key string) (bool, error)
}

// MemoryCache - внутрипроцессная реализация Cache с ограничением размера.
// При превышении maxEntries вытесняются самые старые записи,
// чтобы кэш не рос бесконечно в долгоживущих сессиях.
type MemoryCache struct {
	mu         sync.Mutex
	window     time.Duration
	maxEntries int
	lastSeen   map[string]time.Time
	now        func() time.Time
}

// NewMemoryCache создает кэш дедупликации с указанным окном и лимитом записей
func NewMemoryCache(window time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		window:     window,
		maxEntries: maxEntries,
		lastSeen:   make(map[string]time.Time),
		now:        time.Now,
	}
}

// ShouldSuppress проверяет ключ против окна охлаждения
func (c *MemoryCache) ShouldSuppress(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	seen, ok := c.lastSeen[key]
	suppress := ok && now.Sub(seen) < c.window

	// Отметка обновляется всегда, в том числе для подавленных повторов
	c.lastSeen[key] = now

	if len(c.lastSeen) > c.maxEntries {
		c.evictOldest()
	}
	return suppress, nil
}

// evictOldest удаляет самые старые записи, пока размер не вернется в лимит.
// Вызывается под мьютексом.
func (c *MemoryCache) evictOldest() {
	for len(c.lastSeen) > c.maxEntries {
		var oldestKey string
		var oldest time.Time
		first := true
		for key, ts := range c.lastSeen {
			if first || ts.Before(oldest) {
				oldestKey = key
				oldest = ts
				first = false
			}
		}
		delete(c.lastSeen, oldestKey)
	}
}
