package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"mesto/internal/mesto/ports/cache"
	"mesto/internal/mesto/resilience"
	"mesto/pkg/logger"
)

const (
	logPendingDelete = "cache delete failed, key kept pending"
	logPendingFlush  = "pending cache delete flushed"
)

// GuardedCache пропускает чтение и запись через Circuit Breaker,
// чтобы недоступный Redis не замедлял каждый запрос.
// Delete идет мимо Circuit Breaker: удаление нельзя пропустить.
// Ключи, которые не удалось удалить, остаются в pending, и до успешного
// удаления Get и Set по ним не обращаются к сохраненному значению.
type GuardedCache struct {
	next    cache.Cache
	breaker *resilience.CircuitBreaker

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewGuardedCache оборачивает кэш Circuit Breaker'ом.
func NewGuardedCache(next cache.Cache, breaker *resilience.CircuitBreaker) cache.Cache {
	return &GuardedCache{
		next:    next,
		breaker: breaker,
		pending: make(map[string]struct{}),
	}
}

// Get возвращает resilience.ErrCircuitOpen, пока Circuit Breaker открыт.
// Для ключа с незавершенным удалением Get сначала повторяет удаление и отвечает промахом.
func (c *GuardedCache) Get(ctx context.Context, key string) (string, error) {
	if c.isPending(key) {
		if err := c.flush(ctx, key); err != nil {
			return "", err
		}
		return "", nil
	}

	var value string
	err := c.breaker.Execute(ctx, func() error {
		var err error
		value, err = c.next.Get(ctx, key)
		return err
	})
	return value, err
}

func (c *GuardedCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if c.isPending(key) {
		if err := c.flush(ctx, key); err != nil {
			return err
		}
	}

	return c.breaker.Execute(ctx, func() error {
		return c.next.Set(ctx, key, value, ttl)
	})
}

// Delete выполняется независимо от состояния Circuit Breaker.
func (c *GuardedCache) Delete(ctx context.Context, key string) error {
	err := c.next.Delete(ctx, key)
	if err != nil {
		c.mu.Lock()
		c.pending[key] = struct{}{}
		c.mu.Unlock()
		logger.Log(ctx).Warn(ctx, logPendingDelete, zap.String("key", key), zap.Error(err))
		return err
	}

	c.mu.Lock()
	delete(c.pending, key)
	c.mu.Unlock()
	return nil
}

func (c *GuardedCache) Close() error {
	return c.next.Close()
}

func (c *GuardedCache) isPending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

func (c *GuardedCache) flush(ctx context.Context, key string) error {
	if err := c.next.Delete(ctx, key); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.pending, key)
	c.mu.Unlock()
	logger.Log(ctx).Debug(ctx, logPendingFlush, zap.String("key", key))
	return nil
}
