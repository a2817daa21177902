package cache

import (
	"context"
	"time"

	"mesto/internal/mesto/ports/cache"
)

// NoopCache - кэш, который ничего не хранит. Используется, когда Redis отключен.
type NoopCache struct{}

// NewNoopCache создает пустой кэш.
func NewNoopCache() cache.Cache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) (string, error) { return "", nil }

func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }

func (NoopCache) Delete(context.Context, string) error { return nil }

func (NoopCache) Close() error { return nil }
