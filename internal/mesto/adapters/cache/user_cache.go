package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/ports/cache"
	"mesto/pkg/logger"
)

// userKeyPrefix содержит версию схемы: при изменении формата записи старые ключи не читаются.
const userKeyPrefix = "user:v1:"

const (
	logUserCacheHit     = "user cache hit"
	logUserCacheMiss    = "user cache miss"
	logUserCacheFailure = "user cache unavailable"
	logUserCacheDecode  = "failed to decode cached user"
	logUserCacheStale   = "dropped stale user cache entry"
)

type cachedUser struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCache хранит публичные записи пользователей в строковом кэше в виде JSON.
type UserCache struct {
	store cache.Cache
	ttl   time.Duration
}

// NewUserCache создает кэш профилей с заданным временем жизни записей.
func NewUserCache(store cache.Cache, ttl time.Duration) cache.UserCache {
	return &UserCache{store: store, ttl: ttl}
}

// UserKey возвращает ключ записи пользователя.
func UserKey(id string) string {
	return userKeyPrefix + id
}

func fenceKey(id string) string {
	return UserKey(id) + ":updated"
}

// Get возвращает пользователя из кэша. Сбои кэша считаются промахом.
func (c *UserCache) Get(ctx context.Context, id string) (*entities.User, bool) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("userID", id))

	raw, err := c.store.Get(ctx, UserKey(id))
	if err != nil {
		log.Warn(ctx, logUserCacheFailure, zap.Error(err))
		return nil, false
	}
	if raw == "" {
		log.Debug(ctx, logUserCacheMiss)
		return nil, false
	}

	var cached cachedUser
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		log.Warn(ctx, logUserCacheDecode, zap.Error(err))
		return nil, false
	}

	log.Debug(ctx, logUserCacheHit)
	return &entities.User{
		ID:        cached.ID,
		Name:      cached.Name,
		About:     cached.About,
		Avatar:    cached.Avatar,
		Email:     cached.Email,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, true
}

// Set сохраняет пользователя без хэша пароля.
func (c *UserCache) Set(ctx context.Context, user *entities.User) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("userID", user.ID))

	raw, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		About:     user.About,
		Avatar:    user.Avatar,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		log.Warn(ctx, logUserCacheFailure, zap.Error(err))
		return
	}

	key := UserKey(user.ID)
	if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil {
		log.Warn(ctx, logUserCacheFailure, zap.Error(err))
		return
	}

	// Профиль мог измениться, пока запись читалась из базы.
	fence, err := c.store.Get(ctx, fenceKey(user.ID))
	if err != nil {
		log.Warn(ctx, logUserCacheFailure, zap.Error(err))
		return
	}
	if fence == "" {
		return
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fence)
	if err != nil || user.UpdatedAt.Before(updatedAt) {
		log.Debug(ctx, logUserCacheStale)
		if err := c.store.Delete(ctx, key); err != nil {
			log.Warn(ctx, logUserCacheFailure, zap.Error(err))
		}
	}
}

// Invalidate удаляет запись пользователя после изменения профиля.
// Метка времени изменения остается в кэше, и Set не сохраняет более старые версии.
func (c *UserCache) Invalidate(ctx context.Context, user *entities.User) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDelete), zap.String("userID", user.ID))

	fence := user.UpdatedAt.UTC().Format(time.RFC3339Nano)
	if err := c.store.Set(ctx, fenceKey(user.ID), fence, c.ttl); err != nil {
		log.Warn(ctx, logUserCacheFailure, zap.Error(err))
	}
	if err := c.store.Delete(ctx, UserKey(user.ID)); err != nil {
		log.Warn(ctx, logUserCacheFailure, zap.Error(err))
	}
}
