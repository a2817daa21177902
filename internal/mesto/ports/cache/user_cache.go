package cache

import (
	"context"

	"mesto/internal/mesto/domain/entities"
)

// UserCache кэширует публичные записи пользователей по идентификатору.
// Ошибки кэша не должны прерывать запрос: при промахе или сбое Get возвращает (nil, false).
type UserCache interface {
	Get(ctx context.Context, id string) (*entities.User, bool)

	Set(ctx context.Context, user *entities.User)

	// Invalidate удаляет запись после изменения профиля user.
	// Более старые версии профиля после этого в кэш не попадают.
	Invalidate(ctx context.Context, user *entities.User)
}
