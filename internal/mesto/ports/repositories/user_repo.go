// Package repositories определяет интерфейсы хранилища пользователей и карточек.
package repositories

import (
	"context"

	"mesto/internal/mesto/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
// Методы чтения, кроме FindByEmailWithPassword, не возвращают хэш пароля.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindAll(ctx context.Context) ([]*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByEmailWithPassword(ctx context.Context, email string) (*entities.User, error)

	UpdateProfile(ctx context.Context, id string, update entities.ProfileUpdate) (*entities.User, error)
}
