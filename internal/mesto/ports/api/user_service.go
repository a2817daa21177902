package api

import (
	"context"

	"mesto/internal/mesto/domain/entities"
)

// UserUseCase определяет операции с профилями.
type UserUseCase interface {
	GetUsers(ctx context.Context) ([]*entities.User, error)

	GetUserByID(ctx context.Context, userID string) (*entities.User, error)

	GetCurrentUser(ctx context.Context, identity *entities.Identity) (*entities.User, error)

	EditUserInfo(ctx context.Context, identity *entities.Identity, name, about string) (*entities.User, error)

	EditAvatar(ctx context.Context, identity *entities.Identity, avatar string) (*entities.User, error)
}
