package api

import (
	"context"

	"mesto/internal/mesto/domain/entities"
)

// CardUseCase определяет операции с карточками.
type CardUseCase interface {
	GetCards(ctx context.Context) ([]*entities.Card, error)

	CreateCard(ctx context.Context, identity *entities.Identity, name, link string) (*entities.Card, error)

	DeleteCard(ctx context.Context, identity *entities.Identity, cardID string) error

	LikeCard(ctx context.Context, identity *entities.Identity, cardID string) (*entities.Card, error)

	DislikeCard(ctx context.Context, identity *entities.Identity, cardID string) (*entities.Card, error)
}
