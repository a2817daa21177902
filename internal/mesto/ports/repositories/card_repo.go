package repositories

import (
	"context"

	"mesto/internal/mesto/domain/entities"
)

// CardRepository определяет операции хранения карточек.
type CardRepository interface {
	Create(ctx context.Context, card *entities.Card) (*entities.Card, error)

	FindAll(ctx context.Context) ([]*entities.Card, error)

	FindByID(ctx context.Context, id string) (*entities.Card, error)

	// Delete удаляет карточку, только если ее владелец ownerID.
	Delete(ctx context.Context, id, ownerID string) error

	// AddLike идемпотентно добавляет userID в лайки карточки.
	AddLike(ctx context.Context, cardID, userID string) (*entities.Card, error)

	// RemoveLike идемпотентно убирает userID из лайков карточки.
	RemoveLike(ctx context.Context, cardID, userID string) (*entities.Card, error)
}
