package entities

import (
	"errors"
	"time"
)

// Ошибки домена карточек.
var (
	ErrCardNotFound    = errors.New("card not found")
	ErrInvalidCardID   = errors.New("invalid card id")
	ErrInvalidCardData = errors.New("card data violates schema constraints")
	ErrNotCardOwner    = errors.New("card belongs to another user")
)

// Card - карточка с фотографией.
type Card struct {
	ID        string
	Name      string
	Link      string
	OwnerID   string
	Likes     []string
	CreatedAt time.Time
}

// IsOwnedBy сообщает, создана ли карточка указанным пользователем.
func (c *Card) IsOwnedBy(userID string) bool {
	return c.OwnerID == userID
}
