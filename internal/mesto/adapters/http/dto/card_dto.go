package dto

import (
	"time"

	"mesto/internal/mesto/domain/entities"
)

// CreateCardRequest представляет запрос на создание карточки.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,mestourl"`
}

// CardResponse - карточка в ответе API.
type CardResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCardResponse создает ответ из сущности карточки.
func NewCardResponse(card *entities.Card) CardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

// NewCardListResponse создает ответ со списком карточек.
func NewCardListResponse(cards []*entities.Card) []CardResponse {
	response := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, NewCardResponse(card))
	}
	return response
}
