package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"mesto/internal/mesto/adapters/http/dto"
	"mesto/internal/mesto/adapters/http/middleware"
	"mesto/internal/mesto/ports/api"
)

// ParamCardID - параметр пути с идентификатором карточки.
const ParamCardID = "cardId"

// MsgCardDeleted - шаблон ответа на удаление карточки.
const MsgCardDeleted = "Карточка %s успешно удалена"

// CardHandler содержит обработчики карточек.
type CardHandler struct {
	cardUseCase api.CardUseCase
}

// NewCardHandler создает новый экземпляр обработчика карточек.
func NewCardHandler(cardUseCase api.CardUseCase) *CardHandler {
	return &CardHandler{cardUseCase: cardUseCase}
}

// GetCards возвращает все карточки.
func (h *CardHandler) GetCards(ctx fiber.Ctx) error {
	cards, err := h.cardUseCase.GetCards(middleware.RequestContext(ctx))
	if err != nil {
		return fmt.Errorf("listing cards: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewCardListResponse(cards))
}

// CreateCard создает карточку от имени владельца сессии.
func (h *CardHandler) CreateCard(ctx fiber.Ctx) error {
	req := middleware.Body[dto.CreateCardRequest](ctx)

	card, err := h.cardUseCase.CreateCard(middleware.RequestContext(ctx), middleware.Identity(ctx), req.Name, req.Link)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}
	return sendJSON(ctx, http.StatusCreated, dto.NewCardResponse(card))
}

// DeleteCard удаляет карточку владельца сессии.
func (h *CardHandler) DeleteCard(ctx fiber.Ctx) error {
	cardID := ctx.Params(ParamCardID)

	if err := h.cardUseCase.DeleteCard(middleware.RequestContext(ctx), middleware.Identity(ctx), cardID); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf(MsgCardDeleted, cardID)})
}

// LikeCard добавляет лайк владельца сессии к карточке.
func (h *CardHandler) LikeCard(ctx fiber.Ctx) error {
	card, err := h.cardUseCase.LikeCard(middleware.RequestContext(ctx), middleware.Identity(ctx), ctx.Params(ParamCardID))
	if err != nil {
		return fmt.Errorf("liking card: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewCardResponse(card))
}

// DislikeCard убирает лайк владельца сессии с карточки.
func (h *CardHandler) DislikeCard(ctx fiber.Ctx) error {
	card, err := h.cardUseCase.DislikeCard(middleware.RequestContext(ctx), middleware.Identity(ctx), ctx.Params(ParamCardID))
	if err != nil {
		return fmt.Errorf("removing like: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewCardResponse(card))
}
