package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mesto/internal/mesto/domain/apperr"
	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/ports/api"
	"mesto/internal/mesto/ports/repositories"
	"mesto/pkg/logger"
)

const (
	methodGetCards    = "GetCards"
	methodCreateCard  = "CreateCard"
	methodDeleteCard  = "DeleteCard"
	methodLikeCard    = "LikeCard"
	methodDislikeCard = "DislikeCard"

	msgCardCreated      = "card created"
	msgCardDeleted      = "card deleted"
	msgCardRejected     = "card data rejected"
	msgCardNotFound     = "card not found"
	msgMalformedCardID  = "malformed card id"
	msgForeignCard      = "attempt to delete another user's card"
	msgErrListingCards  = "failed to list cards"
	msgErrCreatingCard  = "failed to create card"
	msgErrFindingCard   = "failed to find card"
	msgErrDeletingCard  = "failed to delete card"
	msgErrUpdatingLikes = "failed to update likes"

	errCtxListingCards  = "listing cards"
	errCtxCreatingCard  = "creating card"
	errCtxFindingCard   = "finding card"
	errCtxDeletingCard  = "deleting card"
	errCtxUpdatingLikes = "updating likes"
)

// CardUseCaseImpl реализует интерфейс CardUseCase.
type CardUseCaseImpl struct {
	cardRepo repositories.CardRepository
}

// NewCardUseCase создает новый экземпляр сервиса карточек.
func NewCardUseCase(cardRepo repositories.CardRepository) api.CardUseCase {
	return &CardUseCaseImpl{cardRepo: cardRepo}
}

// GetCards возвращает все карточки.
func (c *CardUseCaseImpl) GetCards(ctx context.Context) ([]*entities.Card, error) {
	cards, err := c.cardRepo.FindAll(ctx)
	if err != nil {
		logger.Log(ctx).Error(ctx, msgErrListingCards, zap.String("method", methodGetCards), zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxListingCards, err))
	}
	return cards, nil
}

// CreateCard создает карточку от имени владельца сессии.
func (c *CardUseCaseImpl) CreateCard(ctx context.Context, identity *entities.Identity, name, link string) (*entities.Card, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateCard), zap.String("userID", identity.ID))

	card, err := c.cardRepo.Create(ctx, &entities.Card{
		Name:    name,
		Link:    link,
		OwnerID: identity.ID,
	})
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCardData) {
			log.Debug(ctx, msgCardRejected, zap.Error(err))
			return nil, apperr.Validation(apperr.MsgBadCardData, err)
		}
		log.Error(ctx, msgErrCreatingCard, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxCreatingCard, err))
	}

	log.Info(ctx, msgCardCreated, zap.String("cardID", card.ID))
	return card, nil
}

// DeleteCard удаляет карточку, если ее владелец - пользователь сессии.
func (c *CardUseCaseImpl) DeleteCard(ctx context.Context, identity *entities.Identity, cardID string) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteCard),
		zap.String("userID", identity.ID),
		zap.String("cardID", cardID),
	)

	card, err := c.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, entities.ErrCardNotFound) || errors.Is(err, entities.ErrInvalidCardID) {
			log.Debug(ctx, msgCardNotFound, zap.Error(err))
			return apperr.NotFound(apperr.MsgCardNotFound, err)
		}
		log.Error(ctx, msgErrFindingCard, zap.Error(err))
		return apperr.Internal(fmt.Errorf("%s: %w", errCtxFindingCard, err))
	}

	if !card.IsOwnedBy(identity.ID) {
		log.Warn(ctx, msgForeignCard, zap.String("ownerID", card.OwnerID))
		return apperr.Access(apperr.MsgForeignCardDelete, entities.ErrNotCardOwner)
	}

	if err := c.cardRepo.Delete(ctx, cardID, identity.ID); err != nil {
		if errors.Is(err, entities.ErrCardNotFound) {
			log.Debug(ctx, msgCardNotFound)
			return apperr.NotFound(apperr.MsgCardNotFound, err)
		}
		log.Error(ctx, msgErrDeletingCard, zap.Error(err))
		return apperr.Internal(fmt.Errorf("%s: %w", errCtxDeletingCard, err))
	}

	log.Info(ctx, msgCardDeleted)
	return nil
}

// LikeCard добавляет лайк владельца сессии. Повторный лайк ничего не меняет.
func (c *CardUseCaseImpl) LikeCard(ctx context.Context, identity *entities.Identity, cardID string) (*entities.Card, error) {
	card, err := c.cardRepo.AddLike(ctx, cardID, identity.ID)
	if err != nil {
		return nil, c.mapLikeError(ctx, methodLikeCard, err, apperr.MsgBadLikeData)
	}
	return card, nil
}

// DislikeCard снимает лайк владельца сессии.
func (c *CardUseCaseImpl) DislikeCard(ctx context.Context, identity *entities.Identity, cardID string) (*entities.Card, error) {
	card, err := c.cardRepo.RemoveLike(ctx, cardID, identity.ID)
	if err != nil {
		return nil, c.mapLikeError(ctx, methodDislikeCard, err, apperr.MsgBadDislikeData)
	}
	return card, nil
}

func (c *CardUseCaseImpl) mapLikeError(ctx context.Context, method string, err error, badInputMessage string) error {
	log := logger.Log(ctx).With(zap.String("method", method))

	switch {
	case errors.Is(err, entities.ErrInvalidCardID):
		log.Debug(ctx, msgMalformedCardID)
		return apperr.BadInput(badInputMessage, err)
	case errors.Is(err, entities.ErrCardNotFound):
		log.Debug(ctx, msgCardNotFound)
		return apperr.NotFound(apperr.MsgLikeCardNotFound, err)
	}
	log.Error(ctx, msgErrUpdatingLikes, zap.Error(err))
	return apperr.Internal(fmt.Errorf("%s: %w", errCtxUpdatingLikes, err))
}
