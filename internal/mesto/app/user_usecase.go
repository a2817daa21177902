package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mesto/internal/mesto/domain/apperr"
	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/ports/api"
	"mesto/internal/mesto/ports/cache"
	"mesto/internal/mesto/ports/repositories"
	"mesto/pkg/logger"
)

const (
	methodGetUsers       = "GetUsers"
	methodGetUserByID    = "GetUserByID"
	methodGetCurrentUser = "GetCurrentUser"
	methodEditUserInfo   = "EditUserInfo"
	methodEditAvatar     = "EditAvatar"

	msgUserFromCache   = "user served from cache"
	msgUserNotFound    = "user not found"
	msgMalformedUserID = "malformed user id"
	msgProfileUpdated  = "user profile updated"
	msgProfileRejected = "profile update rejected"

	msgErrListingUsers = "failed to list users"
	msgErrGettingUser  = "failed to get user"
	msgErrUpdatingUser = "failed to update user"
	errCtxListingUsers = "listing users"
	errCtxGettingUser  = "getting user"
	errCtxUpdatingUser = "updating user"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo  repositories.UserRepository
	userCache cache.UserCache
}

// NewUserUseCase создает новый экземпляр сервиса профилей.
func NewUserUseCase(userRepo repositories.UserRepository, userCache cache.UserCache) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:  userRepo,
		userCache: userCache,
	}
}

// GetUsers возвращает всех пользователей.
func (u *UserUseCaseImpl) GetUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		logger.Log(ctx).Error(ctx, msgErrListingUsers, zap.String("method", methodGetUsers), zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxListingUsers, err))
	}
	return users, nil
}

// GetUserByID возвращает пользователя по идентификатору, сначала проверяя кэш.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.String("userID", userID))

	if user, ok := u.userCache.Get(ctx, userID); ok {
		log.Debug(ctx, msgUserFromCache)
		return user, nil
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, u.mapLookupError(ctx, log, err)
	}

	u.userCache.Set(ctx, user)
	return user, nil
}

// GetCurrentUser возвращает запись владельца сессии, найденную по почте.
func (u *UserUseCaseImpl) GetCurrentUser(ctx context.Context, identity *entities.Identity) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetCurrentUser), zap.String("userID", identity.ID))

	user, err := u.userRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, u.mapLookupError(ctx, log, err)
	}
	return user, nil
}

// EditUserInfo меняет имя и описание владельца сессии.
func (u *UserUseCaseImpl) EditUserInfo(ctx context.Context, identity *entities.Identity, name, about string) (*entities.User, error) {
	return u.updateProfile(ctx, methodEditUserInfo, identity, entities.ProfileUpdate{
		Name:  &name,
		About: &about,
	}, apperr.MsgBadProfileData)
}

// EditAvatar меняет аватар владельца сессии.
func (u *UserUseCaseImpl) EditAvatar(ctx context.Context, identity *entities.Identity, avatar string) (*entities.User, error) {
	return u.updateProfile(ctx, methodEditAvatar, identity, entities.ProfileUpdate{
		Avatar: &avatar,
	}, apperr.MsgBadAvatarData)
}

func (u *UserUseCaseImpl) updateProfile(
	ctx context.Context,
	method string,
	identity *entities.Identity,
	update entities.ProfileUpdate,
	invalidMessage string,
) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("userID", identity.ID))

	user, err := u.userRepo.UpdateProfile(ctx, identity.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidUserData), errors.Is(err, entities.ErrInvalidUserID):
			log.Debug(ctx, msgProfileRejected, zap.Error(err))
			return nil, apperr.Validation(invalidMessage, err)
		case errors.Is(err, entities.ErrUserNotFound):
			log.Debug(ctx, msgUserNotFound)
			return nil, apperr.NotFound(apperr.MsgUserNotFound, err)
		}
		log.Error(ctx, msgErrUpdatingUser, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxUpdatingUser, err))
	}

	u.userCache.Invalidate(ctx, user)
	log.Info(ctx, msgProfileUpdated)
	return user, nil
}

func (u *UserUseCaseImpl) mapLookupError(ctx context.Context, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, entities.ErrInvalidUserID):
		log.Debug(ctx, msgMalformedUserID)
		return apperr.BadInput(apperr.MsgBadUserData, err)
	case errors.Is(err, entities.ErrUserNotFound):
		log.Debug(ctx, msgUserNotFound)
		return apperr.NotFound(apperr.MsgUserNotFound, err)
	}
	log.Error(ctx, msgErrGettingUser, zap.Error(err))
	return apperr.Internal(fmt.Errorf("%s: %w", errCtxGettingUser, err))
}
