package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesto/internal/mesto/app"
	"mesto/internal/mesto/domain/apperr"
	"mesto/internal/mesto/domain/entities"
)

func TestUserUseCase_GetUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		users := []*entities.User{{ID: testUserID}, {ID: otherUserID}}
		repo.On("FindAll", ctx).Return(users, nil)

		got, err := app.NewUserUseCase(repo, userCache).GetUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("store failure", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		repo.On("FindAll", ctx).Return(nil, errors.New("boom"))

		_, err := app.NewUserUseCase(repo, userCache).GetUsers(ctx)
		assert.Equal(t, apperr.KindInternal, apperr.From(err).Kind)
	})
}

func TestUserUseCase_GetUserByID(t *testing.T) {
	ctx := context.Background()
	user := &entities.User{ID: testUserID, Name: "Жак", Email: testEmail}

	t.Run("cache hit skips store", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		userCache.On("Get", ctx, testUserID).Return(user, true)

		got, err := app.NewUserUseCase(repo, userCache).GetUserByID(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		userCache.On("Get", ctx, testUserID).Return(nil, false)
		repo.On("FindByID", ctx, testUserID).Return(user, nil)
		userCache.On("Set", ctx, user).Return()

		got, err := app.NewUserUseCase(repo, userCache).GetUserByID(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
		userCache.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		userCache.On("Get", ctx, testUserID).Return(nil, false)
		repo.On("FindByID", ctx, testUserID).Return(nil, entities.ErrUserNotFound)

		_, err := app.NewUserUseCase(repo, userCache).GetUserByID(ctx, testUserID)
		appErr := apperr.From(err)
		assert.Equal(t, apperr.KindNotFound, appErr.Kind)
		assert.Equal(t, apperr.MsgUserNotFound, appErr.Message)
		userCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		userCache.On("Get", ctx, "123").Return(nil, false)
		repo.On("FindByID", ctx, "123").Return(nil, entities.ErrInvalidUserID)

		_, err := app.NewUserUseCase(repo, userCache).GetUserByID(ctx, "123")
		appErr := apperr.From(err)
		assert.Equal(t, apperr.KindBadInput, appErr.Kind)
		assert.Equal(t, apperr.MsgBadUserData, appErr.Message)
	})
}

func TestUserUseCase_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	identity := &entities.Identity{ID: testUserID, Email: testEmail}

	t.Run("looks up by session email", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		repo.On("FindByEmail", ctx, testEmail).Return(&entities.User{ID: testUserID, Email: testEmail}, nil)

		got, err := app.NewUserUseCase(repo, userCache).GetCurrentUser(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, testEmail, got.Email)
	})

	t.Run("deleted account", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		repo.On("FindByEmail", ctx, testEmail).Return(nil, entities.ErrUserNotFound)

		_, err := app.NewUserUseCase(repo, userCache).GetCurrentUser(ctx, identity)
		assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	})
}

func TestUserUseCase_EditUserInfo(t *testing.T) {
	ctx := context.Background()
	identity := &entities.Identity{ID: testUserID, Email: testEmail}
	name, about := "Новое имя", "Новое описание"
	update := entities.ProfileUpdate{Name: &name, About: &about}

	t.Run("updates and invalidates cache", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		updated := &entities.User{ID: testUserID, Name: name, About: about}
		repo.On("UpdateProfile", ctx, testUserID, update).Return(updated, nil)
		userCache.On("Invalidate", ctx, updated).Return()

		got, err := app.NewUserUseCase(repo, userCache).EditUserInfo(ctx, identity, name, about)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		userCache.AssertExpectations(t)
	})

	t.Run("constraint violation", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		repo.On("UpdateProfile", ctx, testUserID, update).Return(nil, entities.ErrInvalidUserData)

		_, err := app.NewUserUseCase(repo, userCache).EditUserInfo(ctx, identity, name, about)
		appErr := apperr.From(err)
		assert.Equal(t, apperr.KindValidation, appErr.Kind)
		assert.Equal(t, apperr.MsgBadProfileData, appErr.Message)
		userCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		repo.On("UpdateProfile", ctx, testUserID, update).Return(nil, entities.ErrUserNotFound)

		_, err := app.NewUserUseCase(repo, userCache).EditUserInfo(ctx, identity, name, about)
		assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
	})
}

func TestUserUseCase_EditAvatar(t *testing.T) {
	ctx := context.Background()
	identity := &entities.Identity{ID: testUserID, Email: testEmail}
	avatar := "https://example.com/avatar.png"

	t.Run("success", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		updated := &entities.User{ID: testUserID, Avatar: avatar}
		repo.On("UpdateProfile", ctx, testUserID, entities.ProfileUpdate{Avatar: &avatar}).Return(updated, nil)
		userCache.On("Invalidate", ctx, updated).Return()

		got, err := app.NewUserUseCase(repo, userCache).EditAvatar(ctx, identity, avatar)
		require.NoError(t, err)
		assert.Equal(t, avatar, got.Avatar)
	})

	t.Run("rejected avatar", func(t *testing.T) {
		repo, userCache := new(mockUserRepository), new(mockUserCache)
		repo.On("UpdateProfile", ctx, testUserID, mock.Anything).Return(nil, entities.ErrInvalidUserData)

		_, err := app.NewUserUseCase(repo, userCache).EditAvatar(ctx, identity, avatar)
		assert.Equal(t, apperr.MsgBadAvatarData, apperr.From(err).Message)
	})
}
