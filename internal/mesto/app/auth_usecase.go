// Package app содержит сценарии использования сервиса Mesto.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mesto/internal/mesto/domain/apperr"
	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/domain/services"
	"mesto/internal/mesto/ports/api"
	"mesto/internal/mesto/ports/repositories"
	svc "mesto/internal/mesto/ports/services"
	"mesto/pkg/logger"
)

const (
	methodRegister     = "Register"
	methodLogin        = "Login"
	methodAuthenticate = "Authenticate"

	msgStartRegistration   = "starting user registration"
	msgInvalidPassword     = "invalid password"
	msgEmailExists         = "user with this email already exists"
	msgInvalidUserData     = "user data rejected by store"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgMissingToken        = "request without session token"
	msgInvalidToken        = "session token rejected"

	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate session token"

	errCtxHashingPassword   = "hashing password"
	errCtxCreatingUser      = "creating user"
	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
	errCtxGeneratingToken   = "generating token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает пользователя. Незаполненные поля профиля получают значения по умолчанию.
func (a *AuthUseCaseImpl) Register(ctx context.Context, user *entities.User, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", user.Email))
	log.Debug(ctx, msgStartRegistration)

	newUser := *user
	newUser.ApplyDefaults()

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			log.Debug(ctx, msgInvalidPassword, zap.Error(err))
			return nil, apperr.Validation(apperr.MsgBadSignupData, err)
		}
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxHashingPassword, err))
	}
	newUser.PasswordHash = hashedPassword

	created, err := a.userRepo.Create(ctx, &newUser)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrEmailAlreadyExists):
			log.Debug(ctx, msgEmailExists)
			return nil, apperr.Duplicate(apperr.MsgEmailExists, err)
		case errors.Is(err, entities.ErrInvalidUserData):
			log.Debug(ctx, msgInvalidUserData, zap.Error(err))
			return nil, apperr.Validation(apperr.MsgBadSignupData, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxCreatingUser, err))
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID))
	return created.Public(), nil
}

// Login проверяет почту и пароль и выпускает токен сессии.
// Неизвестная почта и неверный пароль дают одну и ту же ошибку.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*api.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, apperr.Auth(apperr.MsgWrongCredentials, err)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxFindingUser, err))
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil && !errors.Is(err, services.ErrInvalidPassword) {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxVerifyingPassword, err))
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, apperr.Auth(apperr.MsgWrongCredentials, services.ErrInvalidPassword)
	}

	token, expiresAt, err := a.tokenSvc.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxGeneratingToken, err))
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return &api.Session{
		User:      user.Public(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate проверяет токен сессии и возвращает его владельца.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) (*entities.Identity, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	if token == "" {
		log.Debug(ctx, msgMissingToken)
		return nil, apperr.Auth(apperr.MsgAuthRequired, services.ErrInvalidJWTToken)
	}

	identity, err := a.tokenSvc.ValidateToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, apperr.Auth(apperr.MsgAuthRequired, err)
	}

	return identity, nil
}
