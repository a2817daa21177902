// Package handlers содержит HTTP обработчики сервиса Mesto.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"mesto/internal/mesto/adapters/http/dto"
	"mesto/internal/mesto/adapters/http/middleware"
	"mesto/internal/mesto/domain/entities"
	"mesto/internal/mesto/ports/api"
	"mesto/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignup  = "auth handler: signup"
	LogHandlerSignin  = "auth handler: signin"
	LogHandlerSignout = "auth handler: signout"

	MsgSignedOut = "Выход выполнен"
)

// CookieConfig задает параметры cookie с токеном сессии.
type CookieConfig struct {
	Secure bool
}

// AuthHandler содержит обработчики регистрации и входа.
type AuthHandler struct {
	authUseCase api.AuthUseCase
	cookie      CookieConfig
}

// NewAuthHandler создает новый экземпляр обработчика авторизации.
func NewAuthHandler(authUseCase api.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookie:      cookie,
	}
}

// Signup регистрирует пользователя и возвращает его публичные поля.
func (h *AuthHandler) Signup(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSignup)

	req := middleware.Body[dto.SignupRequest](ctx)
	user, err := h.authUseCase.Register(requestCtx, &entities.User{
		Name:   req.Name,
		About:  req.About,
		Avatar: req.Avatar,
		Email:  req.Email,
	}, req.Password)
	if err != nil {
		return fmt.Errorf("registering user: %w", err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewUserResponse(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Signin проверяет учетные данные и устанавливает cookie с токеном сессии.
func (h *AuthHandler) Signin(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSignin)

	req := middleware.Body[dto.SigninRequest](ctx)
	session, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	if err := ctx.Status(http.StatusOK).JSON(dto.SigninResponse{
		Data: dto.SessionData{Email: session.User.Email, ID: session.User.ID},
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Signout удаляет cookie с токеном сессии.
func (h *AuthHandler) Signout(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSignout)

	ctx.Cookie(&fiber.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{Message: MsgSignedOut}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
