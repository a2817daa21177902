// Package http собирает HTTP сервер сервиса Mesto на fiber.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"mesto/internal/mesto/adapters/http/dto"
	"mesto/internal/mesto/adapters/http/handlers"
	"mesto/internal/mesto/adapters/http/middleware"
	"mesto/internal/mesto/adapters/http/validation"
	"mesto/internal/mesto/domain/apperr"
	"mesto/internal/mesto/ports/api"
)

// ServerConfig содержит параметры HTTP сервера.
type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	SecureCookie bool
}

// UseCases - сценарии, обслуживаемые HTTP API.
type UseCases struct {
	Auth  api.AuthUseCase
	Users api.UserUseCase
	Cards api.CardUseCase
}

// NewServer создает fiber приложение с единым обработчиком ошибок и всеми маршрутами.
func NewServer(cfg ServerConfig, useCases UseCases) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "mesto",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler,
	})

	SetupRouter(app, useCases, handlers.CookieConfig{Secure: cfg.SecureCookie})
	return app
}

// SetupRouter настраивает маршрутизацию. Цепочка маршрута: проверка запроса,
// затем проверка сессии (кроме /signin и /signup), затем обработчик.
func SetupRouter(app *fiber.App, useCases UseCases, cookie handlers.CookieConfig) {
	v := validation.New()
	auth := middleware.NewAuthGuard(useCases.Auth)
	chain := middleware.Chain

	authHandler := handlers.NewAuthHandler(useCases.Auth, cookie)
	userHandler := handlers.NewUserHandler(useCases.Users)
	cardHandler := handlers.NewCardHandler(useCases.Cards)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Публичные маршруты.
	app.Post("/signup", chain(authHandler.Signup,
		middleware.ValidateBody[dto.SignupRequest](v, apperr.MsgBadSignupData)))
	app.Post("/signin", chain(authHandler.Signin,
		middleware.ValidateBody[dto.SigninRequest](v, apperr.MsgInvalidRequest)))
	app.Post("/signout", chain(authHandler.Signout, auth))

	users := app.Group("/users")
	users.Get("/", chain(userHandler.GetUsers, auth))
	users.Get("/me", chain(userHandler.GetCurrentUser, auth))
	users.Patch("/me", chain(userHandler.EditUserInfo,
		middleware.ValidateBody[dto.UpdateProfileRequest](v, apperr.MsgBadProfileData), auth))
	users.Patch("/me/avatar", chain(userHandler.EditAvatar,
		middleware.ValidateBody[dto.UpdateAvatarRequest](v, apperr.MsgBadAvatarData), auth))
	users.Get("/:"+handlers.ParamUserID, chain(userHandler.GetUserByID,
		middleware.ValidateObjectID(v, handlers.ParamUserID, apperr.MsgBadUserData), auth))

	cards := app.Group("/cards")
	cards.Get("/", chain(cardHandler.GetCards, auth))
	cards.Post("/", chain(cardHandler.CreateCard,
		middleware.ValidateBody[dto.CreateCardRequest](v, apperr.MsgBadCardData), auth))
	cards.Delete("/:"+handlers.ParamCardID, chain(cardHandler.DeleteCard,
		middleware.ValidateObjectID(v, handlers.ParamCardID, apperr.MsgInvalidRequest), auth))
	cards.Put("/:"+handlers.ParamCardID+"/likes", chain(cardHandler.LikeCard,
		middleware.ValidateObjectID(v, handlers.ParamCardID, apperr.MsgBadLikeData), auth))
	cards.Delete("/:"+handlers.ParamCardID+"/likes", chain(cardHandler.DislikeCard,
		middleware.ValidateObjectID(v, handlers.ParamCardID, apperr.MsgBadDislikeData), auth))

	// Обработчик для несуществующих маршрутов.
	app.Use(middleware.NotFoundHandler)
}
