package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/internal/mesto/ports/api"
	"mesto/pkg/logger"
)

// CookieName - имя cookie с токеном сессии.
const CookieName = "jwt"

// LogAuthMiddleware - сообщение лога проверки сессии.
const LogAuthMiddleware = "auth middleware"

// NewAuthGuard создает проверку, пропускающую только запросы
// с действительным токеном в cookie jwt.
func NewAuthGuard(authUseCase api.AuthUseCase) Guard {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		logger.Log(requestCtx).Debug(requestCtx, LogAuthMiddleware, zap.String("middleware", "auth"))

		identity, err := authUseCase.Authenticate(requestCtx, ctx.Cookies(CookieName))
		if err != nil {
			return err
		}

		ctx.Locals(identityKey, identity)
		return nil
	}
}
