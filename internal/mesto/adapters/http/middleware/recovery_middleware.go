package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/internal/mesto/domain/apperr"
	"mesto/pkg/logger"
)

// NewRecoveryMiddleware создает промежуточное ПО, превращающее панику во внутреннюю ошибку.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := RequestContext(ctx)

		defer func() {
			if r := recover(); r != nil {
				logger.Log(requestCtx).Error(requestCtx, "server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)
				err = apperr.Internal(fmt.Errorf("panic: %v", r))
			}
		}()

		return ctx.Next()
	}
}
