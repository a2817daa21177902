package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// Константы для логирования.
const (
	LogRequestStarted   = "request started"
	LogRequestCompleted = "request completed"
	LogRequestFailed    = "request failed"
)

// NewLoggerMiddleware создает промежуточное ПО, которое присваивает запросу
// идентификатор и логирует его выполнение.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		requestCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		ctx.Locals(requestContextKey, requestCtx)
		ctx.Set(HeaderRequestID, requestID)

		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)
		log.Debug(requestCtx, LogRequestStarted)

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = ResolveError(err).Kind.StatusCode()
		}

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		if err != nil {
			log.Info(requestCtx, LogRequestFailed, append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, LogRequestCompleted, logFields...)
		return nil
	}
}
