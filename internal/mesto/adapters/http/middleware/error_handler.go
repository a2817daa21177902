package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"mesto/internal/mesto/adapters/http/dto"
	"mesto/internal/mesto/domain/apperr"
	"mesto/pkg/logger"
)

// Константы для логирования.
const (
	LogInternalError  = "internal server error"
	LogClientError    = "request rejected"
	LogFailedResponse = "failed to send error response"
)

// ResolveError приводит любую ошибку к apperr.Error.
// Ошибки fiber вне apperr.Error сохраняют свой статус через соответствующий вид.
func ResolveError(err error) *apperr.Error {
	resolved := apperr.From(err)
	if resolved.Kind != apperr.KindInternal {
		return resolved
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == http.StatusNotFound, fiberErr.Code == http.StatusMethodNotAllowed:
			return apperr.NotFound(apperr.MsgRouteNotFound, err)
		case fiberErr.Code == http.StatusUnauthorized:
			return apperr.Auth(apperr.MsgAuthRequired, err)
		case fiberErr.Code < http.StatusInternalServerError:
			return apperr.BadInput(apperr.MsgInvalidRequest, err)
		}
	}

	return resolved
}

// ErrorHandler - единый обработчик ошибок fiber. Пишет {message} и,
// для ошибок валидации, details. Причина внутренних ошибок только логируется.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	requestCtx := RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("path", ctx.Path()))

	appErr := ResolveError(err)
	if appErr.Kind == apperr.KindInternal {
		log.Error(requestCtx, LogInternalError, zap.Error(err))
	} else {
		log.Debug(requestCtx, LogClientError, zap.Stringer("kind", appErr.Kind), zap.Error(err))
	}

	response := dto.ErrorResponse{Message: appErr.Message}
	if appErr.Kind == apperr.KindValidation {
		response.Details = appErr.Details
	}

	if sendErr := ctx.Status(appErr.Kind.StatusCode()).JSON(response); sendErr != nil {
		log.Error(requestCtx, LogFailedResponse, zap.Error(sendErr))
		return sendErr
	}
	return nil
}

// NotFoundHandler отвечает на запросы к несуществующим маршрутам.
func NotFoundHandler(ctx fiber.Ctx) error {
	return apperr.NotFound(apperr.MsgRouteNotFound, fiber.ErrNotFound)
}
