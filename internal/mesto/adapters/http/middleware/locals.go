// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"mesto/internal/mesto/domain/entities"
)

type localKey int

const (
	requestContextKey localKey = iota
	identityKey
	bodyKey
)

// RequestContext возвращает контекст запроса с идентификатором запроса.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(requestContextKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// Identity возвращает владельца сессии, установленного NewAuthGuard.
func Identity(ctx fiber.Ctx) *entities.Identity {
	identity, _ := ctx.Locals(identityKey).(*entities.Identity)
	return identity
}

// Body возвращает тело запроса, проверенное ValidateBody.
func Body[T any](ctx fiber.Ctx) *T {
	body, _ := ctx.Locals(bodyKey).(*T)
	return body
}
