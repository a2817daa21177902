package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"mesto/internal/mesto/adapters/http/validation"
	"mesto/internal/mesto/domain/apperr"
)

// ValidateBody разбирает JSON тело в T и проверяет его тегами validate.
// При нарушении возвращает ошибку валидации с message.
func ValidateBody[T any](v *validator.Validate, message string) Guard {
	return func(ctx fiber.Ctx) error {
		body := new(T)
		if err := ctx.Bind().JSON(body); err != nil {
			return apperr.Validation(message, err)
		}

		if err := v.Struct(body); err != nil {
			return apperr.Validation(message, err, validation.Violations(err, "")...)
		}

		ctx.Locals(bodyKey, body)
		return nil
	}
}

// ValidateObjectID проверяет, что параметр пути - идентификатор записи.
func ValidateObjectID(v *validator.Validate, param, message string) Guard {
	return func(ctx fiber.Ctx) error {
		if err := v.Var(ctx.Params(param), "required,"+validation.RuleObjectID); err != nil {
			return apperr.Validation(message, err, validation.Violations(err, param)...)
		}
		return nil
	}
}
