package middleware

import "github.com/gofiber/fiber/v3"

// Guard - проверка перед обработчиком маршрута. Ошибка прерывает запрос
// и передается в ErrorHandler.
type Guard func(ctx fiber.Ctx) error

// Chain выполняет guards по порядку и затем handler.
func Chain(handler fiber.Handler, guards ...Guard) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		for _, guard := range guards {
			if err := guard(ctx); err != nil {
				return err
			}
		}
		return handler(ctx)
	}
}
