package dto

import "mesto/internal/mesto/domain/apperr"

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Message string                  `json:"message"`
	Details []apperr.FieldViolation `json:"details,omitempty"`
}
