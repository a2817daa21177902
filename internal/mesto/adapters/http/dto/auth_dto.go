// Package dto содержит структуры запросов и ответов HTTP API.
package dto

// SignupRequest представляет запрос на регистрацию.
type SignupRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,mestourl"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SigninRequest представляет запрос на вход.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionData - данные владельца новой сессии.
type SessionData struct {
	Email string `json:"email"`
	ID    string `json:"_id"`
}

// SigninResponse представляет ответ на успешный вход.
type SigninResponse struct {
	Data SessionData `json:"data"`
}

// MessageResponse - ответ, состоящий из одного сообщения.
type MessageResponse struct {
	Message string `json:"message"`
}
