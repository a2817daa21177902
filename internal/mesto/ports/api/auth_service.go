// Package api определяет сценарии использования сервиса Mesto.
package api

import (
	"context"
	"time"

	"mesto/internal/mesto/domain/entities"
)

// Session - результат успешного входа.
type Session struct {
	User      *entities.User
	Token     string
	ExpiresAt time.Time
}

// AuthUseCase определяет регистрацию, вход и проверку сессии.
type AuthUseCase interface {
	Register(ctx context.Context, user *entities.User, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*Session, error)

	Authenticate(ctx context.Context, token string) (*entities.Identity, error)
}
