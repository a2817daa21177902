package services

import (
	"context"
	"time"

	"mesto/internal/mesto/domain/entities"
)

// TokenService выпускает и проверяет токены сессии.
type TokenService interface {
	GenerateToken(ctx context.Context, userID, email string) (string, time.Time, error)

	ValidateToken(ctx context.Context, token string) (*entities.Identity, error)
}
