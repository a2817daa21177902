// Package services содержит доменные типы и ошибки сервисов паролей и токенов сессии.
package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с токенами сессии.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTConfig содержит настройки сервиса токенов.
type JWTConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// SessionClaims - содержимое токена сессии.
type SessionClaims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
