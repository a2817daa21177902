package config

import "errors"

// Ошибки проверки конфигурации.
var (
	ErrEmptyJWTSecret      = errors.New("jwt secret key must not be empty")
	ErrNonPositiveTokenTTL = errors.New("jwt token ttl must be positive")
)
