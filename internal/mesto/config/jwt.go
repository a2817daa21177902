package config

import "time"

// JWTConfig содержит настройки токена сессии и хэширования паролей.
// Секрет подписи значения по умолчанию не имеет.
type JWTConfig struct {
	SecretKey    string        `yaml:"secret_key" env:"MESTO_JWT_SECRET_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env:"MESTO_JWT_TOKEN_TTL" env-default:"168h"`
	BCryptCost   int           `yaml:"bcrypt_cost" env:"MESTO_JWT_BCRYPT_COST" env-default:"10"`
	SecureCookie bool          `yaml:"secure_cookie" env:"MESTO_JWT_SECURE_COOKIE" env-default:"false"`
}
