package config

import (
	"fmt"
	"time"

	"mesto/internal/mesto/resilience"
	redisdb "mesto/pkg/db/redis"
)

// RedisConfig представляет конфигурацию кэша профилей в Redis.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"MESTO_REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"MESTO_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"MESTO_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"MESTO_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"MESTO_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"MESTO_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"MESTO_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"MESTO_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"MESTO_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"MESTO_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"MESTO_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"MESTO_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	CacheTTL        time.Duration `yaml:"cache_ttl" env:"MESTO_REDIS_CACHE_TTL" env-default:"10m"`

	BreakerErrorThreshold   int           `yaml:"breaker_error_threshold" env:"MESTO_REDIS_BREAKER_ERROR_THRESHOLD" env-default:"5"`
	BreakerTimeout          time.Duration `yaml:"breaker_timeout" env:"MESTO_REDIS_BREAKER_TIMEOUT" env-default:"10s"`
	BreakerSuccessThreshold int           `yaml:"breaker_success_threshold" env:"MESTO_REDIS_BREAKER_SUCCESS_THRESHOLD" env-default:"2"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClientConfig возвращает параметры клиента Redis.
func (c *RedisConfig) ClientConfig() *redisdb.Config {
	return &redisdb.Config{
		Host:            c.Host,
		Port:            c.Port,
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdle:         c.MinIdle,
		DialTimeout:     c.ConnectTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		ConnMaxIdleTime: c.IdleTimeout,
		ConnMaxLifetime: c.MaxConnLifetime,
	}
}

// BreakerConfig возвращает настройки Circuit Breaker для обращений к кэшу.
func (c *RedisConfig) BreakerConfig() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		ErrorThreshold:   c.BreakerErrorThreshold,
		Timeout:          c.BreakerTimeout,
		SuccessThreshold: c.BreakerSuccessThreshold,
	}
}
