// Package services определяет интерфейсы сервисов паролей и токенов.
package services

import "context"

// PasswordService определяет операции хэширования и проверки пароля.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
