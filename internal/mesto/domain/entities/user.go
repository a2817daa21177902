// Package entities содержит сущности домена Mesto: пользователей и карточки.
package entities

import (
	"errors"
	"time"
)

// Значения профиля по умолчанию.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidUserData    = errors.New("user data violates schema constraints")
)

// User представляет пользователя вместе с хэшем пароля.
// Хэш заполняется только при чтении для аутентификации.
type User struct {
	ID           string
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyDefaults подставляет значения по умолчанию в незаполненные поля профиля.
func (u *User) ApplyDefaults() {
	if u.Name == "" {
		u.Name = DefaultUserName
	}
	if u.About == "" {
		u.About = DefaultUserAbout
	}
	if u.Avatar == "" {
		u.Avatar = DefaultUserAvatar
	}
}

// Public возвращает копию пользователя без хэша пароля.
func (u *User) Public() *User {
	public := *u
	public.PasswordHash = ""
	return &public
}

// Identity - данные сессии, извлекаемые из токена.
type Identity struct {
	ID    string
	Email string
}

// ProfileUpdate описывает частичное обновление профиля. nil-поля не меняются.
type ProfileUpdate struct {
	Name   *string
	About  *string
	Avatar *string
}
