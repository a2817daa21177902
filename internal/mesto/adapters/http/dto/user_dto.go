package dto

import "mesto/internal/mesto/domain/entities"

// UpdateProfileRequest представляет запрос на изменение имени и описания.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest представляет запрос на изменение аватара.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,mestourl"`
}

// UserResponse - публичные поля пользователя.
type UserResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// NewUserResponse создает ответ из сущности пользователя.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		About:  user.About,
		Avatar: user.Avatar,
		Email:  user.Email,
	}
}

// NewUserListResponse создает ответ со списком пользователей.
func NewUserListResponse(users []*entities.User) []UserResponse {
	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, NewUserResponse(user))
	}
	return response
}
