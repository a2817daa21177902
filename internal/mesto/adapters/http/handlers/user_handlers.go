package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"mesto/internal/mesto/adapters/http/dto"
	"mesto/internal/mesto/adapters/http/middleware"
	"mesto/internal/mesto/ports/api"
)

// ParamUserID - параметр пути с идентификатором пользователя.
const ParamUserID = "userId"

// UserHandler содержит обработчики профилей.
type UserHandler struct {
	userUseCase api.UserUseCase
}

// NewUserHandler создает новый экземпляр обработчика профилей.
func NewUserHandler(userUseCase api.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// GetUsers возвращает всех пользователей.
func (h *UserHandler) GetUsers(ctx fiber.Ctx) error {
	users, err := h.userUseCase.GetUsers(middleware.RequestContext(ctx))
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewUserListResponse(users))
}

// GetCurrentUser возвращает профиль владельца сессии.
func (h *UserHandler) GetCurrentUser(ctx fiber.Ctx) error {
	user, err := h.userUseCase.GetCurrentUser(middleware.RequestContext(ctx), middleware.Identity(ctx))
	if err != nil {
		return fmt.Errorf("getting current user: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewUserResponse(user))
}

// GetUserByID возвращает пользователя по идентификатору из пути.
func (h *UserHandler) GetUserByID(ctx fiber.Ctx) error {
	user, err := h.userUseCase.GetUserByID(middleware.RequestContext(ctx), ctx.Params(ParamUserID))
	if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewUserResponse(user))
}

// EditUserInfo меняет имя и описание владельца сессии.
func (h *UserHandler) EditUserInfo(ctx fiber.Ctx) error {
	req := middleware.Body[dto.UpdateProfileRequest](ctx)

	user, err := h.userUseCase.EditUserInfo(middleware.RequestContext(ctx), middleware.Identity(ctx), req.Name, req.About)
	if err != nil {
		return fmt.Errorf("editing user info: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewUserResponse(user))
}

// EditAvatar меняет аватар владельца сессии.
func (h *UserHandler) EditAvatar(ctx fiber.Ctx) error {
	req := middleware.Body[dto.UpdateAvatarRequest](ctx)

	user, err := h.userUseCase.EditAvatar(middleware.RequestContext(ctx), middleware.Identity(ctx), req.Avatar)
	if err != nil {
		return fmt.Errorf("editing avatar: %w", err)
	}
	return sendJSON(ctx, http.StatusOK, dto.NewUserResponse(user))
}

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
