package handlers

import (
	"net/http"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/mapper"
	"kanbanpro/internal/adapter/http/validation"
	"kanbanpro/internal/core/ports"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidUserPayload)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), principal(c), validation.BuildCreateUserInput(req))
	if err != nil {
		respondError(c, "failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidUserPayload)
		return
	}

	input, err := validation.BuildUpdateUserInput(req, raw)
	if err != nil {
		respondError(c, "failed to build user update", err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), principal(c), c.Param("id"), input)
	if err != nil {
		respondError(c, "failed to update user", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), principal(c), c.Param("id")); err != nil {
		respondError(c, "failed to delete user", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) UserStats(c *gin.Context) {
	stats, err := h.userService.UserStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "failed to compute user stats", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToUserStats(stats))
}
