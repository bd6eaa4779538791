package handlers

import (
	"errors"
	"net/http"
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/mapper"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  ports.AuthService
	userService  ports.UserService
	boardService ports.BoardService
	taskService  ports.TaskService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService, boardService ports.BoardService, taskService ports.TaskService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		boardService: boardService,
		taskService:  taskService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, "failed to login", err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(result))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidUserPayload)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, "failed to register", err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(result))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), principal(c)); err != nil {
		respondError(c, "failed to logout", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	actor := principal(c)

	user, err := h.userService.GetUser(ctx, actor.UserID)
	if err != nil {
		respondError(c, "failed to load current user", err)
		return
	}

	resp := dto.MeResponse{User: mapper.ToUserItem(user)}

	board, err := h.boardService.CurrentBoard(ctx, actor)
	switch {
	case err == nil:
		resp.CurrentBoardID = &board.ID
	case !errors.Is(err, domain.ErrBoardNotFound):
		respondError(c, "failed to load current board", err)
		return
	}

	tasks, err := h.taskService.CurrentBoardTasks(ctx, actor)
	if err != nil {
		respondError(c, "failed to load current board tasks", err)
		return
	}
	for _, task := range tasks {
		if task.AssigneeID == user.ID && task.Status != domain.TaskStatusCompleted {
			resp.PendingTasks++
		}
	}

	c.JSON(http.StatusOK, resp)
}

func toSessionResponse(result ports.LoginResult) dto.SessionResponse {
	resp := dto.SessionResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		User:      mapper.ToUserItem(result.User),
	}
	if result.CurrentBoardID != "" {
		boardID := result.CurrentBoardID
		resp.CurrentBoardID = &boardID
	}
	return resp
}
