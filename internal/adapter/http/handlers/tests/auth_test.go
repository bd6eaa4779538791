package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/handlers"
	"kanbanpro/internal/adapter/http/middleware"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	auth   *authServiceMock
	users  *userServiceMock
	boards *boardServiceMock
	tasks  *taskServiceMock
}

func newAuthRouter(principal domain.Principal) (*gin.Engine, authMocks) {
	mocks := authMocks{
		auth:   new(authServiceMock),
		users:  new(userServiceMock),
		boards: new(boardServiceMock),
		tasks:  new(taskServiceMock),
	}
	mocks.auth.On("Authenticate", mock.Anything, testToken).Return(principal, nil).Maybe()

	handler := handlers.NewAuthHandler(mocks.auth, mocks.users, mocks.boards, mocks.tasks)
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/auth/login", handler.Login)
	api.POST("/auth/register", handler.Register)
	secured := api.Group("", middleware.AuthMiddleware(mocks.auth))
	secured.POST("/auth/logout", handler.Logout)
	secured.GET("/auth/me", handler.Me)
	return router, mocks
}

func TestAuthHandler_Login_Success(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)
	expiresAt := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	mocks.auth.On("Login", mock.Anything, "user@kanban.com", "kanban123").Return(ports.LoginResult{
		User:           domain.User{ID: "2", Email: "user@kanban.com", Name: "REGULAR USER", Role: domain.RoleUser, PasswordHash: "secret"},
		Token:          "jwt",
		ExpiresAt:      expiresAt,
		CurrentBoardID: "1",
	}, nil).Once()

	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"email":"user@kanban.com","password":"kanban123"}`)
	requireStatus(t, rec, http.StatusOK)

	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "jwt", got.Token)
	require.Equal(t, "2026-02-14T10:00:00Z", got.ExpiresAt)
	require.Equal(t, "REGULAR USER", got.User.Name)
	require.NotNil(t, got.CurrentBoardID)
	require.Equal(t, "1", *got.CurrentBoardID)
	require.NotContains(t, rec.Body.String(), "secret")
	mocks.auth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)
	mocks.auth.On("Login", mock.Anything, "user@kanban.com", "wrong").
		Return(ports.LoginResult{}, domain.ErrInvalidCredentials).Once()

	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"email":"user@kanban.com","password":"wrong"}`)
	requireAPIError(t, rec, http.StatusUnauthorized, apierrors.MsgInvalidCredentials)
	mocks.auth.AssertExpectations(t)
}

func TestAuthHandler_Login_MalformedEmail(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)

	rec := doRequest(router, http.MethodPost, "/api/auth/login", `{"email":"nope","password":"x"}`)
	requireAPIError(t, rec, http.StatusBadRequest, apierrors.MsgInvalidPayload)
	mocks.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)
	mocks.auth.On("Register", mock.Anything, "admin@kanban.com", "secret1", "Someone").
		Return(ports.LoginResult{}, domain.ErrEmailTaken).Once()

	rec := doRequest(router, http.MethodPost, "/api/auth/register", `{"email":"admin@kanban.com","password":"secret1","name":"Someone"}`)
	requireAPIError(t, rec, http.StatusConflict, apierrors.MsgEmailTaken)
	mocks.auth.AssertExpectations(t)
}

func TestAuthHandler_Logout(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)
	mocks.auth.On("Logout", mock.Anything, userPrincipal).Return(nil).Once()

	rec := doRequest(router, http.MethodPost, "/api/auth/logout", nil)
	requireStatus(t, rec, http.StatusNoContent)
	mocks.auth.AssertExpectations(t)
}

func TestAuthHandler_Me_CountsPendingTasks(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)
	mocks.users.On("GetUser", mock.Anything, "2").Return(domain.User{ID: "2", Name: "REGULAR USER", Role: domain.RoleUser}, nil).Once()
	mocks.boards.On("CurrentBoard", mock.Anything, userPrincipal).Return(domain.Board{ID: "1"}, nil).Once()
	mocks.tasks.On("CurrentBoardTasks", mock.Anything, userPrincipal).Return([]domain.Task{
		{ID: "a", AssigneeID: "2", Status: domain.TaskStatusCreated},
		{ID: "b", AssigneeID: "2", Status: domain.TaskStatusCompleted},
		{ID: "c", AssigneeID: "1", Status: domain.TaskStatusInProgress},
		{ID: "d", AssigneeID: "2", Status: domain.TaskStatusInProgress},
	}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/api/auth/me", nil)
	requireStatus(t, rec, http.StatusOK)

	var got dto.MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2", got.User.ID)
	require.Equal(t, "1", *got.CurrentBoardID)
	require.Equal(t, 2, got.PendingTasks)
}

func TestAuthHandler_Me_WithoutCurrentBoard(t *testing.T) {
	router, mocks := newAuthRouter(userPrincipal)
	mocks.users.On("GetUser", mock.Anything, "2").Return(domain.User{ID: "2"}, nil).Once()
	mocks.boards.On("CurrentBoard", mock.Anything, userPrincipal).Return(domain.Board{}, domain.ErrBoardNotFound).Once()
	mocks.tasks.On("CurrentBoardTasks", mock.Anything, userPrincipal).Return(nil, nil).Once()

	rec := doRequest(router, http.MethodGet, "/api/auth/me", nil)
	requireStatus(t, rec, http.StatusOK)

	var got dto.MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Nil(t, got.CurrentBoardID)
	require.Zero(t, got.PendingTasks)
}
