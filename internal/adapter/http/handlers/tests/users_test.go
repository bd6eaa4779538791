package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/adapter/http/handlers"
	"kanbanpro/internal/core/domain"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserRouter(service *userServiceMock, principal domain.Principal) *gin.Engine {
	router, api := newRouter(principal)
	handler := handlers.NewUserHandler(service)
	api.GET("/users", handler.ListUsers)
	api.POST("/users", handler.CreateUser)
	api.PATCH("/users/:id", handler.UpdateUser)
	api.DELETE("/users/:id", handler.DeleteUser)
	api.GET("/users/:id/stats", handler.UserStats)
	return router
}

func TestUserHandler_ListUsers_HidesPasswordHash(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: "1", Email: "admin@kanban.com", Name: "ADMINISTRATOR", Role: domain.RoleAdmin, PasswordHash: "$2a$10$hash"},
	}, nil).Once()

	rec := doRequest(newUserRouter(serviceMock, adminPrincipal), http.MethodGet, "/api/users", nil)
	requireStatus(t, rec, http.StatusOK)
	require.NotContains(t, rec.Body.String(), "$2a$10$hash")

	var got []dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "admin", got[0].Role)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_CreateUser_DefaultsRole(t *testing.T) {
	serviceMock := new(userServiceMock)
	input := domain.CreateUserInput{Email: "new@kanban.com", Name: "New", Role: domain.RoleUser, Password: "secret1"}
	serviceMock.On("CreateUser", mock.Anything, adminPrincipal, input).
		Return(domain.User{ID: "u3", Email: "new@kanban.com", Name: "NEW", Role: domain.RoleUser}, nil).Once()

	rec := doRequest(newUserRouter(serviceMock, adminPrincipal), http.MethodPost, "/api/users",
		`{"email":"new@kanban.com","name":"New","password":"secret1"}`)
	requireStatus(t, rec, http.StatusCreated)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_CreateUser_NameTaken(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("CreateUser", mock.Anything, adminPrincipal, mock.Anything).
		Return(domain.User{}, domain.ErrNameTaken).Once()

	rec := doRequest(newUserRouter(serviceMock, adminPrincipal), http.MethodPost, "/api/users",
		`{"email":"x@kanban.com","name":"administrator","password":"secret1"}`)
	requireAPIError(t, rec, http.StatusConflict, apierrors.MsgNameTaken)
}

func TestUserHandler_UpdateUser_RejectsNullField(t *testing.T) {
	serviceMock := new(userServiceMock)

	rec := doRequest(newUserRouter(serviceMock, adminPrincipal), http.MethodPatch, "/api/users/2", `{"name":null}`)
	requireAPIError(t, rec, http.StatusBadRequest, apierrors.MsgInvalidUserPayload)
	serviceMock.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_UpdateUser_Role(t *testing.T) {
	serviceMock := new(userServiceMock)
	role := domain.RoleAdmin
	serviceMock.On("UpdateUser", mock.Anything, adminPrincipal, "2", domain.UpdateUserInput{Role: &role}).
		Return(domain.User{ID: "2", Role: domain.RoleAdmin}, nil).Once()

	rec := doRequest(newUserRouter(serviceMock, adminPrincipal), http.MethodPatch, "/api/users/2", `{"role":"admin"}`)
	requireStatus(t, rec, http.StatusOK)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_DeleteUser_Self(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("DeleteUser", mock.Anything, adminPrincipal, "1").Return(domain.ErrCannotDeleteSelf).Once()

	rec := doRequest(newUserRouter(serviceMock, adminPrincipal), http.MethodDelete, "/api/users/1", nil)
	requireAPIError(t, rec, http.StatusForbidden, apierrors.MsgCannotDeleteSelf)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UserStats(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("UserStats", mock.Anything, "2").Return(domain.UserTaskStats{
		UserID: "2", Total: 3, Completed: 2, Efficiency: 67,
	}, nil).Once()

	rec := doRequest(newUserRouter(serviceMock, userPrincipal), http.MethodGet, "/api/users/2/stats", nil)
	requireStatus(t, rec, http.StatusOK)

	var got dto.UserStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 67, got.Efficiency)
	serviceMock.AssertExpectations(t)
}
