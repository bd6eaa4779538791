package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"kanbanpro/internal/adapter/http/middleware"
	"kanbanpro/internal/core/domain"
	"kanbanpro/pkg/apierrors"
	"kanbanpro/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

var (
	adminPrincipal = domain.Principal{UserID: "1", Role: domain.RoleAdmin, SessionID: "s1"}
	userPrincipal  = domain.Principal{UserID: "2", Role: domain.RoleUser, SessionID: "s2"}
)

// newRouter returns a router whose authenticated routes resolve testToken to principal.
func newRouter(principal domain.Principal) (*gin.Engine, *gin.RouterGroup) {
	auth := new(authServiceMock)
	auth.On("Authenticate", mock.Anything, testToken).Return(principal, nil)

	router := gin.New()
	secured := router.Group("/api", middleware.LanguageMiddleware(), middleware.AuthMiddleware(auth))
	return router, secured
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch value := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(value))
	default:
		payload, _ := json.Marshal(value)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, msgKey string) {
	t.Helper()
	require.Equal(t, status, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, apierrors.GetTransErrorMsg(msgKey, translator.LanguageEn), got.ErrDetails.Message)
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
