package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"kanbanpro/internal/adapter/http/middleware"
	"kanbanpro/internal/adapter/http/validation"
	"kanbanpro/internal/core/domain"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type errorMapping struct {
	target error
	status int
	msgKey string
}

var errorMappings = []errorMapping{
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.MsgUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, apierrors.MsgInvalidCredentials},
	{domain.ErrForbidden, http.StatusForbidden, apierrors.MsgForbidden},
	{domain.ErrCannotDeleteSelf, http.StatusForbidden, apierrors.MsgCannotDeleteSelf},
	{domain.ErrEmailTaken, http.StatusConflict, apierrors.MsgEmailTaken},
	{domain.ErrNameTaken, http.StatusConflict, apierrors.MsgNameTaken},
	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrBoardNotFound, http.StatusNotFound, apierrors.MsgBoardNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrAttachmentNotFound, http.StatusNotFound, apierrors.MsgAttachmentNotFound},
	{domain.ErrInvalidTask, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
	{validation.ErrInvalidTaskPayload, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
	{domain.ErrInvalidBoard, http.StatusBadRequest, apierrors.MsgInvalidBoardPayload},
	{validation.ErrInvalidBoardPayload, http.StatusBadRequest, apierrors.MsgInvalidBoardPayload},
	{domain.ErrInvalidUser, http.StatusBadRequest, apierrors.MsgInvalidUserPayload},
	{validation.ErrInvalidUserPayload, http.StatusBadRequest, apierrors.MsgInvalidUserPayload},
	{domain.ErrInvalidStatus, http.StatusBadRequest, apierrors.MsgInvalidStatus},
	{domain.ErrInvalidComment, http.StatusBadRequest, apierrors.MsgInvalidComment},
	{domain.ErrInvalidMonth, http.StatusBadRequest, apierrors.MsgInvalidMonth},
}

// respondError writes the translated error body for err. Unknown errors are
// logged under op and reported as 500.
func respondError(c *gin.Context, op string, err error) {
	lang := middleware.GetLang(c)
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, apierrors.CreateError(m.status, m.msgKey, lang))
			return
		}
	}

	zap.L().Error(op, zap.String("path", c.FullPath()), zap.Error(err))
	_ = c.Error(err)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
	)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

// bindJSON validates the body into req and also returns it as a raw field map,
// so callers can tell an absent field from an explicit null.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}

func principal(c *gin.Context) domain.Principal {
	p, _ := middleware.GetPrincipal(c)
	return p
}
