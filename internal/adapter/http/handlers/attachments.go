package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"kanbanpro/internal/adapter/http/mapper"
	"kanbanpro/internal/adapter/http/middleware"
	"kanbanpro/internal/core/ports"
	"kanbanpro/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AttachmentHandler struct {
	attachmentService ports.AttachmentService
	maxUploadBytes    int64
}

func NewAttachmentHandler(attachmentService ports.AttachmentService, maxUploadBytes int64) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService, maxUploadBytes: maxUploadBytes}
}

// UploadAttachment expects a multipart "file" part. A "voice" field set to
// true stores the upload as a voice message.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(
				http.StatusRequestEntityTooLarge,
				apierrors.CreateError(http.StatusRequestEntityTooLarge, apierrors.MsgAttachmentTooLarge, middleware.GetLang(c)),
			)
			return
		}
		respondBadRequest(c, apierrors.MsgInvalidPayload)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, "failed to open uploaded file", err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			zap.L().Debug("failed to close uploaded file", zap.Error(err))
		}
	}()

	voice, _ := strconv.ParseBool(strings.TrimSpace(c.PostForm("voice")))
	attachment, err := h.attachmentService.AddAttachment(
		c.Request.Context(), principal(c), c.Param("id"), fileHeader.Filename, file, voice,
	)
	if err != nil {
		respondError(c, "failed to store attachment", err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToAttachmentItem(attachment))
}

func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	attachment, content, err := h.attachmentService.OpenAttachment(c.Request.Context(), c.Param("id"), c.Param("attachmentId"))
	if err != nil {
		respondError(c, "failed to open attachment", err)
		return
	}
	defer func() {
		if err := content.Close(); err != nil {
			zap.L().Debug("failed to close attachment", zap.Error(err))
		}
	}()

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(attachment.Name))
	c.Header("Content-Type", attachment.Type)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, content); err != nil {
		zap.L().Warn("failed to stream attachment", zap.String("attachment_id", attachment.ID), zap.Error(err))
	}
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	if err := h.attachmentService.RemoveAttachment(c.Request.Context(), principal(c), c.Param("id"), c.Param("attachmentId")); err != nil {
		respondError(c, "failed to delete attachment", err)
		return
	}
	c.Status(http.StatusNoContent)
}
