package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	voiceContentType = "audio/wav"
	// sniffLen covers every signature mimetype inspects.
	sniffLen = 3072
)

type AttachmentService struct {
	store *state.Store
	blobs ports.BlobStore
	loc   *time.Location
	now   func() time.Time
}

var _ ports.AttachmentService = (*AttachmentService)(nil)

func NewAttachmentService(store *state.Store, blobs ports.BlobStore, loc *time.Location) *AttachmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttachmentService{store: store, blobs: blobs, loc: loc, now: time.Now}
}

// AddAttachment stores content and attaches it to the task. Voice uploads
// get a generated name and the audio/wav type regardless of what was sent.
func (s *AttachmentService) AddAttachment(ctx context.Context, actor domain.Principal, taskID, name string, content io.Reader, voice bool) (domain.Attachment, error) {
	if _, ok := s.store.Snapshot().FindTask(taskID); !ok {
		return domain.Attachment{}, domain.ErrTaskNotFound
	}

	now := s.now()
	attachment := domain.Attachment{ID: newID()}

	reader := bufio.NewReaderSize(content, sniffLen)
	head, _ := reader.Peek(sniffLen)
	if voice {
		attachment.Name = fmt.Sprintf("VOICE MESSAGE %s.wav", now.In(s.loc).Format("02.01.2006, 15:04:05"))
		attachment.Type = voiceContentType
	} else {
		attachment.Name = filepath.Base(strings.TrimSpace(name))
		if attachment.Name == "" || attachment.Name == "." || attachment.Name == string(filepath.Separator) {
			attachment.Name = attachment.ID
		}
		attachment.Type = mimetype.Detect(head).String()
	}
	attachment.URL = fmt.Sprintf("/api/tasks/%s/attachments/%s", taskID, attachment.ID)

	size, err := s.blobs.Put(ctx, attachment.ID, reader)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}
	attachment.Size = size

	err = s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		task, ok := st.FindTask(taskID)
		if !ok {
			return nil, domain.ErrTaskNotFound
		}
		patch := domain.TaskPatch{
			Attachments:    append(task.Attachments, attachment),
			AttachmentsSet: true,
		}
		return []state.Action{state.UpdateTask{ID: taskID, Patch: patch, At: now}}, nil
	})
	if err != nil {
		if deleteErr := s.blobs.Delete(ctx, attachment.ID); deleteErr != nil {
			zap.L().Warn("failed to drop orphan attachment", zap.String("attachment_id", attachment.ID), zap.Error(deleteErr))
		}
		return domain.Attachment{}, err
	}

	zap.L().Info("attachment added",
		zap.String("task_id", taskID),
		zap.String("attachment_id", attachment.ID),
		zap.String("user_id", actor.UserID),
		zap.Int64("size", size),
	)
	return attachment, nil
}

func (s *AttachmentService) OpenAttachment(ctx context.Context, taskID, attachmentID string) (domain.Attachment, io.ReadCloser, error) {
	task, ok := s.store.Snapshot().FindTask(taskID)
	if !ok {
		return domain.Attachment{}, nil, domain.ErrTaskNotFound
	}
	attachment, ok := findAttachment(task, attachmentID)
	if !ok {
		return domain.Attachment{}, nil, domain.ErrAttachmentNotFound
	}

	rc, err := s.blobs.Open(ctx, attachmentID)
	if err != nil {
		return domain.Attachment{}, nil, err
	}
	return attachment, rc, nil
}

func (s *AttachmentService) RemoveAttachment(ctx context.Context, actor domain.Principal, taskID, attachmentID string) error {
	now := s.now()
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		task, ok := st.FindTask(taskID)
		if !ok {
			return nil, domain.ErrTaskNotFound
		}
		if _, ok := findAttachment(task, attachmentID); !ok {
			return nil, domain.ErrAttachmentNotFound
		}
		kept := make([]domain.Attachment, 0, len(task.Attachments))
		for _, attachment := range task.Attachments {
			if attachment.ID != attachmentID {
				kept = append(kept, attachment)
			}
		}
		patch := domain.TaskPatch{Attachments: kept, AttachmentsSet: true}
		return []state.Action{state.UpdateTask{ID: taskID, Patch: patch, At: now}}, nil
	})
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, attachmentID); err != nil {
		zap.L().Warn("failed to delete attachment content",
			zap.String("attachment_id", attachmentID),
			zap.String("user_id", actor.UserID),
			zap.Error(err),
		)
	}
	return nil
}

func findAttachment(task domain.Task, id string) (domain.Attachment, bool) {
	for _, attachment := range task.Attachments {
		if attachment.ID == id {
			return attachment, true
		}
	}
	return domain.Attachment{}, false
}

func deleteAttachmentContent(ctx context.Context, blobs ports.BlobStore, task domain.Task) {
	if blobs == nil {
		return
	}
	for _, attachment := range task.Attachments {
		if err := blobs.Delete(ctx, attachment.ID); err != nil {
			zap.L().Warn("failed to delete attachment content",
				zap.String("task_id", task.ID),
				zap.String("attachment_id", attachment.ID),
				zap.Error(err),
			)
		}
	}
}
