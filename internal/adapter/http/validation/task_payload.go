package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dateLayout = "2006-01-02"

// BuildCreateTaskInput maps a create request. raw is the decoded body and is
// used to reject explicit nulls on non-nullable fields.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.CreateTaskInput, error) {
	for _, field := range []string{"status", "priority", "assignee_id", "board_id", "is_pinned", "description"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:  title,
		Status: domain.TaskStatusCreated,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.AssigneeID != nil {
		input.AssigneeID = strings.TrimSpace(*req.AssigneeID)
	}
	if req.BoardID != nil {
		input.BoardID = strings.TrimSpace(*req.BoardID)
	}
	if req.IsPinned != nil {
		input.IsPinned = *req.IsPinned
	}

	if req.Deadline != nil && strings.TrimSpace(*req.Deadline) != "" {
		deadline, err := ParseDeadline(*req.Deadline, loc)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Deadline = &deadline
	}

	return input, nil
}

func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage, loc *time.Location) (domain.TaskPatch, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}
	for _, field := range []string{"title", "description", "status", "priority", "assignee_id", "is_pinned"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
	}

	var patch domain.TaskPatch
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Title = &value
	}
	patch.Description = req.Description
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		patch.Status = &value
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		patch.Priority = &value
	}
	if req.AssigneeID != nil {
		value := strings.TrimSpace(*req.AssigneeID)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.AssigneeID = &value
	}
	patch.IsPinned = req.IsPinned

	// A null or empty deadline clears it.
	patch.DeadlineSet = hasJSONField(raw, "deadline")
	if patch.DeadlineSet && req.Deadline != nil && strings.TrimSpace(*req.Deadline) != "" {
		deadline, err := ParseDeadline(*req.Deadline, loc)
		if err != nil {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Deadline = &deadline
	}

	return patch, nil
}

// ParseDeadline accepts a calendar date, read as midnight in loc, or an RFC 3339 timestamp.
func ParseDeadline(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}
	if deadline, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return deadline, nil
	}
	return time.Parse(time.RFC3339, value)
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "assignee_id") ||
		hasJSONField(raw, "deadline") ||
		hasJSONField(raw, "is_pinned")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
