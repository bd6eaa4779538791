package mapper

import (
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		AssigneeID:  task.AssigneeID,
		CreatorID:   task.CreatorID,
		BoardID:     task.BoardID,
		IsPinned:    task.IsPinned,
		IsOverdue:   task.IsOverdue(now),
		IsDueSoon:   task.IsDueSoon(now),
		Attachments: make([]dto.AttachmentItem, 0, len(task.Attachments)),
		Comments:    make([]dto.CommentItem, 0, len(task.Comments)),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Deadline != nil {
		value := task.Deadline.Format(time.RFC3339)
		item.Deadline = &value
	}

	for _, attachment := range task.Attachments {
		item.Attachments = append(item.Attachments, ToAttachmentItem(attachment))
	}

	for _, comment := range task.Comments {
		item.Comments = append(item.Comments, ToCommentItem(comment))
	}

	return item
}

func ToAttachmentItem(attachment domain.Attachment) dto.AttachmentItem {
	return dto.AttachmentItem{
		ID:   attachment.ID,
		Name: attachment.Name,
		Size: attachment.Size,
		Type: attachment.Type,
		URL:  attachment.URL,
	}
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}

func ToTaskColumns(columns []domain.TaskColumn, now time.Time) []dto.TaskColumn {
	out := make([]dto.TaskColumn, 0, len(columns))
	for _, column := range columns {
		out = append(out, dto.TaskColumn{
			Status: string(column.Status),
			Count:  len(column.Tasks),
			Tasks:  ToTaskItems(column.Tasks, now),
		})
	}
	return out
}
