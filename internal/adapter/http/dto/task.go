package dto

type TaskItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority"`
	AssigneeID  string           `json:"assignee_id"`
	CreatorID   string           `json:"creator_id"`
	BoardID     string           `json:"board_id"`
	Deadline    *string          `json:"deadline,omitempty"`
	IsPinned    bool             `json:"is_pinned"`
	IsOverdue   bool             `json:"is_overdue"`
	IsDueSoon   bool             `json:"is_due_soon"`
	Attachments []AttachmentItem `json:"attachments"`
	Comments    []CommentItem    `json:"comments"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type AttachmentItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type CommentItem struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type TaskColumn struct {
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Tasks  []TaskItem `json:"tasks"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=created in-progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	AssigneeID  *string `json:"assignee_id" binding:"omitempty,max=64"`
	BoardID     *string `json:"board_id" binding:"omitempty,max=64"`
	Deadline    *string `json:"deadline"`
	IsPinned    *bool   `json:"is_pinned"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=created in-progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	AssigneeID  *string `json:"assignee_id" binding:"omitempty,max=64"`
	Deadline    *string `json:"deadline"`
	IsPinned    *bool   `json:"is_pinned"`
}

type MoveTaskRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=65535"`
}
