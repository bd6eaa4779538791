package domain

import "time"

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "created"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists the board columns in display order.
var TaskStatuses = []TaskStatus{TaskStatusCreated, TaskStatusInProgress, TaskStatusCompleted}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusCreated, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

const dueSoonWindow = 48 * time.Hour

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  string       `json:"assigneeId"`
	CreatorID   string       `json:"creatorId"`
	BoardID     string       `json:"boardId"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	IsPinned    bool         `json:"isPinned"`
	Attachments []Attachment `json:"attachments"`
	Comments    []Comment    `json:"comments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// IsOverdue reports whether the deadline lies before the start of now's day.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.Deadline.Before(startOfDay)
}

// IsDueSoon reports whether the deadline falls within the next 48 hours.
func (t Task) IsDueSoon(now time.Time) bool {
	if t.Deadline == nil {
		return false
	}
	return t.Deadline.After(now) && t.Deadline.Before(now.Add(dueSoonWindow))
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	c := t
	if t.Deadline != nil {
		value := *t.Deadline
		c.Deadline = &value
	}
	c.Attachments = append([]Attachment{}, t.Attachments...)
	c.Comments = append([]Comment{}, t.Comments...)
	return c
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	AssigneeID  string
	BoardID     string
	Deadline    *time.Time
	IsPinned    bool
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	AssigneeID  *string
	Deadline    *time.Time
	DeadlineSet bool
	IsPinned    *bool
	Attachments []Attachment
	// AttachmentsSet distinguishes "replace with empty" from "leave as is".
	AttachmentsSet bool
	Comments       []Comment
	CommentsSet    bool
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Status == nil &&
		p.Priority == nil &&
		p.AssigneeID == nil &&
		!p.DeadlineSet &&
		p.IsPinned == nil &&
		!p.AttachmentsSet &&
		!p.CommentsSet
}

// Apply merges the patch into t and returns the result.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.AssigneeID != nil {
		out.AssigneeID = *p.AssigneeID
	}
	if p.DeadlineSet {
		out.Deadline = nil
		if p.Deadline != nil {
			value := *p.Deadline
			out.Deadline = &value
		}
	}
	if p.IsPinned != nil {
		out.IsPinned = *p.IsPinned
	}
	if p.AttachmentsSet {
		out.Attachments = append([]Attachment{}, p.Attachments...)
	}
	if p.CommentsSet {
		out.Comments = append([]Comment{}, p.Comments...)
	}
	return out
}

// TaskColumn is one status column of a board view.
type TaskColumn struct {
	Status TaskStatus
	Tasks  []Task
}
