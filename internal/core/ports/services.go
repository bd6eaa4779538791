package ports

import (
	"context"
	"io"
	"time"

	"kanbanpro/internal/core/domain"
)

type LoginResult struct {
	User           domain.User
	Token          string
	ExpiresAt      time.Time
	CurrentBoardID string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, email, password, name string) (LoginResult, error)
	Logout(ctx context.Context, principal domain.Principal) error
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, actor domain.Principal, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, actor domain.Principal, id string, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Principal, id string) error
	UserStats(ctx context.Context, id string) (domain.UserTaskStats, error)
}

type BoardService interface {
	ListBoards(ctx context.Context) ([]domain.Board, error)
	CreateBoard(ctx context.Context, actor domain.Principal, input domain.CreateBoardInput) (domain.Board, error)
	UpdateBoard(ctx context.Context, actor domain.Principal, id string, patch domain.BoardPatch) (domain.Board, error)
	DeleteBoard(ctx context.Context, actor domain.Principal, id string) error
	SetCurrentBoard(ctx context.Context, actor domain.Principal, id string) (domain.Board, error)
	CurrentBoard(ctx context.Context, actor domain.Principal) (domain.Board, error)
}

type TaskService interface {
	ListBoardTasks(ctx context.Context, boardID string) ([]domain.Task, error)
	BoardColumns(ctx context.Context, boardID string) ([]domain.TaskColumn, error)
	CurrentBoardTasks(ctx context.Context, actor domain.Principal) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	CreateTask(ctx context.Context, actor domain.Principal, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Principal, id string, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, actor domain.Principal, id string) error
	TogglePin(ctx context.Context, id string) (domain.Task, error)
	MoveTask(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error)
	AddComment(ctx context.Context, actor domain.Principal, id, content string) (domain.Comment, error)
}

type AttachmentService interface {
	AddAttachment(ctx context.Context, actor domain.Principal, taskID, name string, content io.Reader, voice bool) (domain.Attachment, error)
	OpenAttachment(ctx context.Context, taskID, attachmentID string) (domain.Attachment, io.ReadCloser, error)
	RemoveAttachment(ctx context.Context, actor domain.Principal, taskID, attachmentID string) error
}

type AnalyticsService interface {
	BoardAnalytics(ctx context.Context, boardID string) (domain.BoardAnalytics, error)
	CalendarMonth(ctx context.Context, boardID string, year int, month time.Month) (domain.CalendarMonth, error)
}
