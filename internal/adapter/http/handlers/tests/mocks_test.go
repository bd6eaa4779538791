package tests

import (
	"context"
	"io"
	"time"

	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(ports.LoginResult), args.Error(1)
}

func (m *authServiceMock) Register(ctx context.Context, email, password, name string) (ports.LoginResult, error) {
	args := m.Called(ctx, email, password, name)
	return args.Get(0).(ports.LoginResult), args.Error(1)
}

func (m *authServiceMock) Logout(ctx context.Context, principal domain.Principal) error {
	return m.Called(ctx, principal).Error(0)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Principal), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func tasksResult(args mock.Arguments) ([]domain.Task, error) {
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListBoardTasks(ctx context.Context, boardID string) ([]domain.Task, error) {
	return tasksResult(m.Called(ctx, boardID))
}

func (m *taskServiceMock) BoardColumns(ctx context.Context, boardID string) ([]domain.TaskColumn, error) {
	args := m.Called(ctx, boardID)
	var columns []domain.TaskColumn
	if value := args.Get(0); value != nil {
		columns = value.([]domain.TaskColumn)
	}
	return columns, args.Error(1)
}

func (m *taskServiceMock) CurrentBoardTasks(ctx context.Context, actor domain.Principal) ([]domain.Task, error) {
	return tasksResult(m.Called(ctx, actor))
}

func (m *taskServiceMock) GetTask(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, actor domain.Principal, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, actor domain.Principal, id string, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, actor, id, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, actor domain.Principal, id string) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *taskServiceMock) TogglePin(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) AddComment(ctx context.Context, actor domain.Principal, id, content string) (domain.Comment, error) {
	args := m.Called(ctx, actor, id, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

type boardServiceMock struct {
	mock.Mock
}

func (m *boardServiceMock) ListBoards(ctx context.Context) ([]domain.Board, error) {
	args := m.Called(ctx)
	var boards []domain.Board
	if value := args.Get(0); value != nil {
		boards = value.([]domain.Board)
	}
	return boards, args.Error(1)
}

func (m *boardServiceMock) CreateBoard(ctx context.Context, actor domain.Principal, input domain.CreateBoardInput) (domain.Board, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *boardServiceMock) UpdateBoard(ctx context.Context, actor domain.Principal, id string, patch domain.BoardPatch) (domain.Board, error) {
	args := m.Called(ctx, actor, id, patch)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *boardServiceMock) DeleteBoard(ctx context.Context, actor domain.Principal, id string) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *boardServiceMock) SetCurrentBoard(ctx context.Context, actor domain.Principal, id string) (domain.Board, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Board), args.Error(1)
}

func (m *boardServiceMock) CurrentBoard(ctx context.Context, actor domain.Principal) (domain.Board, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.Board), args.Error(1)
}

type analyticsServiceMock struct {
	mock.Mock
}

func (m *analyticsServiceMock) BoardAnalytics(ctx context.Context, boardID string) (domain.BoardAnalytics, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).(domain.BoardAnalytics), args.Error(1)
}

func (m *analyticsServiceMock) CalendarMonth(ctx context.Context, boardID string, year int, month time.Month) (domain.CalendarMonth, error) {
	args := m.Called(ctx, boardID, year, month)
	return args.Get(0).(domain.CalendarMonth), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) CreateUser(ctx context.Context, actor domain.Principal, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, actor domain.Principal, id string, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, actor, id, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, actor domain.Principal, id string) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *userServiceMock) UserStats(ctx context.Context, id string) (domain.UserTaskStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.UserTaskStats), args.Error(1)
}

type attachmentServiceMock struct {
	mock.Mock
}

func (m *attachmentServiceMock) AddAttachment(ctx context.Context, actor domain.Principal, taskID, name string, content io.Reader, voice bool) (domain.Attachment, error) {
	args := m.Called(ctx, actor, taskID, name, content, voice)
	return args.Get(0).(domain.Attachment), args.Error(1)
}

func (m *attachmentServiceMock) OpenAttachment(ctx context.Context, taskID, attachmentID string) (domain.Attachment, io.ReadCloser, error) {
	args := m.Called(ctx, taskID, attachmentID)
	var content io.ReadCloser
	if value := args.Get(1); value != nil {
		content = value.(io.ReadCloser)
	}
	return args.Get(0).(domain.Attachment), content, args.Error(2)
}

func (m *attachmentServiceMock) RemoveAttachment(ctx context.Context, actor domain.Principal, taskID, attachmentID string) error {
	return m.Called(ctx, actor, taskID, attachmentID).Error(0)
}
