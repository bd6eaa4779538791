package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
)

type TaskService struct {
	store *state.Store
	blobs ports.BlobStore
	now   func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(store *state.Store, blobs ports.BlobStore) *TaskService {
	return &TaskService{store: store, blobs: blobs, now: time.Now}
}

func (s *TaskService) ListBoardTasks(_ context.Context, boardID string) ([]domain.Task, error) {
	st := s.store.Snapshot()
	if _, ok := st.FindBoard(boardID); !ok {
		return nil, domain.ErrBoardNotFound
	}
	return st.BoardTasks(boardID), nil
}

func (s *TaskService) BoardColumns(ctx context.Context, boardID string) ([]domain.TaskColumn, error) {
	tasks, err := s.ListBoardTasks(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return GroupColumns(tasks), nil
}

// GroupColumns splits tasks into the status columns. Each column lists
// pinned tasks first, then the most recently created.
func GroupColumns(tasks []domain.Task) []domain.TaskColumn {
	columns := make([]domain.TaskColumn, 0, len(domain.TaskStatuses))
	for _, status := range domain.TaskStatuses {
		column := domain.TaskColumn{Status: status, Tasks: []domain.Task{}}
		for _, task := range tasks {
			if task.Status == status {
				column.Tasks = append(column.Tasks, task)
			}
		}
		sort.SliceStable(column.Tasks, func(i, j int) bool {
			a, b := column.Tasks[i], column.Tasks[j]
			if a.IsPinned != b.IsPinned {
				return a.IsPinned
			}
			return a.CreatedAt.After(b.CreatedAt)
		})
		columns = append(columns, column)
	}
	return columns
}

func (s *TaskService) CurrentBoardTasks(_ context.Context, actor domain.Principal) ([]domain.Task, error) {
	return s.store.Snapshot().CurrentBoardTasks(actor.UserID), nil
}

func (s *TaskService) GetTask(_ context.Context, id string) (domain.Task, error) {
	task, ok := s.store.Snapshot().FindTask(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, actor domain.Principal, input domain.CreateTaskInput) (domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrInvalidTask
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusCreated
	}
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	if !priority.Valid() {
		return domain.Task{}, domain.ErrInvalidTask
	}

	assigneeID := input.AssigneeID
	if assigneeID == "" {
		assigneeID = actor.UserID
	}
	if assigneeID != actor.UserID && !actor.IsAdmin() {
		return domain.Task{}, domain.ErrForbidden
	}

	now := s.now()
	task := domain.Task{
		ID:          newID(),
		Title:       title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		AssigneeID:  assigneeID,
		CreatorID:   actor.UserID,
		BoardID:     input.BoardID,
		Deadline:    input.Deadline,
		IsPinned:    input.IsPinned,
		Attachments: []domain.Attachment{},
		Comments:    []domain.Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		if task.BoardID == "" {
			task.BoardID = st.CurrentBoards[actor.UserID]
		}
		if _, ok := st.FindBoard(task.BoardID); !ok {
			return nil, domain.ErrBoardNotFound
		}
		if _, ok := st.FindUser(task.AssigneeID); !ok {
			return nil, domain.ErrUserNotFound
		}
		return []state.Action{state.AddTask{Task: task}}, nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, actor domain.Principal, id string, patch domain.TaskPatch) (domain.Task, error) {
	if patch.Empty() {
		return domain.Task{}, domain.ErrInvalidTask
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Task{}, domain.ErrInvalidTask
		}
		patch.Title = &title
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidTask
	}

	return s.update(ctx, id, patch, func(st state.State, task domain.Task) error {
		if patch.AssigneeID == nil || *patch.AssigneeID == task.AssigneeID {
			return nil
		}
		if !actor.IsAdmin() {
			return domain.ErrForbidden
		}
		if _, ok := st.FindUser(*patch.AssigneeID); !ok {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, actor domain.Principal, id string) error {
	var deleted domain.Task
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		task, ok := st.FindTask(id)
		if !ok {
			return nil, domain.ErrTaskNotFound
		}
		if !actor.IsAdmin() && task.CreatorID != actor.UserID {
			return nil, domain.ErrForbidden
		}
		deleted = task
		return []state.Action{state.DeleteTask{ID: id}}, nil
	})
	if err != nil {
		return err
	}

	deleteAttachmentContent(ctx, s.blobs, deleted)
	return nil
}

func (s *TaskService) TogglePin(ctx context.Context, id string) (domain.Task, error) {
	var toggled domain.Task
	now := s.now()
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		task, ok := st.FindTask(id)
		if !ok {
			return nil, domain.ErrTaskNotFound
		}
		pinned := !task.IsPinned
		patch := domain.TaskPatch{IsPinned: &pinned}
		toggled = patch.Apply(task)
		toggled.UpdatedAt = now
		return []state.Action{state.UpdateTask{ID: id, Patch: patch, At: now}}, nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return toggled, nil
}

// MoveTask changes the column of a task, as a drop onto another column does.
func (s *TaskService) MoveTask(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, domain.ErrInvalidStatus
	}
	return s.update(ctx, id, domain.TaskPatch{Status: &status}, nil)
}

func (s *TaskService) AddComment(ctx context.Context, actor domain.Principal, id, content string) (domain.Comment, error) {
	if !actor.IsAdmin() {
		return domain.Comment{}, domain.ErrForbidden
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrInvalidComment
	}

	comment := domain.Comment{
		ID:        newID(),
		UserID:    actor.UserID,
		Content:   content,
		CreatedAt: s.now(),
	}

	now := s.now()
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		task, ok := st.FindTask(id)
		if !ok {
			return nil, domain.ErrTaskNotFound
		}
		patch := domain.TaskPatch{
			Comments:    append(task.Comments, comment),
			CommentsSet: true,
		}
		return []state.Action{state.UpdateTask{ID: id, Patch: patch, At: now}}, nil
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// update applies patch to task id after check accepts it.
func (s *TaskService) update(ctx context.Context, id string, patch domain.TaskPatch, check func(state.State, domain.Task) error) (domain.Task, error) {
	now := s.now()
	var updated domain.Task
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		task, ok := st.FindTask(id)
		if !ok {
			return nil, domain.ErrTaskNotFound
		}
		if check != nil {
			if err := check(st, task); err != nil {
				return nil, err
			}
		}
		updated = patch.Apply(task)
		updated.UpdatedAt = now
		return []state.Action{state.UpdateTask{ID: id, Patch: patch, At: now}}, nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}
