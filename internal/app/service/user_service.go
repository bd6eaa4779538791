package service

import (
	"context"
	"strings"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
)

type UserService struct {
	store *state.Store
	now   func() time.Time
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(store *state.Store) *UserService {
	return &UserService{store: store, now: time.Now}
}

func (s *UserService) ListUsers(context.Context) ([]domain.User, error) {
	return s.store.Snapshot().Users, nil
}

func (s *UserService) GetUser(_ context.Context, id string) (domain.User, error) {
	user, ok := s.store.Snapshot().FindUser(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, actor domain.Principal, input domain.CreateUserInput) (domain.User, error) {
	if !actor.IsAdmin() {
		return domain.User{}, domain.ErrForbidden
	}

	email := strings.TrimSpace(input.Email)
	name := strings.ToUpper(strings.TrimSpace(input.Name))
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if email == "" || name == "" || !role.Valid() {
		return domain.User{}, domain.ErrInvalidUser
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           newID(),
		Email:        email,
		Name:         name,
		Role:         role,
		Avatar:       input.Avatar,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	err = s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		if _, taken := findUserByEmail(st, email, ""); taken {
			return nil, domain.ErrEmailTaken
		}
		if _, taken := findUserByName(st, name, ""); taken {
			return nil, domain.ErrNameTaken
		}
		return []state.Action{state.AddUser{User: user}}, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, actor domain.Principal, id string, input domain.UpdateUserInput) (domain.User, error) {
	if !actor.IsAdmin() {
		return domain.User{}, domain.ErrForbidden
	}

	var patch domain.UserPatch
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return domain.User{}, domain.ErrInvalidUser
		}
		patch.Email = &email
	}
	if input.Name != nil {
		name := strings.ToUpper(strings.TrimSpace(*input.Name))
		if name == "" {
			return domain.User{}, domain.ErrInvalidUser
		}
		patch.Name = &name
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return domain.User{}, domain.ErrInvalidUser
		}
		patch.Role = input.Role
	}
	patch.Avatar = input.Avatar
	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return domain.User{}, err
		}
		patch.PasswordHash = &hash
	}

	var updated domain.User
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		current, ok := st.FindUser(id)
		if !ok {
			return nil, domain.ErrUserNotFound
		}
		if patch.Email != nil {
			if _, taken := findUserByEmail(st, *patch.Email, id); taken {
				return nil, domain.ErrEmailTaken
			}
		}
		if patch.Name != nil {
			if _, taken := findUserByName(st, *patch.Name, id); taken {
				return nil, domain.ErrNameTaken
			}
		}
		updated = patch.Apply(current)
		return []state.Action{state.UpdateUser{ID: id, Patch: patch}}, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actor domain.Principal, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if actor.UserID == id {
		return domain.ErrCannotDeleteSelf
	}

	return s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		if _, ok := st.FindUser(id); !ok {
			return nil, domain.ErrUserNotFound
		}
		return []state.Action{state.DeleteUser{ID: id}}, nil
	})
}

func (s *UserService) UserStats(_ context.Context, id string) (domain.UserTaskStats, error) {
	st := s.store.Snapshot()
	user, ok := st.FindUser(id)
	if !ok {
		return domain.UserTaskStats{}, domain.ErrUserNotFound
	}
	return userStats(user, st.Tasks), nil
}

// userStats counts the tasks assigned to user by status.
func userStats(user domain.User, tasks []domain.Task) domain.UserTaskStats {
	stats := domain.UserTaskStats{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
	for _, task := range tasks {
		if task.AssigneeID != user.ID {
			continue
		}
		stats.Total++
		switch task.Status {
		case domain.TaskStatusCompleted:
			stats.Completed++
		case domain.TaskStatusInProgress:
			stats.InProgress++
		case domain.TaskStatusCreated:
			stats.Created++
		}
	}
	stats.Efficiency = percent(stats.Completed, stats.Total)
	return stats
}
