package service

import (
	"fmt"
	"strings"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.NewString()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findUserByEmail(s state.State, email string, excludeID string) (domain.User, bool) {
	email = normalizeEmail(email)
	for _, user := range s.Users {
		if user.ID != excludeID && normalizeEmail(user.Email) == email {
			return user, true
		}
	}
	return domain.User{}, false
}

func findUserByName(s state.State, name string, excludeID string) (domain.User, bool) {
	for _, user := range s.Users {
		if user.ID != excludeID && strings.EqualFold(user.Name, name) {
			return user, true
		}
	}
	return domain.User{}, false
}

// accessibleBoards lists the boards a user created, or every board for admins.
func accessibleBoards(s state.State, user domain.User) []domain.Board {
	boards := make([]domain.Board, 0)
	for _, board := range s.Boards {
		if user.IsAdmin() || board.CreatedBy == user.ID {
			boards = append(boards, board)
		}
	}
	return boards
}

func personalBoard(user domain.User, now time.Time) domain.Board {
	name := strings.ToUpper(user.Name)
	description := fmt.Sprintf("PERSONAL BOARD FOR %s", name)
	return domain.Board{
		ID:          newID(),
		Name:        fmt.Sprintf("BOARD %s", name),
		Description: &description,
		CreatedBy:   user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func upperPtr(value *string) *string {
	if value == nil {
		return nil
	}
	upper := strings.ToUpper(strings.TrimSpace(*value))
	return &upper
}
