package state

import (
	"time"

	"kanbanpro/internal/core/domain"
)

const (
	demoAdminID = "1"
	demoUserID  = "2"
	demoBoardID = "1"

	DemoAdminEmail = "admin@kanban.com"
	DemoUserEmail  = "user@kanban.com"
)

// Seed holds what Load needs to create demo records.
type Seed struct {
	PasswordHash string
}

func demoUsers(now time.Time, passwordHash string) []domain.User {
	return []domain.User{
		{
			ID:           demoAdminID,
			Email:        DemoAdminEmail,
			Name:         "ADMINISTRATOR",
			Role:         domain.RoleAdmin,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		},
		{
			ID:           demoUserID,
			Email:        DemoUserEmail,
			Name:         "REGULAR USER",
			Role:         domain.RoleUser,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		},
	}
}

func demoBoards(now time.Time) []domain.Board {
	description := "MAIN BOARD FOR MANAGING TASKS"
	return []domain.Board{
		{
			ID:          demoBoardID,
			Name:        "MAIN BOARD",
			Description: &description,
			CreatedBy:   demoAdminID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func demoTasks(now time.Time) []domain.Task {
	deadline := now.Add(7 * 24 * time.Hour)
	return []domain.Task{
		{
			ID:          "1",
			Title:       "DESIGN USER INTERFACE",
			Description: "CREATE MOCKUPS AND PROTOTYPES FOR THE NEW FEATURE",
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			AssigneeID:  demoUserID,
			CreatorID:   demoAdminID,
			BoardID:     demoBoardID,
			Deadline:    &deadline,
			IsPinned:    true,
			Attachments: []domain.Attachment{},
			Comments:    []domain.Comment{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "IMPLEMENT AUTHENTICATION",
			Description: "SET UP USER SIGN-IN AND REGISTRATION",
			Status:      domain.TaskStatusCreated,
			Priority:    domain.TaskPriorityHigh,
			AssigneeID:  demoAdminID,
			CreatorID:   demoAdminID,
			BoardID:     demoBoardID,
			Attachments: []domain.Attachment{},
			Comments:    []domain.Comment{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
