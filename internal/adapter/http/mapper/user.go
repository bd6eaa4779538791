package mapper

import (
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

// ToUserItem never exposes the password hash.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserStats(stats domain.UserTaskStats) dto.UserStats {
	return dto.UserStats{
		UserID:     stats.UserID,
		Name:       stats.Name,
		Email:      stats.Email,
		Role:       string(stats.Role),
		Total:      stats.Total,
		Completed:  stats.Completed,
		InProgress: stats.InProgress,
		Created:    stats.Created,
		Efficiency: stats.Efficiency,
	}
}
