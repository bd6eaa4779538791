package mapper

import (
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/core/domain"
)

func ToBoardItems(boards []domain.Board) []dto.BoardItem {
	items := make([]dto.BoardItem, 0, len(boards))
	for _, board := range boards {
		items = append(items, ToBoardItem(board))
	}
	return items
}

func ToBoardItem(board domain.Board) dto.BoardItem {
	item := dto.BoardItem{
		ID:        board.ID,
		Name:      board.Name,
		CreatedBy: board.CreatedBy,
		CreatedAt: board.CreatedAt.Format(time.RFC3339),
		UpdatedAt: board.UpdatedAt.Format(time.RFC3339),
	}
	if board.Description != nil {
		value := *board.Description
		item.Description = &value
	}
	return item
}
