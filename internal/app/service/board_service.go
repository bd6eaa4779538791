package service

import (
	"context"
	"strings"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
)

type BoardService struct {
	store *state.Store
	blobs ports.BlobStore
	now   func() time.Time
}

var _ ports.BoardService = (*BoardService)(nil)

func NewBoardService(store *state.Store, blobs ports.BlobStore) *BoardService {
	return &BoardService{store: store, blobs: blobs, now: time.Now}
}

func (s *BoardService) ListBoards(context.Context) ([]domain.Board, error) {
	return s.store.Snapshot().Boards, nil
}

func (s *BoardService) CreateBoard(ctx context.Context, actor domain.Principal, input domain.CreateBoardInput) (domain.Board, error) {
	name := strings.ToUpper(strings.TrimSpace(input.Name))
	if name == "" {
		return domain.Board{}, domain.ErrInvalidBoard
	}

	now := s.now()
	board := domain.Board{
		ID:          newID(),
		Name:        name,
		Description: upperPtr(input.Description),
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Dispatch(ctx, state.AddBoard{Board: board}); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (s *BoardService) UpdateBoard(ctx context.Context, actor domain.Principal, id string, patch domain.BoardPatch) (domain.Board, error) {
	if patch.Name != nil {
		patch.Name = upperPtr(patch.Name)
		if *patch.Name == "" {
			return domain.Board{}, domain.ErrInvalidBoard
		}
	}
	patch.Description = upperPtr(patch.Description)

	now := s.now()
	var updated domain.Board
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		board, ok := st.FindBoard(id)
		if !ok {
			return nil, domain.ErrBoardNotFound
		}
		if !actor.IsAdmin() && board.CreatedBy != actor.UserID {
			return nil, domain.ErrForbidden
		}
		updated = patch.Apply(board)
		updated.UpdatedAt = now
		return []state.Action{state.UpdateBoard{ID: id, Patch: patch, At: now}}, nil
	})
	if err != nil {
		return domain.Board{}, err
	}
	return updated, nil
}

// DeleteBoard removes a board with its tasks. Creators may only delete a
// board while another one remains; admins may always delete.
func (s *BoardService) DeleteBoard(ctx context.Context, actor domain.Principal, id string) error {
	var dropped []domain.Task
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		board, ok := st.FindBoard(id)
		if !ok {
			return nil, domain.ErrBoardNotFound
		}
		canDelete := actor.IsAdmin() || (board.CreatedBy == actor.UserID && len(st.Boards) > 1)
		if !canDelete {
			return nil, domain.ErrForbidden
		}
		dropped = st.BoardTasks(id)
		return []state.Action{state.DeleteBoard{ID: id}}, nil
	})
	if err != nil {
		return err
	}

	for _, task := range dropped {
		deleteAttachmentContent(ctx, s.blobs, task)
	}
	return nil
}

func (s *BoardService) SetCurrentBoard(ctx context.Context, actor domain.Principal, id string) (domain.Board, error) {
	var board domain.Board
	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		found, ok := st.FindBoard(id)
		if !ok {
			return nil, domain.ErrBoardNotFound
		}
		board = found
		return []state.Action{state.SetCurrentBoard{UserID: actor.UserID, BoardID: id}}, nil
	})
	if err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (s *BoardService) CurrentBoard(_ context.Context, actor domain.Principal) (domain.Board, error) {
	st := s.store.Snapshot()
	boardID, ok := st.CurrentBoards[actor.UserID]
	if !ok {
		return domain.Board{}, domain.ErrBoardNotFound
	}
	board, ok := st.FindBoard(boardID)
	if !ok {
		return domain.Board{}, domain.ErrBoardNotFound
	}
	return board, nil
}
