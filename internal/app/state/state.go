package state

import "kanbanpro/internal/core/domain"

// Storage keys, one per persisted collection.
const (
	KeyUsers         = "kanban-users"
	KeyTasks         = "kanban-tasks"
	KeyBoards        = "kanban-boards"
	KeySessions      = "kanban-sessions"
	KeyCurrentBoards = "kanban-current-board"
)

// State is the whole application state. Reduce never mutates a State in place.
type State struct {
	Users    []domain.User
	Tasks    []domain.Task
	Boards   []domain.Board
	Sessions []domain.Session
	// CurrentBoards maps a user id to the board that user has selected.
	CurrentBoards map[string]string
}

func (s State) Clone() State {
	out := State{
		Users:         make([]domain.User, len(s.Users)),
		Tasks:         make([]domain.Task, 0, len(s.Tasks)),
		Boards:        make([]domain.Board, 0, len(s.Boards)),
		Sessions:      append([]domain.Session{}, s.Sessions...),
		CurrentBoards: make(map[string]string, len(s.CurrentBoards)),
	}
	copy(out.Users, s.Users)
	for _, task := range s.Tasks {
		out.Tasks = append(out.Tasks, task.Clone())
	}
	for _, board := range s.Boards {
		out.Boards = append(out.Boards, board.Clone())
	}
	for userID, boardID := range s.CurrentBoards {
		out.CurrentBoards[userID] = boardID
	}
	return out
}

func (s State) FindUser(id string) (domain.User, bool) {
	for _, user := range s.Users {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}

func (s State) FindTask(id string) (domain.Task, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task.Clone(), true
		}
	}
	return domain.Task{}, false
}

func (s State) FindBoard(id string) (domain.Board, bool) {
	for _, board := range s.Boards {
		if board.ID == id {
			return board.Clone(), true
		}
	}
	return domain.Board{}, false
}

func (s State) FindSession(id string) (domain.Session, bool) {
	for _, session := range s.Sessions {
		if session.ID == id {
			return session, true
		}
	}
	return domain.Session{}, false
}

// BoardTasks returns the tasks that belong to boardID, in insertion order.
func (s State) BoardTasks(boardID string) []domain.Task {
	tasks := make([]domain.Task, 0)
	for _, task := range s.Tasks {
		if task.BoardID == boardID {
			tasks = append(tasks, task.Clone())
		}
	}
	return tasks
}

// CurrentBoardTasks mirrors the board view of a user's selected board.
func (s State) CurrentBoardTasks(userID string) []domain.Task {
	boardID, ok := s.CurrentBoards[userID]
	if !ok {
		return []domain.Task{}
	}
	return s.BoardTasks(boardID)
}
