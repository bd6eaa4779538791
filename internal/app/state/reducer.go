package state

import "kanbanpro/internal/core/domain"

// Reduce maps (state, action) to the next state. The input is left untouched.
func Reduce(s State, action Action) State {
	next := s.Clone()

	switch a := action.(type) {
	case Login:
		if !a.ExpiredBefore.IsZero() {
			next.Sessions = removeSessions(next.Sessions, func(session domain.Session) bool {
				return session.CreatedAt.Before(a.ExpiredBefore)
			})
		}
		next.Sessions = append(next.Sessions, a.Session)
	case Logout:
		next.Sessions = removeSessions(next.Sessions, func(session domain.Session) bool {
			return session.ID == a.SessionID
		})
	case SetUsers:
		next.Users = append([]domain.User{}, a.Users...)
	case SetTasks:
		next.Tasks = make([]domain.Task, 0, len(a.Tasks))
		for _, task := range a.Tasks {
			next.Tasks = append(next.Tasks, task.Clone())
		}
	case SetBoards:
		next.Boards = make([]domain.Board, 0, len(a.Boards))
		for _, board := range a.Boards {
			next.Boards = append(next.Boards, board.Clone())
		}
	case SetCurrentBoard:
		next.CurrentBoards[a.UserID] = a.BoardID
	case AddTask:
		next.Tasks = append(next.Tasks, a.Task.Clone())
	case UpdateTask:
		for i, task := range next.Tasks {
			if task.ID == a.ID {
				updated := a.Patch.Apply(task)
				updated.UpdatedAt = a.At
				next.Tasks[i] = updated
			}
		}
	case DeleteTask:
		next.Tasks = removeTasks(next.Tasks, func(task domain.Task) bool {
			return task.ID == a.ID
		})
	case AddUser:
		next.Users = append(next.Users, a.User)
	case UpdateUser:
		for i, user := range next.Users {
			if user.ID == a.ID {
				next.Users[i] = a.Patch.Apply(user)
			}
		}
	case DeleteUser:
		users := make([]domain.User, 0, len(next.Users))
		for _, user := range next.Users {
			if user.ID != a.ID {
				users = append(users, user)
			}
		}
		next.Users = users
		next.Sessions = removeSessions(next.Sessions, func(session domain.Session) bool {
			return session.UserID == a.ID
		})
		delete(next.CurrentBoards, a.ID)
	case AddBoard:
		next.Boards = append(next.Boards, a.Board.Clone())
	case UpdateBoard:
		for i, board := range next.Boards {
			if board.ID == a.ID {
				updated := a.Patch.Apply(board)
				updated.UpdatedAt = a.At
				next.Boards[i] = updated
			}
		}
	case DeleteBoard:
		boards := make([]domain.Board, 0, len(next.Boards))
		for _, board := range next.Boards {
			if board.ID != a.ID {
				boards = append(boards, board)
			}
		}
		next.Boards = boards
		next.Tasks = removeTasks(next.Tasks, func(task domain.Task) bool {
			return task.BoardID == a.ID
		})
		for userID, boardID := range next.CurrentBoards {
			if boardID != a.ID {
				continue
			}
			if len(boards) == 0 {
				delete(next.CurrentBoards, userID)
				continue
			}
			next.CurrentBoards[userID] = boards[0].ID
		}
	default:
		return s
	}

	return next
}

func removeTasks(tasks []domain.Task, drop func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !drop(task) {
			out = append(out, task)
		}
	}
	return out
}

func removeSessions(sessions []domain.Session, drop func(domain.Session) bool) []domain.Session {
	out := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if !drop(session) {
			out = append(out, session)
		}
	}
	return out
}
