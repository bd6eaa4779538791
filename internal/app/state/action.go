package state

import (
	"time"

	"kanbanpro/internal/core/domain"
)

// Action is a single state transition understood by Reduce.
type Action interface {
	// Keys lists the storage keys whose collections the action may change.
	Keys() []string
}

// Login adds Session and drops sessions created before ExpiredBefore.
type Login struct {
	Session       domain.Session
	ExpiredBefore time.Time
}

type Logout struct{ SessionID string }

type SetUsers struct{ Users []domain.User }

type SetTasks struct{ Tasks []domain.Task }

type SetBoards struct{ Boards []domain.Board }

type SetCurrentBoard struct {
	UserID  string
	BoardID string
}

type AddTask struct{ Task domain.Task }

type UpdateTask struct {
	ID    string
	Patch domain.TaskPatch
	At    time.Time
}

type DeleteTask struct{ ID string }

type AddUser struct{ User domain.User }

type UpdateUser struct {
	ID    string
	Patch domain.UserPatch
}

type DeleteUser struct{ ID string }

type AddBoard struct{ Board domain.Board }

type UpdateBoard struct {
	ID    string
	Patch domain.BoardPatch
	At    time.Time
}

type DeleteBoard struct{ ID string }

func (Login) Keys() []string           { return []string{KeySessions} }
func (Logout) Keys() []string          { return []string{KeySessions} }
func (SetUsers) Keys() []string        { return []string{KeyUsers} }
func (SetTasks) Keys() []string        { return []string{KeyTasks} }
func (SetBoards) Keys() []string       { return []string{KeyBoards} }
func (SetCurrentBoard) Keys() []string { return []string{KeyCurrentBoards} }
func (AddTask) Keys() []string         { return []string{KeyTasks} }
func (UpdateTask) Keys() []string      { return []string{KeyTasks} }
func (DeleteTask) Keys() []string      { return []string{KeyTasks} }
func (AddUser) Keys() []string         { return []string{KeyUsers} }
func (UpdateUser) Keys() []string      { return []string{KeyUsers} }

func (DeleteUser) Keys() []string {
	return []string{KeyUsers, KeySessions, KeyCurrentBoards}
}

func (AddBoard) Keys() []string    { return []string{KeyBoards} }
func (UpdateBoard) Keys() []string { return []string{KeyBoards} }

func (DeleteBoard) Keys() []string {
	return []string{KeyBoards, KeyTasks, KeyCurrentBoards}
}
