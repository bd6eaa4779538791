package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrBoardNotFound      = errors.New("board not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrInvalidTask        = errors.New("invalid task")
	ErrInvalidBoard       = errors.New("invalid board")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidComment     = errors.New("invalid comment")
	ErrEmailTaken         = errors.New("email already taken")
	ErrNameTaken          = errors.New("name already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrCannotDeleteSelf   = errors.New("cannot delete own account")
	ErrInvalidMonth       = errors.New("invalid calendar month")
)
