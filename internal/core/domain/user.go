package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Avatar       *string   `json:"avatar,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type CreateUserInput struct {
	Email    string
	Name     string
	Role     Role
	Password string
	Avatar   *string
}

type UserPatch struct {
	Email        *string
	Name         *string
	Role         *Role
	Avatar       *string
	PasswordHash *string
}

func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Avatar != nil {
		value := *p.Avatar
		u.Avatar = &value
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	return u
}

// UpdateUserInput is the caller-facing update; Password is plain text.
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Role     *Role
	Avatar   *string
	Password *string
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Principal identifies the authenticated caller of an operation.
type Principal struct {
	UserID    string
	Role      Role
	SessionID string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type UserTaskStats struct {
	UserID     string
	Name       string
	Email      string
	Role       Role
	Total      int
	Completed  int
	InProgress int
	Created    int
	Efficiency int
}
