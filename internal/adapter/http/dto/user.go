package dto

type UserItem struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Avatar    *string `json:"avatar,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type UserStats struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
	Created    int    `json:"created"`
	Efficiency int    `json:"efficiency"`
}

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Name     string  `json:"name" binding:"required,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=2048"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Avatar   *string `json:"avatar" binding:"omitempty,max=2048"`
}
