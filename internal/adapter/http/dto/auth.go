package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
}

type SessionResponse struct {
	Token          string   `json:"token"`
	ExpiresAt      string   `json:"expires_at"`
	User           UserItem `json:"user"`
	CurrentBoardID *string  `json:"current_board_id,omitempty"`
}

type MeResponse struct {
	User           UserItem `json:"user"`
	CurrentBoardID *string  `json:"current_board_id,omitempty"`
	PendingTasks   int      `json:"pending_tasks"`
}
