package dto

type BoardAnalytics struct {
	BoardID         string      `json:"board_id"`
	Total           int         `json:"total"`
	Completed       int         `json:"completed"`
	InProgress      int         `json:"in_progress"`
	Created         int         `json:"created"`
	Overdue         int         `json:"overdue"`
	Recent          int         `json:"recent"`
	Pending         int         `json:"pending"`
	CompletionRate  int         `json:"completion_rate"`
	CreatedShare    float64     `json:"created_share"`
	InProgressShare float64     `json:"in_progress_share"`
	CompletedShare  float64     `json:"completed_share"`
	UserCount       int         `json:"user_count"`
	Users           []UserStats `json:"users"`
}

type CalendarMonth struct {
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	StartOffset int           `json:"start_offset"`
	Days        []CalendarDay `json:"days"`
}

type CalendarDay struct {
	Date        string     `json:"date"`
	IsToday     bool       `json:"is_today"`
	TaskCount   int        `json:"task_count"`
	Preview     []TaskItem `json:"preview"`
	HiddenCount int        `json:"hidden_count"`
}
