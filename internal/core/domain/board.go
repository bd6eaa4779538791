package domain

import "time"

type Board struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b Board) Clone() Board {
	c := b
	if b.Description != nil {
		value := *b.Description
		c.Description = &value
	}
	return c
}

type CreateBoardInput struct {
	Name        string
	Description *string
}

type BoardPatch struct {
	Name        *string
	Description *string
}

func (p BoardPatch) Apply(b Board) Board {
	out := b.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		value := *p.Description
		out.Description = &value
	}
	return out
}

type BoardAnalytics struct {
	BoardID         string
	Total           int
	Completed       int
	InProgress      int
	Created         int
	Overdue         int
	Recent          int
	Pending         int
	CompletionRate  int
	CreatedShare    float64
	InProgressShare float64
	CompletedShare  float64
	UserCount       int
	Users           []UserTaskStats
}

type CalendarDay struct {
	Date        time.Time
	IsToday     bool
	Tasks       []Task
	Preview     []Task
	HiddenCount int
}

type CalendarMonth struct {
	Year        int
	Month       time.Month
	StartOffset int
	Days        []CalendarDay
}
