package service

import (
	"context"
	"math"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"
)

const (
	recentWindow       = 7 * 24 * time.Hour
	calendarPreviewLen = 3
)

type AnalyticsService struct {
	store *state.Store
	loc   *time.Location
	now   func() time.Time
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)

func NewAnalyticsService(store *state.Store, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{store: store, loc: loc, now: time.Now}
}

func (s *AnalyticsService) BoardAnalytics(_ context.Context, boardID string) (domain.BoardAnalytics, error) {
	st := s.store.Snapshot()
	if _, ok := st.FindBoard(boardID); !ok {
		return domain.BoardAnalytics{}, domain.ErrBoardNotFound
	}
	return Analyze(boardID, st.BoardTasks(boardID), st.Users, s.now()), nil
}

// Analyze derives the board summary shown on the analytics view.
func Analyze(boardID string, tasks []domain.Task, users []domain.User, now time.Time) domain.BoardAnalytics {
	out := domain.BoardAnalytics{
		BoardID:   boardID,
		Total:     len(tasks),
		UserCount: len(users),
		Users:     make([]domain.UserTaskStats, 0, len(users)),
	}

	recentSince := now.Add(-recentWindow)
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusCompleted:
			out.Completed++
		case domain.TaskStatusInProgress:
			out.InProgress++
		case domain.TaskStatusCreated:
			out.Created++
		}
		if task.Status != domain.TaskStatusCompleted {
			out.Pending++
			if task.Deadline != nil && task.Deadline.Before(now) {
				out.Overdue++
			}
		}
		if task.CreatedAt.After(recentSince) {
			out.Recent++
		}
	}

	out.CompletionRate = percent(out.Completed, out.Total)
	out.CreatedShare = share(out.Created, out.Total)
	out.InProgressShare = share(out.InProgress, out.Total)
	out.CompletedShare = share(out.Completed, out.Total)

	for _, user := range users {
		out.Users = append(out.Users, userStats(user, tasks))
	}
	return out
}

func (s *AnalyticsService) CalendarMonth(_ context.Context, boardID string, year int, month time.Month) (domain.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return domain.CalendarMonth{}, domain.ErrInvalidMonth
	}
	st := s.store.Snapshot()
	if _, ok := st.FindBoard(boardID); !ok {
		return domain.CalendarMonth{}, domain.ErrBoardNotFound
	}
	return BuildCalendar(st.BoardTasks(boardID), year, month, s.now().In(s.loc)), nil
}

// BuildCalendar lays out one month. Days run from the 1st to the last day in
// now's location; StartOffset is the Sunday-first column of the 1st.
func BuildCalendar(tasks []domain.Task, year int, month time.Month, now time.Time) domain.CalendarMonth {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()

	out := domain.CalendarMonth{
		Year:        year,
		Month:       month,
		StartOffset: int(first.Weekday()),
		Days:        make([]domain.CalendarDay, 0, days),
	}

	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		day := domain.CalendarDay{
			Date:    date,
			IsToday: sameDay(date, now),
			Tasks:   []domain.Task{},
		}
		for _, task := range tasks {
			if task.Deadline != nil && sameDay(task.Deadline.In(loc), date) {
				day.Tasks = append(day.Tasks, task)
			}
		}
		day.Preview = day.Tasks
		if len(day.Tasks) > calendarPreviewLen {
			day.Preview = day.Tasks[:calendarPreviewLen]
			day.HiddenCount = len(day.Tasks) - calendarPreviewLen
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
