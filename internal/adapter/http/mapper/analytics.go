package mapper

import (
	"time"

	"kanbanpro/internal/adapter/http/dto"
	"kanbanpro/internal/core/domain"
)

func ToBoardAnalytics(a domain.BoardAnalytics) dto.BoardAnalytics {
	users := make([]dto.UserStats, 0, len(a.Users))
	for _, stats := range a.Users {
		users = append(users, ToUserStats(stats))
	}
	return dto.BoardAnalytics{
		BoardID:         a.BoardID,
		Total:           a.Total,
		Completed:       a.Completed,
		InProgress:      a.InProgress,
		Created:         a.Created,
		Overdue:         a.Overdue,
		Recent:          a.Recent,
		Pending:         a.Pending,
		CompletionRate:  a.CompletionRate,
		CreatedShare:    a.CreatedShare,
		InProgressShare: a.InProgressShare,
		CompletedShare:  a.CompletedShare,
		UserCount:       a.UserCount,
		Users:           users,
	}
}

func ToCalendarMonth(month domain.CalendarMonth, now time.Time) dto.CalendarMonth {
	days := make([]dto.CalendarDay, 0, len(month.Days))
	for _, day := range month.Days {
		days = append(days, dto.CalendarDay{
			Date:        day.Date.Format("2006-01-02"),
			IsToday:     day.IsToday,
			TaskCount:   len(day.Tasks),
			Preview:     ToTaskItems(day.Preview, now),
			HiddenCount: day.HiddenCount,
		})
	}
	return dto.CalendarMonth{
		Year:        month.Year,
		Month:       int(month.Month),
		StartOffset: month.StartOffset,
		Days:        days,
	}
}
