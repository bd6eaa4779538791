package service

import (
	"context"
	"testing"
	"time"

	"kanbanpro/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	now := time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	users := []domain.User{{ID: "1", Name: "ADMIN"}, {ID: "2", Name: "USER"}}
	tasks := []domain.Task{
		{ID: "a", AssigneeID: "2", Status: domain.TaskStatusCompleted, Deadline: &past, CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "b", AssigneeID: "2", Status: domain.TaskStatusInProgress, Deadline: &past, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "c", AssigneeID: "1", Status: domain.TaskStatusCreated, CreatedAt: now},
	}

	got := Analyze("b1", tasks, users, now)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 1, got.InProgress)
	assert.Equal(t, 1, got.Created)
	assert.Equal(t, 1, got.Overdue)
	assert.Equal(t, 2, got.Recent)
	assert.Equal(t, 2, got.Pending)
	assert.Equal(t, 33, got.CompletionRate)
	assert.Equal(t, 2, got.UserCount)
	require.Len(t, got.Users, 2)
	assert.Equal(t, 2, got.Users[1].Total)
	assert.Equal(t, 50, got.Users[1].Efficiency)
	assert.Equal(t, 0, got.Users[0].Efficiency)
}

func TestAnalyze_EmptyBoard(t *testing.T) {
	got := Analyze("b1", nil, nil, time.Now())
	assert.Zero(t, got.CompletionRate)
	assert.Zero(t, got.CreatedShare)
	assert.Empty(t, got.Users)
}

func TestBuildCalendar(t *testing.T) {
	now := time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC)
	day := func(d, hour int) *time.Time {
		value := time.Date(2026, 2, d, hour, 0, 0, 0, time.UTC)
		return &value
	}
	tasks := []domain.Task{
		{ID: "a", Deadline: day(10, 9)},
		{ID: "b", Deadline: day(10, 12)},
		{ID: "c", Deadline: day(10, 15)},
		{ID: "d", Deadline: day(10, 23)},
		{ID: "e", Deadline: day(28, 0)},
		{ID: "f"},
	}

	month := BuildCalendar(tasks, 2026, time.February, now)

	// February 1st 2026 is a Sunday.
	assert.Equal(t, 0, month.StartOffset)
	require.Len(t, month.Days, 28)

	tenth := month.Days[9]
	assert.Len(t, tenth.Tasks, 4)
	assert.Len(t, tenth.Preview, 3)
	assert.Equal(t, 1, tenth.HiddenCount)
	assert.True(t, month.Days[12].IsToday)
	assert.False(t, tenth.IsToday)
	assert.Len(t, month.Days[27].Tasks, 1)
	assert.Empty(t, month.Days[0].Tasks)
}

func TestBuildCalendar_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)
	// 22:30 UTC on March 1st is already March 2nd at UTC+3.
	deadline := time.Date(2026, 3, 1, 22, 30, 0, 0, time.UTC)

	month := BuildCalendar([]domain.Task{{ID: "a", Deadline: &deadline}}, 2026, time.March, now)

	require.Len(t, month.Days, 31)
	assert.Empty(t, month.Days[0].Tasks)
	assert.Len(t, month.Days[1].Tasks, 1)
}

func TestAnalyticsService_Errors(t *testing.T) {
	env := newTestEnv(t)
	analytics := env.analytics()

	_, err := analytics.BoardAnalytics(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrBoardNotFound)

	_, err = analytics.CalendarMonth(context.Background(), "1", 2026, 13)
	require.ErrorIs(t, err, domain.ErrInvalidMonth)

	month, err := analytics.CalendarMonth(context.Background(), "1", 2026, time.February)
	require.NoError(t, err)
	// The seeded task is due a week after testNow.
	assert.Len(t, month.Days[19].Tasks, 1)
}
