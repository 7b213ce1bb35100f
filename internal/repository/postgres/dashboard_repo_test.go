package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_GetStudentCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("hours are summed over past approved events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		// Two past approved events of 2.5h each.
		rows := sqlmock.NewRows([]string{"past_event_count", "upcoming_event_count", "total_hours"}).
			AddRow(int64(2), int64(1), 5.0)
		mock.ExpectQuery(`SELECT (.+) FROM events e`).
			WithArgs("stu-1").
			WillReturnRows(rows)

		repo := NewDashboardRepository(db)
		counts, err := repo.GetStudentCounts(ctx, "stu-1")
		require.NoError(t, err)
		require.Equal(t, int64(2), counts.PastEventCount)
		require.Equal(t, int64(1), counts.UpcomingEventCount)
		require.Equal(t, 5.0, counts.TotalHours)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no activity yields zeros", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"past_event_count", "upcoming_event_count", "total_hours"}).
			AddRow(int64(0), int64(0), 0.0)
		mock.ExpectQuery(`SELECT (.+) FROM events e`).
			WithArgs("stu-2").
			WillReturnRows(rows)

		repo := NewDashboardRepository(db)
		counts, err := repo.GetStudentCounts(ctx, "stu-2")
		require.NoError(t, err)
		require.Zero(t, counts.PastEventCount)
		require.Zero(t, counts.TotalHours)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardRepository_ListStudentOpenEvents(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM events e`).
		WithArgs("stu-1").
		WillReturnRows(eventRows("event-1"))

	repo := NewDashboardRepository(db)
	events, err := repo.ListStudentOpenEvents(ctx, "stu-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_GetManagerCounts(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"past_event_count", "upcoming_event_count", "approved_upcoming_event_count"}).
		AddRow(int64(2), int64(3), int64(7))
	mock.ExpectQuery(`SELECT (.+) FROM events e`).
		WithArgs("mgr-1").
		WillReturnRows(rows)

	repo := NewDashboardRepository(db)
	counts, err := repo.GetManagerCounts(ctx, "mgr-1")
	require.NoError(t, err)
	require.Equal(t, int64(3), counts.UpcomingEventCount)
	require.Equal(t, int64(7), counts.ApprovedUpcomingCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_GetOrganizerCounts(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"total_event_count", "upcoming_event_count", "past_event_count", "total_past_event_cost"}).
		AddRow(int64(5), int64(2), int64(3), 4500.0)
	mock.ExpectQuery(`SELECT (.+) FROM events e`).
		WithArgs("org-1").
		WillReturnRows(rows)

	repo := NewDashboardRepository(db)
	counts, err := repo.GetOrganizerCounts(ctx, "org-1")
	require.NoError(t, err)
	require.Equal(t, int64(5), counts.TotalEventCount)
	require.Equal(t, 4500.0, counts.TotalPastEventCost)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ListOrganizerEventDetails(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "start_at", "end_at", "location", "cost",
		"required_volunteers", "managed_by_manager", "status", "category", "tags",
		"created_by_id", "created_at", "updated_at",
		"registered_students", "total_budget", "used_budget",
	}).AddRow("event-1", "City Marathon", "", now, now.Add(5*time.Hour), "Central Park",
		100.0, 20, true, "CREATED", "sports", "", "org-1", now, now,
		int64(7), 2000.0, 700.0)
	mock.ExpectQuery(`SELECT (.+) FROM events e`).
		WithArgs("org-1").
		WillReturnRows(rows)

	repo := NewDashboardRepository(db)
	details, err := repo.ListOrganizerEventDetails(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, int64(7), details[0].RegisteredStudents)
	require.Equal(t, 2000.0, details[0].TotalBudget)
	require.Equal(t, 700.0, details[0].UsedBudget)
	require.Equal(t, "City Marathon", details[0].Event.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}
